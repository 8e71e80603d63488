package ladder

import (
	dto "cases_backend/internal/api/dto/ladder"
	"cases_backend/internal/api/httperr"
	"cases_backend/internal/converter"
	"cases_backend/internal/service"
	"cases_backend/pkg/req"
	"cases_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.LadderService
}

type Handler struct {
	serv service.LadderService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Stake списывает ставку и открывает сессию лесенки
func (h *Handler) Stake(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StakeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.serv.PlaceStake(r.Context(), payload.Amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLadderStateResponse(*state))
}

// Climb разыгрывает следующую ступень
func (h *Handler) Climb(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.Climb(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLadderStateResponse(*state))
}

// CashOut фиксирует выигрыш на текущей ступени
func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.CashOut(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLadderStateResponse(*state))
}
