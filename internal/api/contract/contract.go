package contract

import (
	dto "cases_backend/internal/api/dto/contract"
	"cases_backend/internal/api/httperr"
	"cases_backend/internal/converter"
	"cases_backend/internal/service"
	"cases_backend/pkg/req"
	"cases_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.ContractService
}

type Handler struct {
	serv service.ContractService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Exchange меняет три предмета инвентаря на один новый
func (h *Handler) Exchange(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ExchangeRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Exchange(r.Context(), payload.EntryIDs)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToContractExchangeResponse(*result))
}
