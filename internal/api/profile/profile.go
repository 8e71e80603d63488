package profile

import (
	"cases_backend/internal/api/httperr"
	"cases_backend/internal/converter"
	"cases_backend/internal/service"
	"cases_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.ProfileService
}

type Handler struct {
	serv service.ProfileService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Inventory отдает инвентарь игрока
func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Inventory(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToInventoryResponses(entries))
}

// Stats отдает агрегаты по ставкам игрока
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

// Leaderboard отдает таблицу лучших дропов (публичная)
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries := h.serv.Leaderboard(r.Context())

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardRows(entries))
}
