package upgrade

import (
	dto "cases_backend/internal/api/dto/upgrade"
	"cases_backend/internal/api/httperr"
	"cases_backend/internal/converter"
	"cases_backend/internal/service"
	"cases_backend/pkg/req"
	"cases_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.UpgradeService
}

type Handler struct {
	serv service.UpgradeService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Attempt разыгрывает апгрейд предмета: источник сгорает всегда
func (h *Handler) Attempt(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AttemptRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Attempt(r.Context(), payload.SourceEntryID, payload.TargetItemID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUpgradeAttemptResponse(*result))
}
