package cases

import (
	dto "cases_backend/internal/api/dto/cases"
	"cases_backend/internal/api/httperr"
	"cases_backend/internal/catalogue"
	"cases_backend/internal/converter"
	"cases_backend/internal/service"
	"cases_backend/pkg/req"
	"cases_backend/pkg/resp"
	"cases_backend/pkg/wrand"
	"net/http"
)

type HandlerDeps struct {
	Serv service.CaseService
	Cat  *catalogue.Catalogue
	Rand wrand.Source
}

type Handler struct {
	serv service.CaseService
	cat  *catalogue.Catalogue
	rand wrand.Source
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		cat:  deps.Cat,
		rand: deps.Rand,
	}
}

// List отдает каталог кейсов
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list := h.serv.Cases(r.Context())

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCaseResponses(list))
}

// Open открывает кейс: списывает цену, разыгрывает предмет
// и дополняет ответ декоративной лентой для анимации
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.OpenCaseRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.OpenCase(r.Context(), payload.CaseID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	reel, winnerIndex := buildReel(h.rand, h.cat, result.Item)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOpenCaseResponse(*result, reel, winnerIndex))
}

// Drops отдает историю выпадений игрока
func (h *Handler) Drops(w http.ResponseWriter, r *http.Request) {
	drops, err := h.serv.Drops(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDropResponses(drops))
}
