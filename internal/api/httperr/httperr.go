package httperr

import (
	"errors"
	"log"
	"net/http"

	"cases_backend/internal/model"
	"cases_backend/pkg/resp"
	"cases_backend/pkg/wrand"
)

// Write Переводит ошибку доменного слоя в HTTP-статус.
// Неизвестные ошибки логируются и отдаются как 500 без деталей.
func Write(w http.ResponseWriter, err error) {
	var cooldown *model.CooldownError
	if errors.As(err, &cooldown) {
		resp.WriteJSONResponse(w, http.StatusTooManyRequests, map[string]interface{}{
			"error":             err.Error(),
			"remaining_seconds": int(cooldown.Remaining.Seconds()),
		})
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidSelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, model.ErrSessionActive),
		errors.Is(err, model.ErrNoActiveSession),
		errors.Is(err, model.ErrPromoUsed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrNoEligibleOutcome):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, wrand.ErrEmptyDistribution):
		log.Println("distribution error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		log.Println("unexpected error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
