package converter

import (
	"cases_backend/internal/api/dto/roulette"
	"cases_backend/internal/model"
)

func ToRouletteSpinResponse(res model.RouletteResult) roulette.SpinResponse {
	return roulette.SpinResponse{
		Won:        res.Won,
		BetColor:   string(res.BetColor),
		ResultSlot: res.ResultSlot,
		Color:      string(res.Color),
		Payout:     res.Payout,
		Balance:    res.Balance,
	}
}
