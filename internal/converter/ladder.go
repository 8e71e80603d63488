package converter

import (
	"cases_backend/internal/api/dto/ladder"
	"cases_backend/internal/model"
)

func ToLadderStateResponse(state model.LadderState) ladder.StateResponse {
	return ladder.StateResponse{
		Step:       state.Step,
		Multiplier: state.Multiplier,
		Alive:      state.Alive,
		Payout:     state.Payout,
		Balance:    state.Balance,
	}
}
