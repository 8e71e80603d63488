package converter

import (
	"cases_backend/internal/api/dto/cases"
	"cases_backend/internal/model"
)

func ToItemResponse(item model.Item) cases.ItemResponse {
	return cases.ItemResponse{
		ID:     item.ID,
		Name:   item.Name,
		Value:  item.Value,
		Rarity: string(item.Rarity),
	}
}

func ToCaseResponses(list []model.Case) []cases.CaseResponse {
	result := make([]cases.CaseResponse, len(list))
	for i, c := range list {
		result[i] = cases.CaseResponse{
			ID:     c.ID,
			Name:   c.Name,
			Price:  c.Price,
			Rarity: string(c.Rarity),
		}
	}
	return result
}

func ToOpenCaseResponse(res model.CaseOpenResult, reel []model.Item, winnerIndex int) cases.OpenCaseResponse {
	reelResp := make([]cases.ItemResponse, len(reel))
	for i, item := range reel {
		reelResp[i] = ToItemResponse(item)
	}

	return cases.OpenCaseResponse{
		Item:        ToItemResponse(res.Item),
		Reel:        reelResp,
		WinnerIndex: winnerIndex,
		Balance:     res.Balance,
	}
}

func ToDropResponses(drops []model.Drop) []cases.DropResponse {
	result := make([]cases.DropResponse, len(drops))
	for i, d := range drops {
		result[i] = cases.DropResponse{
			Item:      ToItemResponse(d.Item),
			CaseName:  d.CaseName,
			DroppedAt: d.DroppedAt,
		}
	}
	return result
}
