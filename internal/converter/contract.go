package converter

import (
	"cases_backend/internal/api/dto/contract"
	"cases_backend/internal/model"
)

func toContractEntryResponse(entry model.InventoryEntry) contract.EntryResponse {
	return contract.EntryResponse{
		EntryID:    entry.EntryID,
		ItemID:     entry.Item.ID,
		Name:       entry.Item.Name,
		Value:      entry.Item.Value,
		Rarity:     string(entry.Item.Rarity),
		AcquiredAt: entry.AcquiredAt,
	}
}

func ToContractExchangeResponse(res model.ContractResult) contract.ExchangeResponse {
	consumed := make([]contract.EntryResponse, len(res.Consumed))
	for i, e := range res.Consumed {
		consumed[i] = toContractEntryResponse(e)
	}

	return contract.ExchangeResponse{
		Granted:  toContractEntryResponse(res.Granted),
		Consumed: consumed,
	}
}
