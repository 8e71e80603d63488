package converter

import (
	"cases_backend/internal/api/dto/upgrade"
	"cases_backend/internal/model"
)

func toUpgradeEntryResponse(entry model.InventoryEntry) upgrade.EntryResponse {
	return upgrade.EntryResponse{
		EntryID:    entry.EntryID,
		ItemID:     entry.Item.ID,
		Name:       entry.Item.Name,
		Value:      entry.Item.Value,
		Rarity:     string(entry.Item.Rarity),
		AcquiredAt: entry.AcquiredAt,
	}
}

func ToUpgradeAttemptResponse(res model.UpgradeResult) upgrade.AttemptResponse {
	resp := upgrade.AttemptResponse{
		Success: res.Success,
		Chance:  res.Chance,
	}
	if res.Granted != nil {
		granted := toUpgradeEntryResponse(*res.Granted)
		resp.Granted = &granted
	}
	return resp
}
