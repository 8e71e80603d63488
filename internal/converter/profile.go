package converter

import (
	"cases_backend/internal/api/dto/profile"
	"cases_backend/internal/model"
)

func ToInventoryResponses(entries []model.InventoryEntry) []profile.EntryResponse {
	result := make([]profile.EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = profile.EntryResponse{
			EntryID:    e.EntryID,
			ItemID:     e.Item.ID,
			Name:       e.Item.Name,
			Value:      e.Item.Value,
			Rarity:     string(e.Item.Rarity),
			AcquiredAt: e.AcquiredAt,
		}
	}
	return result
}

func ToStatsResponse(stats model.PlayerStats) profile.StatsResponse {
	resp := profile.StatsResponse{
		TotalStaked:  stats.TotalStaked,
		TotalPaidOut: stats.TotalPaidOut,
		WagersByGame: stats.WagersByGame,
	}
	if stats.BestDrop != nil {
		resp.BestDrop = &profile.BestDrop{
			Name:  stats.BestDrop.Name,
			Value: stats.BestDrop.Value,
		}
	}
	return resp
}

func ToLeaderboardRows(entries []model.LeaderboardEntry) []profile.LeaderboardRow {
	result := make([]profile.LeaderboardRow, len(entries))
	for i, e := range entries {
		result[i] = profile.LeaderboardRow{
			Name:     e.Name,
			BestDrop: e.BestDrop.Name,
			Value:    e.BestDrop.Value,
		}
	}
	return result
}
