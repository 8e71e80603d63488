package profile

import "time"

type EntryResponse struct {
	EntryID    string    `json:"entry_id"`
	ItemID     int       `json:"item_id"`
	Name       string    `json:"name"`
	Value      int       `json:"value"`
	Rarity     string    `json:"rarity"`
	AcquiredAt time.Time `json:"acquired_at"`
}

type StatsResponse struct {
	TotalStaked  int            `json:"total_staked"`
	TotalPaidOut int            `json:"total_paid_out"`
	WagersByGame map[string]int `json:"wagers_by_game"`
	BestDrop     *BestDrop      `json:"best_drop"` // null, если дропов не было
}

type BestDrop struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type LeaderboardRow struct {
	Name     string `json:"name"`
	BestDrop string `json:"best_drop"`
	Value    int    `json:"value"`
}
