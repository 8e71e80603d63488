package upgrade

import "time"

type AttemptRequest struct {
	SourceEntryID string `json:"source_entry_id"` // Запись инвентаря-источник
	TargetItemID  int    `json:"target_item_id"`  // Целевой предмет каталога
}

type EntryResponse struct {
	EntryID    string    `json:"entry_id"`
	ItemID     int       `json:"item_id"`
	Name       string    `json:"name"`
	Value      int       `json:"value"`
	Rarity     string    `json:"rarity"`
	AcquiredAt time.Time `json:"acquired_at"`
}

type AttemptResponse struct {
	Success bool           `json:"success"`
	Chance  float64        `json:"chance"`  // Шанс успеха в процентах
	Granted *EntryResponse `json:"granted"` // null при неудаче
}
