package contract

import "time"

type ExchangeRequest struct {
	EntryIDs []string `json:"entry_ids"` // Ровно три записи инвентаря
}

type EntryResponse struct {
	EntryID    string    `json:"entry_id"`
	ItemID     int       `json:"item_id"`
	Name       string    `json:"name"`
	Value      int       `json:"value"`
	Rarity     string    `json:"rarity"`
	AcquiredAt time.Time `json:"acquired_at"`
}

type ExchangeResponse struct {
	Granted  EntryResponse   `json:"granted"`
	Consumed []EntryResponse `json:"consumed"`
}
