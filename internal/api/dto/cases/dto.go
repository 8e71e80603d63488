package cases

import "time"

type ItemResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Value  int    `json:"value"`  // Стоимость в минимальных единицах
	Rarity string `json:"rarity"` // common | rare | epic | legendary
}

type CaseResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Rarity string `json:"rarity"`
}

type OpenCaseRequest struct {
	CaseID int `json:"case_id"` // ID кейса из каталога
}

type OpenCaseResponse struct {
	Item        ItemResponse   `json:"item"`         // Выпавший предмет (окончательный)
	Reel        []ItemResponse `json:"reel"`         // Декоративная лента для анимации
	WinnerIndex int            `json:"winner_index"` // Позиция победителя в ленте
	Balance     int            `json:"balance"`      // Баланс после списания
}

type DropResponse struct {
	Item      ItemResponse `json:"item"`
	CaseName  string       `json:"case_name"`
	DroppedAt time.Time    `json:"dropped_at"`
}
