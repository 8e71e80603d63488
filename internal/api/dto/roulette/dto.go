package roulette

type SpinRequest struct {
	Amount int    `json:"amount"` // Размер ставки
	Color  string `json:"color"`  // red | black | green
}

type SpinResponse struct {
	Won        bool   `json:"won"`
	BetColor   string `json:"bet_color"`
	ResultSlot int    `json:"result_slot"` // Косметический номер слота (0..14)
	Color      string `json:"color"`       // Цвет выпавшего слота
	Payout     int    `json:"payout"`
	Balance    int    `json:"balance"`
}
