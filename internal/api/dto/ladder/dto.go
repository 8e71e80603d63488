package ladder

type StakeRequest struct {
	Amount int `json:"amount"` // Размер ставки (положительное целое)
}

type StateResponse struct {
	Step       int     `json:"step"`       // Текущая ступень
	Multiplier float64 `json:"multiplier"` // Множитель на этой ступени
	Alive      bool    `json:"alive"`      // false — сессия разрешена
	Payout     int     `json:"payout"`     // Выплата (>0 только при выигрыше)
	Balance    int     `json:"balance"`    // Баланс после операции
}
