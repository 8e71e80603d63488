package wheel

type SpinResponse struct {
	Prize   int `json:"prize"`   // Выигранная сумма
	Balance int `json:"balance"` // Баланс после начисления
}

type StatusResponse struct {
	Available bool `json:"available"`
	Remaining int  `json:"remaining_seconds"` // 0, если колесо доступно
}
