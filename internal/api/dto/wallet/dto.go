package wallet

import "time"

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type PromoRequest struct {
	Code string `json:"code"` // Промокод
}

type SellRequest struct {
	EntryID string `json:"entry_id"` // Продаваемая запись инвентаря
}

type WithdrawRequest struct {
	Amount int `json:"amount"` // Сумма заявки на вывод
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type LedgerEntryResponse struct {
	Amount    int       `json:"amount"` // Со знаком: списание < 0
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Meta      string    `json:"meta"`
}

type SaleResponse struct {
	SoldEntryID string `json:"sold_entry_id"`
	Amount      int    `json:"amount"`
	Balance     int    `json:"balance"`
}
