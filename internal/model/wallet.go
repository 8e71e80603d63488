package model

import "time"

type EntryKind string

const (
	KindTopup       EntryKind = "topup"
	KindPromo       EntryKind = "promo"
	KindWagerStake  EntryKind = "wager-stake"
	KindWagerPayout EntryKind = "wager-payout"
	KindSale        EntryKind = "sale"
	KindWithdrawal  EntryKind = "withdrawal-request"
)

// LedgerEntry Запись журнала кошелька.
// После добавления записи не изменяются и не удаляются.
type LedgerEntry struct {
	Amount    int // Со знаком: списание < 0, начисление >= 0
	Kind      EntryKind
	CreatedAt time.Time
	Meta      string
}
