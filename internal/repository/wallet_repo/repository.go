package wallet_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"context"
	"sync"
	"time"
)

// Кошелек одного игрока: баланс + append-only журнал.
// Инварианты: balance >= 0 всегда; сумма всех записей равна балансу
// (стартовый баланс заходит обычной записью topup, поэтому начальная
// точка отсчета — ноль).
type wallet struct {
	balance int
	entries []model.LedgerEntry
	promos  map[string]struct{} // Использованные промокоды
}

type repo struct {
	mtx     sync.Mutex
	wallets map[int]*wallet
}

func NewWalletRepository() repository.WalletRepository {
	return &repo{
		wallets: make(map[int]*wallet),
	}
}

// CreateWallet - создает пустой кошелек для нового игрока
func (r *repo) CreateWallet(_ context.Context, userID int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.getOrCreate(userID)
	return nil
}

// Debit - списывает amount с баланса и добавляет запись со знаком минус.
// Проверка средств и мутация выполняются под одной блокировкой:
// два конкурентных списания не могут оба пройти проверку,
// которую способно выдержать только одно ("check-then-act")
func (r *repo) Debit(_ context.Context, userID int, amount int, kind model.EntryKind, meta string) (int, error) {
	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	w := r.getOrCreate(userID)
	if amount > w.balance {
		return w.balance, model.ErrInsufficientBalance
	}

	w.balance -= amount
	w.entries = append(w.entries, model.LedgerEntry{
		Amount:    -amount,
		Kind:      kind,
		CreatedAt: time.Now(),
		Meta:      meta,
	})

	return w.balance, nil
}

// Credit - начисляет amount на баланс и добавляет запись.
// Ноль разрешен (например нулевой приз колеса)
func (r *repo) Credit(_ context.Context, userID int, amount int, kind model.EntryKind, meta string) (int, error) {
	if amount < 0 {
		return 0, model.ErrInvalidAmount
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	w := r.getOrCreate(userID)
	w.balance += amount
	w.entries = append(w.entries, model.LedgerEntry{
		Amount:    amount,
		Kind:      kind,
		CreatedAt: time.Now(),
		Meta:      meta,
	})

	return w.balance, nil
}

// RedeemPromo - активация промокода.
// Проверка "код не использован" и начисление — один атомарный шаг
func (r *repo) RedeemPromo(_ context.Context, userID int, code string, amount int) (int, error) {
	if amount < 0 {
		return 0, model.ErrInvalidAmount
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	w := r.getOrCreate(userID)
	if _, used := w.promos[code]; used {
		return w.balance, model.ErrPromoUsed
	}
	w.promos[code] = struct{}{}

	w.balance += amount
	w.entries = append(w.entries, model.LedgerEntry{
		Amount:    amount,
		Kind:      model.KindPromo,
		CreatedAt: time.Now(),
		Meta:      code,
	})

	return w.balance, nil
}

// Balance - текущий баланс игрока
func (r *repo) Balance(_ context.Context, userID int) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.getOrCreate(userID).balance, nil
}

// History - упорядоченный снимок журнала (копия, мутировать безопасно)
func (r *repo) History(_ context.Context, userID int) ([]model.LedgerEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	w := r.getOrCreate(userID)
	out := make([]model.LedgerEntry, len(w.entries))
	copy(out, w.entries)

	return out, nil
}

// Вызывать только под блокировкой
func (r *repo) getOrCreate(userID int) *wallet {
	w, ok := r.wallets[userID]
	if !ok {
		w = &wallet{promos: make(map[string]struct{})}
		r.wallets[userID] = w
	}
	return w
}
