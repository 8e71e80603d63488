package wallet

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"context"
	"errors"
)

// Deposit пополняет баланс игрока (kind: topup)
func (s *serv) Deposit(ctx context.Context, amount int) (int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	return s.walletRepo.Credit(ctx, userID, amount, model.KindTopup, "deposit")
}

// RedeemPromo активирует промокод из конфигурации.
// Каждый код можно активировать один раз на игрока
func (s *serv) RedeemPromo(ctx context.Context, code string) (int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	amount, ok := s.cfg.PromoCodes()[code]
	if !ok {
		return 0, model.ErrInvalidSelection
	}

	return s.walletRepo.RedeemPromo(ctx, userID, code, amount)
}

// SellItem продает предмет из инвентаря по его каталожной стоимости.
// Запись инвентаря уничтожается, начисление идет с kind sale
func (s *serv) SellItem(ctx context.Context, entryID string) (*model.SaleResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	sold, err := s.invRepo.Remove(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	balance, err := s.walletRepo.Credit(ctx, userID, sold.Item.Value, model.KindSale, sold.Item.Name)
	if err != nil {
		return nil, err
	}

	return &model.SaleResult{
		Sold:    sold,
		Balance: balance,
	}, nil
}

// RequestWithdrawal списывает сумму заявкой на вывод.
// Внешних расчетов нет — это чисто журнальная операция
func (s *serv) RequestWithdrawal(ctx context.Context, amount int) (int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	if amount <= 0 {
		return 0, model.ErrInvalidAmount
	}

	return s.walletRepo.Debit(ctx, userID, amount, model.KindWithdrawal, "withdrawal request")
}

// Balance Текущий баланс игрока
func (s *serv) Balance(ctx context.Context) (int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("user id not found in context")
	}

	return s.walletRepo.Balance(ctx, userID)
}

// History Упорядоченный журнал операций кошелька
func (s *serv) History(ctx context.Context) ([]model.LedgerEntry, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.walletRepo.History(ctx, userID)
}
