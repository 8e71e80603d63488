package wallet

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"cases_backend/internal/repository/inventory_repo"
	"cases_backend/internal/repository/wallet_repo"
	"cases_backend/internal/service"
	"context"
	"errors"
	"testing"
)

type walletCfg struct{}

func (walletCfg) StartBalance() int { return 1000 }
func (walletCfg) PromoCodes() map[string]int {
	return map[string]int{"standoff": 500}
}

type fixture struct {
	serv    service.WalletService
	invRepo repository.InventoryRepository
	ctx     context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	invRepo := inventory_repo.NewInventoryRepository()
	return &fixture{
		serv:    NewWalletService(walletCfg{}, wallet_repo.NewWalletRepository(), invRepo),
		invRepo: invRepo,
		ctx:     middleware.WithUserID(context.Background(), 1),
	}
}

func TestDeposit(t *testing.T) {
	f := newFixture(t)

	balance, err := f.serv.Deposit(f.ctx, 300)
	if err != nil || balance != 300 {
		t.Fatalf("Deposit: balance %d, err %v", balance, err)
	}

	for _, amount := range []int{0, -100} {
		if _, err := f.serv.Deposit(f.ctx, amount); !errors.Is(err, model.ErrInvalidAmount) {
			t.Errorf("Deposit(%d): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestRedeemPromo(t *testing.T) {
	f := newFixture(t)

	balance, err := f.serv.RedeemPromo(f.ctx, "standoff")
	if err != nil || balance != 500 {
		t.Fatalf("RedeemPromo: balance %d, err %v", balance, err)
	}

	// Повторная активация того же кода
	if _, err := f.serv.RedeemPromo(f.ctx, "standoff"); !errors.Is(err, model.ErrPromoUsed) {
		t.Fatalf("expected ErrPromoUsed, got %v", err)
	}

	// Кода нет в конфигурации
	if _, err := f.serv.RedeemPromo(f.ctx, "nosuchcode"); !errors.Is(err, model.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestSellItem(t *testing.T) {
	f := newFixture(t)

	entry, _ := f.invRepo.Grant(f.ctx, 1, model.Item{ID: 3, Name: "AWP Asiimov", Value: 400})

	result, err := f.serv.SellItem(f.ctx, entry.EntryID)
	if err != nil {
		t.Fatalf("SellItem returned error: %v", err)
	}
	if result.Balance != 400 || result.Sold.EntryID != entry.EntryID {
		t.Fatalf("unexpected sale: %+v", result)
	}

	// Запись уничтожена, повторная продажа невозможна
	if _, err := f.serv.SellItem(f.ctx, entry.EntryID); !errors.Is(err, model.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}

	history, _ := f.serv.History(f.ctx)
	if len(history) != 1 || history[0].Kind != model.KindSale || history[0].Amount != 400 {
		t.Fatalf("unexpected ledger: %+v", history)
	}
}

func TestRequestWithdrawal(t *testing.T) {
	f := newFixture(t)

	f.serv.Deposit(f.ctx, 300)

	balance, err := f.serv.RequestWithdrawal(f.ctx, 200)
	if err != nil || balance != 100 {
		t.Fatalf("RequestWithdrawal: balance %d, err %v", balance, err)
	}

	if _, err := f.serv.RequestWithdrawal(f.ctx, 200); !errors.Is(err, model.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if _, err := f.serv.RequestWithdrawal(f.ctx, 0); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// Сумма журнала равна балансу
	history, _ := f.serv.History(f.ctx)
	sum := 0
	for _, e := range history {
		sum += e.Amount
	}
	current, _ := f.serv.Balance(f.ctx)
	if sum != current {
		t.Fatalf("ledger sum %d != balance %d", sum, current)
	}
}
