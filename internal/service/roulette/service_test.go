package roulette

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"cases_backend/internal/repository/stats_repo"
	"cases_backend/internal/repository/wallet_repo"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
	"testing"
)

type rouletteCfg struct{}

func (rouletteCfg) Weights() map[model.Color]float64 {
	return map[model.Color]float64{
		model.ColorGreen: 1,
		model.ColorRed:   7,
		model.ColorBlack: 7,
	}
}

func (rouletteCfg) Multipliers() map[model.Color]int {
	return map[model.Color]int{
		model.ColorGreen: 14,
		model.ColorRed:   2,
		model.ColorBlack: 2,
	}
}

// Порядок розыгрыша фиксирован {green, red, black} с весами {1, 7, 7}:
// 0.0 попадает в green, 0.3 — в red, 0.99 — в black
type fixedSource struct {
	v float64
}

func (s fixedSource) Float64() float64 { return s.v }

type fixture struct {
	serv       service.RouletteService
	walletRepo repository.WalletRepository
	ctx        context.Context
}

func newFixture(t *testing.T, rng wrand.Source, balance int) *fixture {
	t.Helper()

	walletRepo := wallet_repo.NewWalletRepository()
	ctx := middleware.WithUserID(context.Background(), 1)
	if balance > 0 {
		walletRepo.Credit(ctx, 1, balance, model.KindTopup, "starting balance")
	}

	return &fixture{
		serv:       NewRouletteService(rouletteCfg{}, walletRepo, stats_repo.NewStatsRepository(), rng),
		walletRepo: walletRepo,
		ctx:        ctx,
	}
}

func TestSpinWin(t *testing.T) {
	f := newFixture(t, fixedSource{v: 0.3}, 100)

	result, err := f.serv.Spin(f.ctx, 10, model.ColorRed)
	if err != nil {
		t.Fatalf("Spin returned error: %v", err)
	}
	if !result.Won || result.Color != model.ColorRed {
		t.Fatalf("expected red win, got %+v", result)
	}
	if result.Payout != 20 {
		t.Fatalf("expected payout 20, got %d", result.Payout)
	}
	// 100 − 10 + 20
	if result.Balance != 110 {
		t.Fatalf("expected balance 110, got %d", result.Balance)
	}
	if result.ResultSlot < 1 || result.ResultSlot > 7 {
		t.Fatalf("red slot out of range: %d", result.ResultSlot)
	}
}

func TestSpinLoss(t *testing.T) {
	f := newFixture(t, fixedSource{v: 0.99}, 100)

	result, err := f.serv.Spin(f.ctx, 10, model.ColorRed)
	if err != nil {
		t.Fatalf("Spin returned error: %v", err)
	}
	if result.Won || result.Color != model.ColorBlack {
		t.Fatalf("expected black loss, got %+v", result)
	}
	if result.Payout != 0 || result.Balance != 90 {
		t.Fatalf("loss must keep the stake debited: %+v", result)
	}
}

func TestSpinGreen(t *testing.T) {
	f := newFixture(t, fixedSource{v: 0.0}, 100)

	result, err := f.serv.Spin(f.ctx, 10, model.ColorGreen)
	if err != nil {
		t.Fatalf("Spin returned error: %v", err)
	}
	if !result.Won || result.ResultSlot != 0 {
		t.Fatalf("expected green on slot 0, got %+v", result)
	}
	if result.Payout != 140 || result.Balance != 230 {
		t.Fatalf("green pays x14: %+v", result)
	}
}

func TestSpinValidation(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 100)

	if _, err := f.serv.Spin(f.ctx, 0, model.ColorRed); !errors.Is(err, model.ErrInvalidAmount) {
		t.Errorf("zero stake: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := f.serv.Spin(f.ctx, -5, model.ColorRed); !errors.Is(err, model.ErrInvalidAmount) {
		t.Errorf("negative stake: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := f.serv.Spin(f.ctx, 10, model.Color("blue")); !errors.Is(err, model.ErrInvalidSelection) {
		t.Errorf("unknown color: expected ErrInvalidSelection, got %v", err)
	}

	// Валидация не тронула кошелек
	balance, _ := f.walletRepo.Balance(f.ctx, 1)
	if balance != 100 {
		t.Fatalf("balance changed by rejected spins: %d", balance)
	}
}

func TestSpinInsufficientBalance(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 5)

	if _, err := f.serv.Spin(f.ctx, 10, model.ColorRed); !errors.Is(err, model.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}
