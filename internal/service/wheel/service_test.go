package wheel

import (
	"cases_backend/internal/config"
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"cases_backend/internal/repository/stats_repo"
	"cases_backend/internal/repository/wallet_repo"
	"cases_backend/internal/repository/wheel_repo"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
	"testing"
	"time"
)

type wheelCfg struct {
	prizes []config.WheelPrize
}

func (c wheelCfg) Cooldown() time.Duration     { return 30 * time.Minute }
func (c wheelCfg) Prizes() []config.WheelPrize { return c.prizes }

type fixture struct {
	serv       *serv
	walletRepo repository.WalletRepository
	clock      *time.Time
	ctx        context.Context
}

func newFixture(t *testing.T, prizes []config.WheelPrize) *fixture {
	t.Helper()

	walletRepo := wallet_repo.NewWalletRepository()
	s := NewWheelService(
		wheelCfg{prizes: prizes},
		wheel_repo.NewWheelRepository(),
		walletRepo,
		stats_repo.NewStatsRepository(),
		wrand.NewSource(1),
	).(*serv)

	// Подменяем часы, чтобы управлять перезарядкой из теста
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	return &fixture{
		serv:       s,
		walletRepo: walletRepo,
		clock:      &clock,
		ctx:        middleware.WithUserID(context.Background(), 1),
	}
}

func singlePrize() []config.WheelPrize {
	return []config.WheelPrize{{Amount: 100, Weight: 1}}
}

func TestSpinCreditsPrize(t *testing.T) {
	f := newFixture(t, singlePrize())

	result, err := f.serv.Spin(f.ctx)
	if err != nil {
		t.Fatalf("Spin returned error: %v", err)
	}
	if result.Prize != 100 || result.Balance != 100 {
		t.Fatalf("unexpected result: %+v", result)
	}

	entries, _ := f.walletRepo.History(f.ctx, 1)
	if len(entries) != 1 || entries[0].Kind != model.KindPromo {
		t.Fatalf("unexpected ledger: %+v", entries)
	}
}

func TestSpinOnCooldown(t *testing.T) {
	f := newFixture(t, singlePrize())

	if _, err := f.serv.Spin(f.ctx); err != nil {
		t.Fatalf("first spin returned error: %v", err)
	}

	*f.clock = f.clock.Add(10 * time.Minute)

	_, err := f.serv.Spin(f.ctx)
	if !errors.Is(err, model.ErrOnCooldown) {
		t.Fatalf("expected ErrOnCooldown, got %v", err)
	}
	var cooldown *model.CooldownError
	if !errors.As(err, &cooldown) || cooldown.Remaining != 20*time.Minute {
		t.Fatalf("expected 20m remaining, got %v", err)
	}

	// Отказ ничего не начислил
	balance, _ := f.walletRepo.Balance(f.ctx, 1)
	if balance != 100 {
		t.Fatalf("balance changed by rejected spin: %d", balance)
	}

	// После окна перезарядки спин снова проходит
	*f.clock = f.clock.Add(20 * time.Minute)
	if _, err := f.serv.Spin(f.ctx); err != nil {
		t.Fatalf("spin after cooldown returned error: %v", err)
	}
}

func TestStatus(t *testing.T) {
	f := newFixture(t, singlePrize())

	status, err := f.serv.Status(f.ctx)
	if err != nil || !status.Available {
		t.Fatalf("fresh player must see the wheel available: %+v, err %v", status, err)
	}

	f.serv.Spin(f.ctx)
	*f.clock = f.clock.Add(10 * time.Minute)

	status, err = f.serv.Status(f.ctx)
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if status.Available || status.Remaining != 1200 {
		t.Fatalf("expected 1200s remaining, got %+v", status)
	}

	*f.clock = f.clock.Add(20 * time.Minute)
	status, _ = f.serv.Status(f.ctx)
	if !status.Available {
		t.Fatalf("wheel must be available after cooldown: %+v", status)
	}
}

// Дефект таблицы призов не должен сжечь попытку игрока
func TestSpinEmptyPrizePool(t *testing.T) {
	f := newFixture(t, []config.WheelPrize{{Amount: 100, Weight: 0}})

	_, err := f.serv.Spin(f.ctx)
	if !errors.Is(err, wrand.ErrEmptyDistribution) {
		t.Fatalf("expected ErrEmptyDistribution, got %v", err)
	}

	// Якорь перезарядки не тронут
	status, _ := f.serv.Status(f.ctx)
	if !status.Available {
		t.Fatalf("cooldown anchor set by failed spin: %+v", status)
	}
}
