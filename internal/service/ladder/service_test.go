package ladder

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"cases_backend/internal/repository/ladder_repo"
	"cases_backend/internal/repository/stats_repo"
	"cases_backend/internal/repository/wallet_repo"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
	"testing"
)

type ladderCfg struct{}

func (ladderCfg) MinStake() int          { return 10 }
func (ladderCfg) BaseChance() float64    { return 75 }
func (ladderCfg) DecayPerStep() float64  { return 5 }
func (ladderCfg) FloorChance() float64   { return 10 }
func (ladderCfg) Multipliers() []float64 { return []float64{1.2, 1.5, 2.0} }

// Источник с фиксированным значением: 0.0 — гарантированный успех
// испытания, 0.999 — гарантированная неудача (шанс не выше 75%)
type fixedSource struct {
	v float64
}

func (s fixedSource) Float64() float64 { return s.v }

type fixture struct {
	serv       service.LadderService
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
		serv: NewLadderService(
			ladderCfg{},
			ladder_repo.NewLadderRepository(),
			walletRepo,
			stats_repo.NewStatsRepository(),
			rng,
		),
		walletRepo: walletRepo,
		ctx:        ctx,
	}
}

func TestPlaceStake(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 100)

	state, err := f.serv.PlaceStake(f.ctx, 50)
	if err != nil {
		t.Fatalf("PlaceStake returned error: %v", err)
	}
	if state.Step != 0 || !state.Alive || state.Balance != 50 {
		t.Fatalf("unexpected state: %+v", state)
	}

	// Вторая сессия параллельно первой запрещена
	if _, err := f.serv.PlaceStake(f.ctx, 10); !errors.Is(err, model.ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}
}

func TestPlaceStakeValidation(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 100)

	for _, amount := range []int{0, -10, 5} { // 5 ниже min_stake
		if _, err := f.serv.PlaceStake(f.ctx, amount); !errors.Is(err, model.ErrInvalidAmount) {
			t.Errorf("PlaceStake(%d): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

// Неудавшееся списание обязано освободить слот сессии
func TestPlaceStakeReleasesSessionOnDebitFailure(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 20)

	if _, err := f.serv.PlaceStake(f.ctx, 50); !errors.Is(err, model.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	// Слот свободен: следующая ставка по средствам проходит
	if _, err := f.serv.PlaceStake(f.ctx, 20); err != nil {
		t.Fatalf("session slot not released: %v", err)
	}
}

func TestCashOutAtStepZero(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 100)

	f.serv.PlaceStake(f.ctx, 50)

	state, err := f.serv.CashOut(f.ctx)
	if err != nil {
		t.Fatalf("CashOut returned error: %v", err)
	}
	// Множитель на ступени 0 равен 1.0 — чистый ноль
	if state.Payout != 50 || state.Alive {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.Balance != 100 {
		t.Fatalf("expected balance 100, got %d", state.Balance)
	}

	// Сессия разрешена, повторный кэшаут невозможен
	if _, err := f.serv.CashOut(f.ctx); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestClimbToTopAutoCashesOut(t *testing.T) {
	f := newFixture(t, fixedSource{v: 0.0}, 100)

	f.serv.PlaceStake(f.ctx, 50)

	// Три успешных подъема: ступени 1, 2 и верхняя (авто-кэшаут)
	state, err := f.serv.Climb(f.ctx)
	if err != nil || state.Step != 1 || !state.Alive || state.Multiplier != 1.2 {
		t.Fatalf("first climb: %+v, err %v", state, err)
	}
	state, err = f.serv.Climb(f.ctx)
	if err != nil || state.Step != 2 || !state.Alive || state.Multiplier != 1.5 {
		t.Fatalf("second climb: %+v, err %v", state, err)
	}
	state, err = f.serv.Climb(f.ctx)
	if err != nil {
		t.Fatalf("top climb returned error: %v", err)
	}
	if state.Alive || state.Payout != 100 { // 50 × 2.0
		t.Fatalf("expected auto cashout with payout 100, got %+v", state)
	}
	if state.Balance != 150 {
		t.Fatalf("expected balance 150, got %d", state.Balance)
	}
}

func TestClimbFailureLosesStake(t *testing.T) {
	f := newFixture(t, fixedSource{v: 0.999}, 100)

	f.serv.PlaceStake(f.ctx, 50)

	state, err := f.serv.Climb(f.ctx)
	if err != nil {
		t.Fatalf("Climb returned error: %v", err)
	}
	if state.Alive || state.Payout != 0 {
		t.Fatalf("expected resolved loss, got %+v", state)
	}
	if state.Balance != 50 {
		t.Fatalf("stake must stay debited, balance %d", state.Balance)
	}

	// Сессия разрешена
	if _, err := f.serv.Climb(f.ctx); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestClimbWithoutSession(t *testing.T) {
	f := newFixture(t, wrand.NewSource(1), 100)

	if _, err := f.serv.Climb(f.ctx); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
	if _, err := f.serv.CashOut(f.ctx); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

// Шанс затухает с каждой ступенью, но никогда не падает ниже пола
func TestChanceDecaysToFloor(t *testing.T) {
	s := NewLadderService(ladderCfg{}, ladder_repo.NewLadderRepository(), wallet_repo.NewWalletRepository(), stats_repo.NewStatsRepository(), wrand.NewSource(1)).(*serv)

	if got := s.chanceAt(0); got != 75 {
		t.Errorf("chance at step 0: %v", got)
	}
	if got := s.chanceAt(5); got != 50 {
		t.Errorf("chance at step 5: %v", got)
	}
	if got := s.chanceAt(100); got != 10 {
		t.Errorf("chance must clamp to floor, got %v", got)
	}
}
