package contract

import (
	"cases_backend/internal/catalogue"
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"cases_backend/internal/repository/inventory_repo"
	"cases_backend/internal/repository/stats_repo"
	"cases_backend/internal/repository/user_repo"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
	"testing"
)

type catCfg struct{}

func (catCfg) Cases() []model.Case { return nil }
func (catCfg) Items() []model.Item {
	return []model.Item{
		{ID: 1, Name: "AK-47 Redline", Value: 50, Weight: 40},
		{ID: 2, Name: "M4A4 Howl", Value: 150, Weight: 25},
		{ID: 3, Name: "AWP Asiimov", Value: 400, Weight: 18},
		{ID: 4, Name: "Butterfly Knife", Value: 800, Weight: 10},
	}
}

type contractCfg struct {
	lower, upper float64
}

func (c contractCfg) LowerBound() float64 { return c.lower }
func (c contractCfg) UpperBound() float64 { return c.upper }

type fixture struct {
	serv    service.ContractService
	invRepo repository.InventoryRepository
	ctx     context.Context
}

func newFixture(t *testing.T, cfg contractCfg) *fixture {
	t.Helper()

	invRepo := inventory_repo.NewInventoryRepository()
	return &fixture{
		serv: NewContractService(
			cfg,
			catalogue.New(catCfg{}),
			invRepo,
			user_repo.NewUserRepository(),
			stats_repo.NewStatsRepository(),
			wrand.NewSource(1),
		),
		invRepo: invRepo,
		ctx:     middleware.WithUserID(context.Background(), 1),
	}
}

func (f *fixture) grantThree(t *testing.T, ids ...int) []string {
	t.Helper()

	items := catCfg{}.Items()
	byID := make(map[int]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	entryIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		entry, err := f.invRepo.Grant(f.ctx, 1, byID[id])
		if err != nil {
			t.Fatalf("Grant returned error: %v", err)
		}
		entryIDs = append(entryIDs, entry.EntryID)
	}
	return entryIDs
}

func TestExchange(t *testing.T) {
	f := newFixture(t, contractCfg{lower: 0.5, upper: 2.0})

	// Средняя (50+150+400)/3 = 200, окно [100, 400]
	entryIDs := f.grantThree(t, 1, 2, 3)

	result, err := f.serv.Exchange(f.ctx, entryIDs)
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}
	if len(result.Consumed) != 3 {
		t.Fatalf("expected 3 consumed, got %d", len(result.Consumed))
	}
	if v := result.Granted.Item.Value; v < 100 || v > 400 {
		t.Fatalf("granted item outside window: %d", v)
	}

	// Чистый эффект: −2 предмета
	inv, _ := f.invRepo.List(f.ctx, 1)
	if len(inv) != 1 || inv[0].EntryID != result.Granted.EntryID {
		t.Fatalf("inventory after exchange: %+v", inv)
	}
}

func TestExchangeWrongCount(t *testing.T) {
	f := newFixture(t, contractCfg{lower: 0.5, upper: 2.0})

	entryIDs := f.grantThree(t, 1, 2, 3)

	if _, err := f.serv.Exchange(f.ctx, entryIDs[:2]); !errors.Is(err, model.ErrInvalidSelection) {
		t.Fatalf("two entries: expected ErrInvalidSelection, got %v", err)
	}
	if _, err := f.serv.Exchange(f.ctx, nil); !errors.Is(err, model.ErrInvalidSelection) {
		t.Fatalf("no entries: expected ErrInvalidSelection, got %v", err)
	}
}

func TestExchangeDuplicates(t *testing.T) {
	f := newFixture(t, contractCfg{lower: 0.5, upper: 2.0})

	entryIDs := f.grantThree(t, 1, 2, 3)

	_, err := f.serv.Exchange(f.ctx, []string{entryIDs[0], entryIDs[0], entryIDs[1]})
	if !errors.Is(err, model.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}

	inv, _ := f.invRepo.List(f.ctx, 1)
	if len(inv) != 3 {
		t.Fatalf("inventory mutated by rejected exchange: %+v", inv)
	}
}

// Пустое окно исходов — дефект каталога: инвентарь не трогаем
func TestExchangeNoEligibleOutcome(t *testing.T) {
	f := newFixture(t, contractCfg{lower: 100, upper: 200})

	entryIDs := f.grantThree(t, 1, 1, 1)

	_, err := f.serv.Exchange(f.ctx, entryIDs)
	if !errors.Is(err, model.ErrNoEligibleOutcome) {
		t.Fatalf("expected ErrNoEligibleOutcome, got %v", err)
	}

	inv, _ := f.invRepo.List(f.ctx, 1)
	if len(inv) != 3 {
		t.Fatalf("inventory mutated despite empty pool: %+v", inv)
	}
}

func TestExchangeMissingEntry(t *testing.T) {
	f := newFixture(t, contractCfg{lower: 0.5, upper: 2.0})

	entryIDs := f.grantThree(t, 1, 2, 3)

	_, err := f.serv.Exchange(f.ctx, []string{entryIDs[0], entryIDs[1], "missing"})
	if !errors.Is(err, model.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection, got %v", err)
	}

	inv, _ := f.invRepo.List(f.ctx, 1)
	if len(inv) != 3 {
		t.Fatalf("inventory mutated by rejected exchange: %+v", inv)
	}
}
