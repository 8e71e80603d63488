package wheel_repo

import (
	"cases_backend/internal/model"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestAcquireCooldown(t *testing.T) {
	r := NewWheelRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cooldown := 30 * time.Minute

	// Первый спин проходит всегда
	if _, err := r.Acquire(ctx, 1, base, cooldown); err != nil {
		t.Fatalf("first Acquire returned error: %v", err)
	}

	// Внутри окна перезарядки — отказ с остатком
	remaining, err := r.Acquire(ctx, 1, base.Add(10*time.Minute), cooldown)
	if !errors.Is(err, model.ErrOnCooldown) {
		t.Fatalf("expected ErrOnCooldown, got %v", err)
	}
	if remaining != 20*time.Minute {
		t.Fatalf("expected 20m remaining, got %v", remaining)
	}

	// Отказ не должен сдвинуть якорь
	last, ok, _ := r.LastSpin(ctx, 1)
	if !ok || !last.Equal(base) {
		t.Fatalf("anchor moved by failed acquire: %v", last)
	}

	// Ровно на границе окна — снова доступно
	if _, err := r.Acquire(ctx, 1, base.Add(cooldown), cooldown); err != nil {
		t.Fatalf("Acquire at cooldown boundary returned error: %v", err)
	}
}

// Из конкурентных спинов в одном окне должен пройти ровно один
func TestAcquireConcurrent(t *testing.T) {
	r := NewWheelRepository()
	ctx := context.Background()
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	const workers = 20
	var wg sync.WaitGroup
	var mtx sync.Mutex
	passed := 0

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := r.Acquire(ctx, 1, at, time.Hour); err == nil {
				mtx.Lock()
				passed++
				mtx.Unlock()
			}
		}()
	}
	wg.Wait()

	if passed != 1 {
		t.Fatalf("expected exactly 1 acquire to pass, got %d", passed)
	}
}
