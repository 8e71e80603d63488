package wheel_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"context"
	"sync"
	"time"
)

type repo struct {
	mtx       sync.RWMutex
	lastSpins map[int]time.Time
}

func NewWheelRepository() repository.WheelRepository {
	return &repo{
		lastSpins: make(map[int]time.Time),
	}
}

// LastSpin - время последнего спина игрока.
// Второе значение false, если игрок еще ни разу не крутил колесо
func (r *repo) LastSpin(_ context.Context, userID int) (time.Time, bool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	at, ok := r.lastSpins[userID]
	return at, ok, nil
}

// Acquire - проверка перезарядки и установка нового якоря под одной
// блокировкой: два конкурентных спина не могут оба пройти проверку
func (r *repo) Acquire(_ context.Context, userID int, at time.Time, cooldown time.Duration) (time.Duration, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	last, ok := r.lastSpins[userID]
	if ok {
		elapsed := at.Sub(last)
		if elapsed < cooldown {
			return cooldown - elapsed, model.ErrOnCooldown
		}
	}

	r.lastSpins[userID] = at

	return 0, nil
}
