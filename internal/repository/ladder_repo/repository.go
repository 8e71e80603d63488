package ladder_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"context"
	"sync"
)

type repo struct {
	mtx      sync.Mutex
	sessions map[int]model.LadderSession
}

func NewLadderRepository() repository.LadderRepository {
	return &repo{
		sessions: make(map[int]model.LadderSession),
	}
}

// Create - открывает сессию лесенки.
// Не более одной активной сессии на игрока
func (r *repo) Create(_ context.Context, userID int, session model.LadderSession) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[userID]; ok {
		return model.ErrSessionActive
	}
	r.sessions[userID] = session

	return nil
}

// Get - текущая активная сессия игрока
func (r *repo) Get(_ context.Context, userID int) (model.LadderSession, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[userID]
	if !ok {
		return model.LadderSession{}, model.ErrNoActiveSession
	}

	return session, nil
}

// Update - обновляет состояние активной сессии
func (r *repo) Update(_ context.Context, userID int, session model.LadderSession) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[userID]; !ok {
		return model.ErrNoActiveSession
	}
	r.sessions[userID] = session

	return nil
}

// Delete - закрывает сессию (после разрешения она выбрасывается).
// Ошибка, если сессии уже нет: так конкурентные climb/cashout
// не могут разрешить одну сессию дважды
func (r *repo) Delete(_ context.Context, userID int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sessions[userID]; !ok {
		return model.ErrNoActiveSession
	}
	delete(r.sessions, userID)

	return nil
}
