package auth_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"context"
	"errors"
	"sync"
	"time"
)

type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.Session
	userRepo repository.UserRepository
}

func NewAuthRepository(userRepo repository.UserRepository) repository.AuthRepository {
	return &repo{
		sessions: make(map[string]*model.Session),
		userRepo: userRepo,
	}
}

// CreateSession - сохраняет сессию в хранилище.
// Принимает model.Session - (ID, UserID, RefreshTokenHash, ExpiresAt)
func (r *repo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	stored := *session
	r.sessions[stored.ID] = &stored

	return nil
}

// GetRefreshTokenBySessionID - получить хэш refresh токена по session ID
func (r *repo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return "", errors.New("session not found")
	}
	if time.Now().After(session.ExpiresAt) {
		return "", errors.New("session expired")
	}

	return session.RefreshTokenHash, nil
}

// DeleteSession - удаляет сессию из хранилища
func (r *repo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, sessionID)

	return nil
}

// GetUserBySessionID - возвращает модель пользователя по session ID
func (r *repo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	r.mtx.RLock()
	session, ok := r.sessions[sessionID]
	r.mtx.RUnlock()

	if !ok {
		return nil, errors.New("session not found")
	}

	return r.userRepo.GetUserByID(ctx, session.UserID)
}
