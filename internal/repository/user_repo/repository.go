package user_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"context"
	"errors"
	"sync"
)

type repo struct {
	mtx     sync.RWMutex
	byID    map[int]*model.User
	byLogin map[string]*model.User
	nextID  int
}

func NewUserRepository() repository.UserRepository {
	return &repo{
		byID:    make(map[int]*model.User),
		byLogin: make(map[string]*model.User),
		nextID:  1,
	}
}

// CreateUser - создает нового пользователя в хранилище.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(_ context.Context, user *model.User) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byLogin[user.Login]; ok {
		return 0, errors.New("login already taken")
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++

	r.byID[stored.ID] = &stored
	r.byLogin[stored.Login] = &stored

	return stored.ID, nil
}

// GetUserByLogin - возвращает модель пользователя по его логину
func (r *repo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	user, ok := r.byLogin[login]
	if !ok {
		return nil, errors.New("user not found")
	}

	copied := *user
	return &copied, nil
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}

	copied := *user
	return &copied, nil
}
