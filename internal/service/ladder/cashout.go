package ladder

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"context"
	"errors"
)

// CashOut забирает выигрыш на текущей ступени: stake × multiplier.
// Доступен на любой ступени, пока сессия жива
func (s *serv) CashOut(ctx context.Context) (*model.LadderState, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	session, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.resolveWin(ctx, userID, session)
}
