package ladder

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"context"
	"errors"
	"log"
)

// PlaceStake ставит ставку и открывает сессию лесенки на ступени 0.
// Не более одной активной сессии на игрока
func (s *serv) PlaceStake(ctx context.Context, amount int) (*model.LadderState, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Валидация ставки
	if amount <= 0 || amount < s.cfg.MinStake() {
		return nil, model.ErrInvalidAmount
	}

	// Сначала занимаем слот сессии, потом списываем: если списание
	// не пройдет — слот освобождаем. В обратном порядке два конкурентных
	// запроса могли бы оба успеть списать ставку
	err := s.repo.Create(ctx, userID, model.LadderSession{Stake: amount})
	if err != nil {
		return nil, err
	}

	balance, err := s.walletRepo.Debit(ctx, userID, amount, model.KindWagerStake, gameName)
	if err != nil {
		if delErr := s.repo.Delete(ctx, userID); delErr != nil {
			log.Println("failed to release ladder session:", delErr)
		}
		return nil, err
	}

	return &model.LadderState{
		Step:       0,
		Multiplier: 1.0,
		Alive:      true,
		Balance:    balance,
	}, nil
}
