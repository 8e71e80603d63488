package ladder

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
	"math"
)

// Climb выполняет один подъем по лесенке.
// Ровно одно испытание Бернулли на вызов; при неудаче сессия
// разрешается полным проигрышем (ставка уже списана)
func (s *serv) Climb(ctx context.Context) (*model.LadderState, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Активная сессия обязана существовать
	session, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Испытание успех/неудача с затухающим шансом
	success := wrand.Bernoulli(s.rng, s.chanceAt(session.Step))

	balance, err := s.walletRepo.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !success {
		// Проигрыш: сессия разрешена, выплат нет.
		// Delete вернет ошибку, если сессию уже успел разрешить
		// конкурентный cashout — тогда ничего не засчитываем
		if err := s.repo.Delete(ctx, userID); err != nil {
			return nil, err
		}
		s.statsRepo.RecordWager(userID, gameName, session.Stake, 0)

		return &model.LadderState{
			Step:       session.Step,
			Multiplier: s.multiplierAt(session.Step),
			Alive:      false,
			Balance:    balance,
		}, nil
	}

	session.Step++

	// Достигнута верхняя ступень — авто-кэшаут по верхнему множителю
	if session.Step >= len(s.cfg.Multipliers()) {
		return s.resolveWin(ctx, userID, session)
	}

	if err := s.repo.Update(ctx, userID, session); err != nil {
		return nil, err
	}

	return &model.LadderState{
		Step:       session.Step,
		Multiplier: s.multiplierAt(session.Step),
		Alive:      true,
		Balance:    balance,
	}, nil
}

// Разрешение сессии выигрышем: выплата stake × multiplier
func (s *serv) resolveWin(ctx context.Context, userID int, session model.LadderSession) (*model.LadderState, error) {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return nil, err
	}

	mult := s.multiplierAt(session.Step)
	payout := int(math.Round(float64(session.Stake) * mult))

	balance, err := s.walletRepo.Credit(ctx, userID, payout, model.KindWagerPayout, gameName)
	if err != nil {
		return nil, err
	}

	s.statsRepo.RecordWager(userID, gameName, session.Stake, payout)

	return &model.LadderState{
		Step:       session.Step,
		Multiplier: mult,
		Alive:      false,
		Payout:     payout,
		Balance:    balance,
	}, nil
}
