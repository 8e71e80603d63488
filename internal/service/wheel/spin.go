package wheel

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
)

// Spin крутит бонусное колесо. Бесплатно и строго аддитивно к балансу;
// единственное ограничение — перезарядка между спинами
func (s *serv) Spin(ctx context.Context) (*model.WheelResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Проверяем таблицу призов до захвата перезарядки:
	// дефект конфигурации не должен сжечь попытку игрока
	prizes := s.cfg.Prizes()
	weights := make([]float64, len(prizes))
	for i, p := range prizes {
		weights[i] = p.Weight
	}
	if err := wrand.Validate(weights); err != nil {
		return nil, err
	}

	// Захват перезарядки: проверка и новый якорь — один атомарный шаг
	remaining, err := s.repo.Acquire(ctx, userID, s.now(), s.cfg.Cooldown())
	if err != nil {
		return nil, &model.CooldownError{Remaining: remaining}
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Один взвешенный розыгрыш приза
	idx, err := wrand.Pick(s.rng, weights)
	if err != nil {
		return nil, err
	}
	prize := prizes[idx].Amount

	// Начисляем приз (ноль формально разрешен)
	balance, err := s.walletRepo.Credit(ctx, userID, prize, model.KindPromo, gameName)
	if err != nil {
		return nil, err
	}

	// Обновляем статистику (ставка нулевая — колесо бесплатное)
	s.statsRepo.RecordWager(userID, gameName, 0, prize)

	return &model.WheelResult{
		Prize:   prize,
		Balance: balance,
	}, nil
}

// Status Доступность колеса и остаток ожидания
func (s *serv) Status(ctx context.Context) (*model.WheelStatus, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	last, spun, err := s.repo.LastSpin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !spun {
		return &model.WheelStatus{Available: true}, nil
	}

	elapsed := s.now().Sub(last)
	if elapsed >= s.cfg.Cooldown() {
		return &model.WheelStatus{Available: true}, nil
	}

	return &model.WheelStatus{
		Available: false,
		Remaining: int((s.cfg.Cooldown() - elapsed).Seconds()),
	}, nil
}
