package upgrade

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
)

// Attempt выполняет попытку апгрейда: исходный предмет сжигается
// до розыгрыша и не возвращается независимо от исхода — это ставка.
// Кошелек не участвует, мутирует только инвентарь
func (s *serv) Attempt(ctx context.Context, sourceEntryID string, targetItemID int) (*model.UpgradeResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Исходный предмет должен принадлежать игроку
	source, err := s.invRepo.Get(ctx, userID, sourceEntryID)
	if err != nil {
		return nil, err
	}

	// Целевой предмет должен существовать и быть дороже исходного
	target, ok := s.cat.ItemByID(targetItemID)
	if !ok {
		return nil, model.ErrInvalidSelection
	}
	if target.Value <= source.Item.Value {
		return nil, model.ErrInvalidSelection
	}

	// Шанс успеха = (стоимость исходного / стоимость целевого) × 100
	chance := float64(source.Item.Value) / float64(target.Value) * 100
	if chance > 100 {
		chance = 100
	}

	// Сжигаем исходный предмет ДО розыгрыша.
	// Если запись уже исчезла (конкурентная продажа) — попытка не состоялась
	if _, err := s.invRepo.Remove(ctx, userID, sourceEntryID); err != nil {
		return nil, err
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	success := wrand.Bernoulli(s.rng, chance)

	result := &model.UpgradeResult{
		Success: success,
		Chance:  chance,
	}

	if success {
		granted, err := s.invRepo.Grant(ctx, userID, target)
		if err != nil {
			return nil, err
		}
		result.Granted = &granted
		s.recordDrop(ctx, userID, target)
	}

	// Ставка здесь — предмет, поэтому в статистике учитываем стоимости
	payout := 0
	if success {
		payout = target.Value
	}
	s.statsRepo.RecordWager(userID, gameName, source.Item.Value, payout)

	return result, nil
}

func (s *serv) recordDrop(ctx context.Context, userID int, item model.Item) {
	name := ""
	if user, err := s.userRepo.GetUserByID(ctx, userID); err == nil {
		name = user.Name
	}
	s.statsRepo.RecordDrop(userID, name, item)
}
