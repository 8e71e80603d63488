package contract

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
)

// Exchange обменивает ровно три предмета инвентаря на один предмет
// каталога со стоимостью в пределах [avg×lower, avg×upper].
// Изъятие трех и выдача одного — единый шаг (чистый эффект: −2)
func (s *serv) Exchange(ctx context.Context, entryIDs []string) (*model.ContractResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Ровно три предмета, без дублей
	if len(entryIDs) != requiredItems {
		return nil, model.ErrInvalidSelection
	}
	seen := make(map[string]struct{}, requiredItems)
	for _, id := range entryIDs {
		if _, dup := seen[id]; dup {
			return nil, model.ErrInvalidSelection
		}
		seen[id] = struct{}{}
	}

	// Средняя стоимость изымаемых предметов
	total := 0
	for _, id := range entryIDs {
		entry, err := s.invRepo.Get(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		total += entry.Item.Value
	}
	avg := float64(total) / float64(requiredItems)

	// Пул подходящих исходов собирается ДО любых изъятий:
	// пустой пул — дефект каталога, инвентарь трогать нельзя
	lower := avg * s.cfg.LowerBound()
	upper := avg * s.cfg.UpperBound()
	var pool []model.Item
	for _, item := range s.cat.Items() {
		v := float64(item.Value)
		if v >= lower && v <= upper {
			pool = append(pool, item)
		}
	}
	if len(pool) == 0 {
		return nil, model.ErrNoEligibleOutcome
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Равномерный выбор из пула — нарочно НЕ по весам каталога:
	// шансы контракта отличаются от шансов кейсов
	drawn := pool[wrand.Intn(s.rng, len(pool))]

	// Изымаем три, выдаем один — атомарно в репозитории
	granted, consumed, err := s.invRepo.Exchange(ctx, userID, entryIDs, drawn)
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.RecordWager(userID, gameName, total, drawn.Value)
	s.recordDrop(ctx, userID, drawn)

	return &model.ContractResult{
		Consumed: consumed,
		Granted:  granted,
	}, nil
}

func (s *serv) recordDrop(ctx context.Context, userID int, item model.Item) {
	name := ""
	if user, err := s.userRepo.GetUserByID(ctx, userID); err == nil {
		name = user.Name
	}
	s.statsRepo.RecordDrop(userID, name, item)
}
