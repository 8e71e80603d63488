package cases

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
	"log"
	"time"
)

const gameName = "cases"

// Cases Список кейсов каталога
func (s *serv) Cases(_ context.Context) []model.Case {
	return s.cat.Cases()
}

// OpenCase выполняет одно открытие кейса: списание цены, один розыгрыш,
// выдача предмета. Ровно один розыгрыш на вызов, без повторов
func (s *serv) OpenCase(ctx context.Context, caseID int) (*model.CaseOpenResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Ищем кейс в каталоге
	cs, ok := s.cat.CaseByID(caseID)
	if !ok {
		return nil, model.ErrInvalidSelection
	}

	// Проверяем пул предметов ДО списания: ошибка конфигурации каталога
	// не должна тронуть ни кошелек, ни инвентарь
	weights := s.cat.ItemWeights()
	if err := wrand.Validate(weights); err != nil {
		return nil, err
	}

	// Списываем цену кейса (бесплатных кейсов в каталоге нет,
	// но цена 0 формально разрешена)
	balance, err := s.walletRepo.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cs.Price > 0 {
		balance, err = s.walletRepo.Debit(ctx, userID, cs.Price, model.KindWagerStake, cs.Name)
		if err != nil {
			return nil, err
		}
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Один взвешенный розыгрыш по каталогу. Результат окончательный:
	// анимация на клиенте строится уже вокруг известного победителя
	idx, err := wrand.Pick(s.rng, weights)
	if err != nil {
		// Пул уже проверен, сюда попадать не должны
		log.Println("case draw failed after debit:", err)
		return nil, err
	}
	item := s.cat.Items()[idx]

	// Выдаем предмет и пишем историю дропов
	if _, err := s.invRepo.Grant(ctx, userID, item); err != nil {
		return nil, err
	}
	err = s.invRepo.AddDrop(ctx, userID, model.Drop{
		Item:      item,
		CaseName:  cs.Name,
		DroppedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику (чистая косметика, на экономику не влияет)
	s.statsRepo.RecordWager(userID, gameName, cs.Price, 0)
	s.recordDrop(ctx, userID, item)

	return &model.CaseOpenResult{
		Item:    item,
		Balance: balance,
	}, nil
}

// Drops История выпадений игрока
func (s *serv) Drops(ctx context.Context) ([]model.Drop, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.invRepo.Drops(ctx, userID)
}

func (s *serv) recordDrop(ctx context.Context, userID int, item model.Item) {
	name := ""
	if user, err := s.userRepo.GetUserByID(ctx, userID); err == nil {
		name = user.Name
	}
	s.statsRepo.RecordDrop(userID, name, item)
}
