package roulette

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
	"context"
	"errors"
)

// Порядок цветов фиксирован: от него зависит воспроизводимость
// розыгрыша при фиксированном сиде
var colorOrder = []model.Color{model.ColorGreen, model.ColorRed, model.ColorBlack}

// Раскладка косметических номеров слотов по цветам:
// зеленый {0}, красный {1..7}, черный {8..14}.
// Номер ничего не решает — вся логика выплат идет по цвету
const (
	redSlotBase   = 1
	blackSlotBase = 8
	slotsPerColor = 7
)

// Spin выполняет один спин рулетки: списание ставки, один взвешенный
// розыгрыш цвета, выплата по множителю при совпадении.
// Частичных возвратов нет
func (s *serv) Spin(ctx context.Context, amount int, color model.Color) (*model.RouletteResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Валидация ставки и выбранного цвета
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}
	multipliers := s.cfg.Multipliers()
	if _, ok := multipliers[color]; !ok {
		return nil, model.ErrInvalidSelection
	}

	// Списание ставки
	balance, err := s.walletRepo.Debit(ctx, userID, amount, model.KindWagerStake, gameName)
	if err != nil {
		return nil, err
	}

	// КЛЮЧЕВОЙ ВЫЗОВ
	// Один взвешенный розыгрыш цвета {green:1, red:7, black:7}
	weights := make([]float64, len(colorOrder))
	for i, c := range colorOrder {
		weights[i] = s.cfg.Weights()[c]
	}
	idx, err := wrand.Pick(s.rng, weights)
	if err != nil {
		return nil, err
	}
	resultColor := colorOrder[idx]

	// Косметический номер слота внутри цвета
	var slot int
	switch resultColor {
	case model.ColorGreen:
		slot = 0
	case model.ColorRed:
		slot = redSlotBase + wrand.Intn(s.rng, slotsPerColor)
	case model.ColorBlack:
		slot = blackSlotBase + wrand.Intn(s.rng, slotsPerColor)
	}

	// Выплата при совпадении цвета
	won := resultColor == color
	payout := 0
	if won {
		payout = amount * multipliers[color]
		balance, err = s.walletRepo.Credit(ctx, userID, payout, model.KindWagerPayout, gameName)
		if err != nil {
			return nil, err
		}
	}

	// Обновляем статистику
	s.statsRepo.RecordWager(userID, gameName, amount, payout)

	return &model.RouletteResult{
		Won:        won,
		BetColor:   color,
		ResultSlot: slot,
		Color:      resultColor,
		Payout:     payout,
		Balance:    balance,
	}, nil
}
