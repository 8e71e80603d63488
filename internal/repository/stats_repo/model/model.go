package model

import (
	stats "cases_backend/internal/model"
	"time"
)

// Состояние статистики одного игрока
type PlayerState struct {
	Name string // Имя игрока для таблицы лидеров

	TotalStaked  int // Сумма всех ставок
	TotalPaidOut int // Сумма всех выплат

	WagersByGame map[string]int // Количество ставок по играм

	BestDrop   *stats.Item // Самый дорогой дроп игрока
	BestDropAt time.Time
}
