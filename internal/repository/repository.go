package repository

import (
	"cases_backend/internal/model"
	"context"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

// WalletRepository Кошелек игрока: баланс + append-only журнал.
// Каждая операция — одна критическая секция: проверка и мутация
// не могут быть разделены другой мутацией того же баланса.
type WalletRepository interface {
	CreateWallet(ctx context.Context, userID int) error

	// Debit Списывает amount (> 0) и добавляет запись со знаком минус.
	// Возвращает новый баланс.
	Debit(ctx context.Context, userID int, amount int, kind model.EntryKind, meta string) (int, error)

	// Credit Начисляет amount (>= 0, ноль разрешен) и добавляет запись.
	// Возвращает новый баланс.
	Credit(ctx context.Context, userID int, amount int, kind model.EntryKind, meta string) (int, error)

	// RedeemPromo Проверка "код не использован" + начисление — атомарно
	RedeemPromo(ctx context.Context, userID int, code string, amount int) (int, error)

	Balance(ctx context.Context, userID int) (int, error)
	History(ctx context.Context, userID int) ([]model.LedgerEntry, error)
}

// InventoryRepository Инвентарь игрока и история дропов
type InventoryRepository interface {
	Grant(ctx context.Context, userID int, item model.Item) (model.InventoryEntry, error)
	Get(ctx context.Context, userID int, entryID string) (model.InventoryEntry, error)
	Remove(ctx context.Context, userID int, entryID string) (model.InventoryEntry, error)

	// Exchange Удаляет все entryIDs и выдает grant одним шагом.
	// Либо применяется целиком, либо не применяется вовсе.
	Exchange(ctx context.Context, userID int, entryIDs []string, grant model.Item) (model.InventoryEntry, []model.InventoryEntry, error)

	List(ctx context.Context, userID int) ([]model.InventoryEntry, error)

	AddDrop(ctx context.Context, userID int, drop model.Drop) error
	Drops(ctx context.Context, userID int) ([]model.Drop, error)
}

// LadderRepository Активные сессии лесенки (не более одной на игрока)
type LadderRepository interface {
	Create(ctx context.Context, userID int, session model.LadderSession) error
	Get(ctx context.Context, userID int) (model.LadderSession, error)
	Update(ctx context.Context, userID int, session model.LadderSession) error
	Delete(ctx context.Context, userID int) error
}

// WheelRepository Якорь перезарядки бонусного колеса
type WheelRepository interface {
	LastSpin(ctx context.Context, userID int) (time.Time, bool, error)

	// Acquire Проверяет перезарядку и фиксирует новый якорь одним шагом.
	// Если колесо еще на перезарядке — возвращает остаток ожидания
	// и model.ErrOnCooldown, якорь не трогает
	Acquire(ctx context.Context, userID int, at time.Time, cooldown time.Duration) (remaining time.Duration, err error)
}

// StatsRepository Производная статистика по ставкам (без влияния на экономику)
type StatsRepository interface {
	RecordWager(userID int, game string, stake, payout int)
	RecordDrop(userID int, name string, item model.Item)
	PlayerStats(userID int) model.PlayerStats
	Leaderboard(limit int) []model.LeaderboardEntry
}
