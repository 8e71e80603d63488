package profile

import (
	"cases_backend/internal/middleware"
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"context"
	"errors"
)

// Сколько строк отдает таблица лидеров
const leaderboardSize = 10

type serv struct {
	invRepo   repository.InventoryRepository
	statsRepo repository.StatsRepository
}

// NewProfileService Создать сервис профиля (инвентарь, статистика, топ дропов)
func NewProfileService(
	invRepo repository.InventoryRepository,
	statsRepo repository.StatsRepository,
) service.ProfileService {
	return &serv{
		invRepo:   invRepo,
		statsRepo: statsRepo,
	}
}

// Inventory Упорядоченный инвентарь игрока
func (s *serv) Inventory(ctx context.Context) ([]model.InventoryEntry, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.invRepo.List(ctx, userID)
}

// Stats Агрегаты по ставкам игрока
func (s *serv) Stats(ctx context.Context) (*model.PlayerStats, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	stats := s.statsRepo.PlayerStats(userID)
	return &stats, nil
}

// Leaderboard Топ дропов всех игроков
func (s *serv) Leaderboard(_ context.Context) []model.LeaderboardEntry {
	return s.statsRepo.Leaderboard(leaderboardSize)
}
