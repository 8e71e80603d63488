package upgrade

import (
	"cases_backend/internal/catalogue"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
)

const gameName = "upgrade"

type serv struct {
	cat       *catalogue.Catalogue
	invRepo   repository.InventoryRepository
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	rng       wrand.Source
}

// NewUpgradeService Создать сервис апгрейда предметов
func NewUpgradeService(
	cat *catalogue.Catalogue,
	invRepo repository.InventoryRepository,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	rng wrand.Source,
) service.UpgradeService {
	return &serv{
		cat:       cat,
		invRepo:   invRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		rng:       rng,
	}
}
