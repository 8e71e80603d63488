package cases

import (
	"cases_backend/internal/catalogue"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
)

type serv struct {
	cat        *catalogue.Catalogue
	walletRepo repository.WalletRepository
	invRepo    repository.InventoryRepository
	userRepo   repository.UserRepository
	statsRepo  repository.StatsRepository
	rng        wrand.Source
}

// NewCaseService Создать сервис открытия кейсов
func NewCaseService(
	cat *catalogue.Catalogue,
	walletRepo repository.WalletRepository,
	invRepo repository.InventoryRepository,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	rng wrand.Source,
) service.CaseService {
	return &serv{
		cat:        cat,
		walletRepo: walletRepo,
		invRepo:    invRepo,
		userRepo:   userRepo,
		statsRepo:  statsRepo,
		rng:        rng,
	}
}
