package contract

import (
	"cases_backend/internal/catalogue"
	"cases_backend/internal/config"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
)

const gameName = "contract"

// Контракт всегда принимает ровно три предмета
const requiredItems = 3

type serv struct {
	cfg       config.ContractConfig
	cat       *catalogue.Catalogue
	invRepo   repository.InventoryRepository
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	rng       wrand.Source
}

// NewContractService Создать сервис обмена по контракту
func NewContractService(
	cfg config.ContractConfig,
	cat *catalogue.Catalogue,
	invRepo repository.InventoryRepository,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	rng wrand.Source,
) service.ContractService {
	return &serv{
		cfg:       cfg,
		cat:       cat,
		invRepo:   invRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		rng:       rng,
	}
}
