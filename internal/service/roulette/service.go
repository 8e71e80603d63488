package roulette

import (
	"cases_backend/internal/config"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
)

const gameName = "roulette"

type serv struct {
	cfg        config.RouletteConfig
	walletRepo repository.WalletRepository
	statsRepo  repository.StatsRepository
	rng        wrand.Source
}

// NewRouletteService Создать сервис цветовой рулетки
func NewRouletteService(
	cfg config.RouletteConfig,
	walletRepo repository.WalletRepository,
	statsRepo repository.StatsRepository,
	rng wrand.Source,
) service.RouletteService {
	return &serv{
		cfg:        cfg,
		walletRepo: walletRepo,
		statsRepo:  statsRepo,
		rng:        rng,
	}
}
