package wheel

import (
	"cases_backend/internal/config"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
	"time"
)

const gameName = "wheel"

type serv struct {
	cfg        config.WheelConfig
	repo       repository.WheelRepository
	walletRepo repository.WalletRepository
	statsRepo  repository.StatsRepository
	rng        wrand.Source
	now        func() time.Time // Инжектируется для тестов перезарядки
}

// NewWheelService Создать сервис бонусного колеса
func NewWheelService(
	cfg config.WheelConfig,
	repo repository.WheelRepository,
	walletRepo repository.WalletRepository,
	statsRepo repository.StatsRepository,
	rng wrand.Source,
) service.WheelService {
	return &serv{
		cfg:        cfg,
		repo:       repo,
		walletRepo: walletRepo,
		statsRepo:  statsRepo,
		rng:        rng,
		now:        time.Now,
	}
}
