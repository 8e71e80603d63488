package wallet

import (
	"cases_backend/internal/config"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
)

type serv struct {
	cfg        config.WalletConfig
	walletRepo repository.WalletRepository
	invRepo    repository.InventoryRepository
}

// NewWalletService Создать сервис операций с кошельком
func NewWalletService(
	cfg config.WalletConfig,
	walletRepo repository.WalletRepository,
	invRepo repository.InventoryRepository,
) service.WalletService {
	return &serv{
		cfg:        cfg,
		walletRepo: walletRepo,
		invRepo:    invRepo,
	}
}
