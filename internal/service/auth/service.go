package auth

import (
	"cases_backend/internal/config"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
)

type serv struct {
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	walletRepo repository.WalletRepository
	jwtConfig  config.JWTConfig
	walletCfg  config.WalletConfig
}

// NewAuthService Создать сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	walletRepo repository.WalletRepository,
	jwtConfig config.JWTConfig,
	walletCfg config.WalletConfig,
) service.AuthService {
	return &serv{
		userRepo:   userRepo,
		authRepo:   authRepo,
		walletRepo: walletRepo,
		jwtConfig:  jwtConfig,
		walletCfg:  walletCfg,
	}
}
