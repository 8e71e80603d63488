package app

import (
	authAPI "cases_backend/internal/api/auth"
	casesAPI "cases_backend/internal/api/cases"
	contractAPI "cases_backend/internal/api/contract"
	ladderAPI "cases_backend/internal/api/ladder"
	profileAPI "cases_backend/internal/api/profile"
	rouletteAPI "cases_backend/internal/api/roulette"
	upgradeAPI "cases_backend/internal/api/upgrade"
	walletAPI "cases_backend/internal/api/wallet"
	wheelAPI "cases_backend/internal/api/wheel"
	"cases_backend/internal/catalogue"
	"cases_backend/internal/config"
	"cases_backend/internal/config/env"
	"cases_backend/internal/middleware"
	"cases_backend/internal/repository"
	"cases_backend/internal/repository/auth_repo"
	"cases_backend/internal/repository/inventory_repo"
	"cases_backend/internal/repository/ladder_repo"
	"cases_backend/internal/repository/stats_repo"
	"cases_backend/internal/repository/user_repo"
	"cases_backend/internal/repository/wallet_repo"
	"cases_backend/internal/repository/wheel_repo"
	"cases_backend/internal/service"
	authServ "cases_backend/internal/service/auth"
	"cases_backend/internal/service/cases"
	"cases_backend/internal/service/contract"
	"cases_backend/internal/service/ladder"
	"cases_backend/internal/service/profile"
	"cases_backend/internal/service/roulette"
	"cases_backend/internal/service/upgrade"
	"cases_backend/internal/service/wallet"
	"cases_backend/internal/service/wheel"
	"cases_backend/pkg/wrand"
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const gamesConfigPath = "config.yaml"

type ServiceProvider struct {
	// Random source, общий для всех игр
	rng wrand.Source

	// Configs
	jwtCfg       config.JWTConfig
	httpCfg      config.HTTPConfig
	catalogueCfg config.CatalogueConfig
	walletCfg    config.WalletConfig
	ladderCfg    config.LadderConfig
	rouletteCfg  config.RouletteConfig
	contractCfg  config.ContractConfig
	wheelCfg     config.WheelConfig

	// Catalogue
	cat *catalogue.Catalogue

	// Repositories
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	walletRepo repository.WalletRepository
	invRepo    repository.InventoryRepository
	ladderRepo repository.LadderRepository
	wheelRepo  repository.WheelRepository
	statsRepo  repository.StatsRepository

	// Services
	authSrv     service.AuthService
	caseSrv     service.CaseService
	ladderSrv   service.LadderService
	rouletteSrv service.RouletteService
	upgradeSrv  service.UpgradeService
	contractSrv service.ContractService
	wheelSrv    service.WheelService
	walletSrv   service.WalletService
	profileSrv  service.ProfileService

	// Handlers
	authHand     *authAPI.Handler
	casesHand    *casesAPI.Handler
	ladderHand   *ladderAPI.Handler
	rouletteHand *rouletteAPI.Handler
	upgradeHand  *upgradeAPI.Handler
	contractHand *contractAPI.Handler
	wheelHand    *wheelAPI.Handler
	walletHand   *walletAPI.Handler
	profileHand  *profileAPI.Handler

	// Router and HTTP config
	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Rand() wrand.Source {
	if sp.rng == nil {
		sp.rng = wrand.DefaultSource()
	}
	return sp.rng
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) CatalogueCfg() config.CatalogueConfig {
	if sp.catalogueCfg == nil {
		cfg, err := env.NewCatalogueConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get catalogue config: " + err.Error())
		}
		sp.catalogueCfg = cfg
	}
	return sp.catalogueCfg
}

func (sp *ServiceProvider) WalletCfg() config.WalletConfig {
	if sp.walletCfg == nil {
		cfg, err := env.NewWalletConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get wallet config: " + err.Error())
		}
		sp.walletCfg = cfg
	}
	return sp.walletCfg
}

func (sp *ServiceProvider) LadderCfg() config.LadderConfig {
	if sp.ladderCfg == nil {
		cfg, err := env.NewLadderConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get ladder config: " + err.Error())
		}
		sp.ladderCfg = cfg
	}
	return sp.ladderCfg
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		cfg, err := env.NewRouletteConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get roulette config: " + err.Error())
		}
		sp.rouletteCfg = cfg
	}
	return sp.rouletteCfg
}

func (sp *ServiceProvider) ContractCfg() config.ContractConfig {
	if sp.contractCfg == nil {
		cfg, err := env.NewContractConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get contract config: " + err.Error())
		}
		sp.contractCfg = cfg
	}
	return sp.contractCfg
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) Catalogue() *catalogue.Catalogue {
	if sp.cat == nil {
		sp.cat = catalogue.New(sp.CatalogueCfg())
	}
	return sp.cat
}

func (sp *ServiceProvider) UserRepo() repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository()
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthRepo() repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.UserRepo())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) WalletRepo() repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository()
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) InventoryRepo() repository.InventoryRepository {
	if sp.invRepo == nil {
		sp.invRepo = inventory_repo.NewInventoryRepository()
	}
	return sp.invRepo
}

func (sp *ServiceProvider) LadderRepo() repository.LadderRepository {
	if sp.ladderRepo == nil {
		sp.ladderRepo = ladder_repo.NewLadderRepository()
	}
	return sp.ladderRepo
}

func (sp *ServiceProvider) WheelRepo() repository.WheelRepository {
	if sp.wheelRepo == nil {
		sp.wheelRepo = wheel_repo.NewWheelRepository()
	}
	return sp.wheelRepo
}

func (sp *ServiceProvider) StatsRepo() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authSrv == nil {
		sp.authSrv = authServ.NewAuthService(
			sp.UserRepo(),
			sp.AuthRepo(),
			sp.WalletRepo(),
			sp.JWTCfg(),
			sp.WalletCfg(),
		)
	}
	return sp.authSrv
}

func (sp *ServiceProvider) CaseService() service.CaseService {
	if sp.caseSrv == nil {
		sp.caseSrv = cases.NewCaseService(
			sp.Catalogue(),
			sp.WalletRepo(),
			sp.InventoryRepo(),
			sp.UserRepo(),
			sp.StatsRepo(),
			sp.Rand(),
		)
	}
	return sp.caseSrv
}

func (sp *ServiceProvider) LadderService() service.LadderService {
	if sp.ladderSrv == nil {
		sp.ladderSrv = ladder.NewLadderService(
			sp.LadderCfg(),
			sp.LadderRepo(),
			sp.WalletRepo(),
			sp.StatsRepo(),
			sp.Rand(),
		)
	}
	return sp.ladderSrv
}

func (sp *ServiceProvider) RouletteService() service.RouletteService {
	if sp.rouletteSrv == nil {
		sp.rouletteSrv = roulette.NewRouletteService(
			sp.RouletteCfg(),
			sp.WalletRepo(),
			sp.StatsRepo(),
			sp.Rand(),
		)
	}
	return sp.rouletteSrv
}

func (sp *ServiceProvider) UpgradeService() service.UpgradeService {
	if sp.upgradeSrv == nil {
		sp.upgradeSrv = upgrade.NewUpgradeService(
			sp.Catalogue(),
			sp.InventoryRepo(),
			sp.UserRepo(),
			sp.StatsRepo(),
			sp.Rand(),
		)
	}
	return sp.upgradeSrv
}

func (sp *ServiceProvider) ContractService() service.ContractService {
	if sp.contractSrv == nil {
		sp.contractSrv = contract.NewContractService(
			sp.ContractCfg(),
			sp.Catalogue(),
			sp.InventoryRepo(),
			sp.UserRepo(),
			sp.StatsRepo(),
			sp.Rand(),
		)
	}
	return sp.contractSrv
}

func (sp *ServiceProvider) WheelService() service.WheelService {
	if sp.wheelSrv == nil {
		sp.wheelSrv = wheel.NewWheelService(
			sp.WheelCfg(),
			sp.WheelRepo(),
			sp.WalletRepo(),
			sp.StatsRepo(),
			sp.Rand(),
		)
	}
	return sp.wheelSrv
}

func (sp *ServiceProvider) WalletService() service.WalletService {
	if sp.walletSrv == nil {
		sp.walletSrv = wallet.NewWalletService(
			sp.WalletCfg(),
			sp.WalletRepo(),
			sp.InventoryRepo(),
		)
	}
	return sp.walletSrv
}

func (sp *ServiceProvider) ProfileService() service.ProfileService {
	if sp.profileSrv == nil {
		sp.profileSrv = profile.NewProfileService(
			sp.InventoryRepo(),
			sp.StatsRepo(),
		)
	}
	return sp.profileSrv
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService()})
	}
	return sp.authHand
}

func (sp *ServiceProvider) CasesHandler() *casesAPI.Handler {
	if sp.casesHand == nil {
		sp.casesHand = casesAPI.NewHandler(casesAPI.HandlerDeps{
			Serv: sp.CaseService(),
			Cat:  sp.Catalogue(),
			Rand: sp.Rand(),
		})
	}
	return sp.casesHand
}

func (sp *ServiceProvider) LadderHandler() *ladderAPI.Handler {
	if sp.ladderHand == nil {
		sp.ladderHand = ladderAPI.NewHandler(ladderAPI.HandlerDeps{Serv: sp.LadderService()})
	}
	return sp.ladderHand
}

func (sp *ServiceProvider) RouletteHandler() *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService()})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) UpgradeHandler() *upgradeAPI.Handler {
	if sp.upgradeHand == nil {
		sp.upgradeHand = upgradeAPI.NewHandler(upgradeAPI.HandlerDeps{Serv: sp.UpgradeService()})
	}
	return sp.upgradeHand
}

func (sp *ServiceProvider) ContractHandler() *contractAPI.Handler {
	if sp.contractHand == nil {
		sp.contractHand = contractAPI.NewHandler(contractAPI.HandlerDeps{Serv: sp.ContractService()})
	}
	return sp.contractHand
}

func (sp *ServiceProvider) WheelHandler() *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.WheelService()})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) WalletHandler() *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService()})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) ProfileHandler() *profileAPI.Handler {
	if sp.profileHand == nil {
		sp.profileHand = profileAPI.NewHandler(profileAPI.HandlerDeps{Serv: sp.ProfileService()})
	}
	return sp.profileHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints (публичные)
		authHandler := sp.AuthHandler()
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)

		// Публичный каталог и таблица лучших дропов
		r.Get("/cases", sp.CasesHandler().List)
		r.Get("/leaderboard", sp.ProfileHandler().Leaderboard)

		// Игровые endpoints (требуют access токен)
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))

			casesHandler := sp.CasesHandler()
			rr.Post("/cases/open", casesHandler.Open)
			rr.Get("/cases/drops", casesHandler.Drops)

			ladderHandler := sp.LadderHandler()
			rr.Route("/ladder", func(rc chi.Router) {
				rc.Post("/stake", ladderHandler.Stake)
				rc.Post("/climb", ladderHandler.Climb)
				rc.Post("/cashout", ladderHandler.CashOut)
			})

			rr.Post("/roulette/spin", sp.RouletteHandler().Spin)
			rr.Post("/upgrade/attempt", sp.UpgradeHandler().Attempt)
			rr.Post("/contract/exchange", sp.ContractHandler().Exchange)

			wheelHandler := sp.WheelHandler()
			rr.Route("/wheel", func(rc chi.Router) {
				rc.Post("/spin", wheelHandler.Spin)
				rc.Get("/status", wheelHandler.Status)
			})

			walletHandler := sp.WalletHandler()
			rr.Route("/wallet", func(rc chi.Router) {
				rc.Get("/balance", walletHandler.Balance)
				rc.Get("/history", walletHandler.History)
				rc.Post("/deposit", walletHandler.Deposit)
				rc.Post("/promo", walletHandler.Promo)
				rc.Post("/sell", walletHandler.Sell)
				rc.Post("/withdraw", walletHandler.Withdraw)
			})

			profileHandler := sp.ProfileHandler()
			rr.Route("/profile", func(rc chi.Router) {
				rc.Get("/inventory", profileHandler.Inventory)
				rc.Get("/stats", profileHandler.Stats)
			})
		})

		sp.router = r
	}

	return sp.router
}
