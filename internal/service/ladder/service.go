package ladder

import (
	"cases_backend/internal/config"
	"cases_backend/internal/repository"
	"cases_backend/internal/service"
	"cases_backend/pkg/wrand"
)

const gameName = "ladder"

type serv struct {
	cfg        config.LadderConfig
	repo       repository.LadderRepository
	walletRepo repository.WalletRepository
	statsRepo  repository.StatsRepository
	rng        wrand.Source
}

// NewLadderService Создать сервис лесенки (прогрессивный множитель)
func NewLadderService(
	cfg config.LadderConfig,
	repo repository.LadderRepository,
	walletRepo repository.WalletRepository,
	statsRepo repository.StatsRepository,
	rng wrand.Source,
) service.LadderService {
	return &serv{
		cfg:        cfg,
		repo:       repo,
		walletRepo: walletRepo,
		statsRepo:  statsRepo,
		rng:        rng,
	}
}

// Множитель на текущей ступени: до первого успешного подъема — 1.0,
// дальше по таблице из конфигурации
func (s *serv) multiplierAt(step int) float64 {
	if step <= 0 {
		return 1.0
	}
	table := s.cfg.Multipliers()
	if step > len(table) {
		step = len(table)
	}
	return table[step-1]
}

// Шанс успеха подъема со ступени step: base - step*decay,
// зажатый снизу полом, чтобы никогда не дойти до нуля
func (s *serv) chanceAt(step int) float64 {
	chance := s.cfg.BaseChance() - float64(step)*s.cfg.DecayPerStep()
	if chance < s.cfg.FloorChance() {
		chance = s.cfg.FloorChance()
	}
	return chance
}
