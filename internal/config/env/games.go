package env

import (
	"cases_backend/internal/config"
	"cases_backend/internal/model"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Структура файла config.yaml целиком.
// Каждый конструктор читает файл заново и отдает свою секцию —
// конфиг грузится один раз на старте, так что это не накладно.
type gamesFile struct {
	Wallet struct {
		StartBalance int            `yaml:"start_balance"`
		PromoCodes   map[string]int `yaml:"promo_codes"`
	} `yaml:"wallet"`

	Catalogue struct {
		Cases []struct {
			ID     int    `yaml:"id"`
			Name   string `yaml:"name"`
			Price  int    `yaml:"price"`
			Rarity string `yaml:"rarity"`
		} `yaml:"cases"`
		Items []struct {
			ID     int     `yaml:"id"`
			Name   string  `yaml:"name"`
			Value  int     `yaml:"value"`
			Rarity string  `yaml:"rarity"`
			Weight float64 `yaml:"weight"`
		} `yaml:"items"`
	} `yaml:"catalogue"`

	Ladder struct {
		MinStake     int       `yaml:"min_stake"`
		BaseChance   float64   `yaml:"base_chance"`
		DecayPerStep float64   `yaml:"decay_per_step"`
		FloorChance  float64   `yaml:"floor_chance"`
		Multipliers  []float64 `yaml:"multipliers"`
	} `yaml:"ladder"`

	Roulette struct {
		Weights     map[string]float64 `yaml:"weights"`
		Multipliers map[string]int     `yaml:"multipliers"`
	} `yaml:"roulette"`

	Contract struct {
		LowerBound float64 `yaml:"lower_bound"`
		UpperBound float64 `yaml:"upper_bound"`
	} `yaml:"contract"`

	Wheel struct {
		Cooldown string `yaml:"cooldown"`
		Prizes   []struct {
			Amount int     `yaml:"amount"`
			Weight float64 `yaml:"weight"`
		} `yaml:"prizes"`
	} `yaml:"wheel"`
}

func readGamesFile(path string) (*gamesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}

	return &file, nil
}

type catalogueConfig struct {
	cases []model.Case
	items []model.Item
}

func NewCatalogueConfigFromYAML(path string) (config.CatalogueConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &catalogueConfig{}
	for _, c := range file.Catalogue.Cases {
		if c.Price < 0 {
			return nil, fmt.Errorf("case %q has negative price", c.Name)
		}
		cfg.cases = append(cfg.cases, model.Case{
			ID:     c.ID,
			Name:   c.Name,
			Price:  c.Price,
			Rarity: model.Rarity(c.Rarity),
		})
	}
	for _, i := range file.Catalogue.Items {
		if i.Weight < 0 {
			return nil, fmt.Errorf("item %q has negative weight", i.Name)
		}
		cfg.items = append(cfg.items, model.Item{
			ID:     i.ID,
			Name:   i.Name,
			Value:  i.Value,
			Rarity: model.Rarity(i.Rarity),
			Weight: i.Weight,
		})
	}

	return cfg, nil
}

func (cfg *catalogueConfig) Cases() []model.Case { return cfg.cases }
func (cfg *catalogueConfig) Items() []model.Item { return cfg.items }

type walletConfig struct {
	startBalance int
	promoCodes   map[string]int
}

func NewWalletConfigFromYAML(path string) (config.WalletConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}

	if file.Wallet.StartBalance < 0 {
		return nil, fmt.Errorf("start balance must not be negative")
	}

	return &walletConfig{
		startBalance: file.Wallet.StartBalance,
		promoCodes:   file.Wallet.PromoCodes,
	}, nil
}

func (cfg *walletConfig) StartBalance() int          { return cfg.startBalance }
func (cfg *walletConfig) PromoCodes() map[string]int { return cfg.promoCodes }

type ladderConfig struct {
	minStake     int
	baseChance   float64
	decayPerStep float64
	floorChance  float64
	multipliers  []float64
}

func NewLadderConfigFromYAML(path string) (config.LadderConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}

	l := file.Ladder
	// Пол шанса обязан быть строго положительным, иначе decay может
	// довести шанс до нуля и лесенка станет невыигрываемой
	if l.FloorChance <= 0 || l.BaseChance < l.FloorChance {
		return nil, fmt.Errorf("ladder chances misconfigured: base=%v floor=%v", l.BaseChance, l.FloorChance)
	}
	if len(l.Multipliers) == 0 {
		return nil, fmt.Errorf("ladder multiplier table is empty")
	}
	prev := 1.0
	for _, m := range l.Multipliers {
		if m <= prev {
			return nil, fmt.Errorf("ladder multipliers must increase monotonically")
		}
		prev = m
	}

	return &ladderConfig{
		minStake:     l.MinStake,
		baseChance:   l.BaseChance,
		decayPerStep: l.DecayPerStep,
		floorChance:  l.FloorChance,
		multipliers:  l.Multipliers,
	}, nil
}

func (cfg *ladderConfig) MinStake() int          { return cfg.minStake }
func (cfg *ladderConfig) BaseChance() float64    { return cfg.baseChance }
func (cfg *ladderConfig) DecayPerStep() float64  { return cfg.decayPerStep }
func (cfg *ladderConfig) FloorChance() float64   { return cfg.floorChance }
func (cfg *ladderConfig) Multipliers() []float64 { return cfg.multipliers }

type rouletteConfig struct {
	weights     map[model.Color]float64
	multipliers map[model.Color]int
}

func NewRouletteConfigFromYAML(path string) (config.RouletteConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &rouletteConfig{
		weights:     make(map[model.Color]float64),
		multipliers: make(map[model.Color]int),
	}
	for color, w := range file.Roulette.Weights {
		cfg.weights[model.Color(color)] = w
	}
	for color, m := range file.Roulette.Multipliers {
		cfg.multipliers[model.Color(color)] = m
	}

	for _, color := range []model.Color{model.ColorGreen, model.ColorRed, model.ColorBlack} {
		if cfg.weights[color] <= 0 {
			return nil, fmt.Errorf("roulette weight for %q missing", color)
		}
		if cfg.multipliers[color] <= 0 {
			return nil, fmt.Errorf("roulette multiplier for %q missing", color)
		}
	}

	return cfg, nil
}

func (cfg *rouletteConfig) Weights() map[model.Color]float64 { return cfg.weights }
func (cfg *rouletteConfig) Multipliers() map[model.Color]int { return cfg.multipliers }

type contractConfig struct {
	lowerBound float64
	upperBound float64
}

func NewContractConfigFromYAML(path string) (config.ContractConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}

	c := file.Contract
	if c.LowerBound <= 0 || c.UpperBound <= c.LowerBound {
		return nil, fmt.Errorf("contract bounds misconfigured: lower=%v upper=%v", c.LowerBound, c.UpperBound)
	}

	return &contractConfig{
		lowerBound: c.LowerBound,
		upperBound: c.UpperBound,
	}, nil
}

func (cfg *contractConfig) LowerBound() float64 { return cfg.lowerBound }
func (cfg *contractConfig) UpperBound() float64 { return cfg.upperBound }

type wheelConfig struct {
	cooldown time.Duration
	prizes   []config.WheelPrize
}

func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	file, err := readGamesFile(path)
	if err != nil {
		return nil, err
	}

	cooldown, err := time.ParseDuration(file.Wheel.Cooldown)
	if err != nil {
		return nil, fmt.Errorf("invalid wheel cooldown: %w", err)
	}

	cfg := &wheelConfig{cooldown: cooldown}
	for _, p := range file.Wheel.Prizes {
		if p.Amount < 0 {
			return nil, fmt.Errorf("wheel prize must not be negative")
		}
		cfg.prizes = append(cfg.prizes, config.WheelPrize{
			Amount: p.Amount,
			Weight: p.Weight,
		})
	}
	if len(cfg.prizes) == 0 {
		return nil, fmt.Errorf("wheel prize table is empty")
	}

	return cfg, nil
}

func (cfg *wheelConfig) Cooldown() time.Duration     { return cfg.cooldown }
func (cfg *wheelConfig) Prizes() []config.WheelPrize { return cfg.prizes }
