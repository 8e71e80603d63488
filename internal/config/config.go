package config

import (
	"cases_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// CatalogueConfig Статический каталог кейсов и предметов.
// Только чтение: каталог — конфигурация, а не состояние рантайма.
type CatalogueConfig interface {
	Cases() []model.Case
	Items() []model.Item
}

type WalletConfig interface {
	StartBalance() int
	PromoCodes() map[string]int
}

type LadderConfig interface {
	MinStake() int
	BaseChance() float64
	DecayPerStep() float64
	FloorChance() float64
	Multipliers() []float64
}

type RouletteConfig interface {
	Weights() map[model.Color]float64
	Multipliers() map[model.Color]int
}

type ContractConfig interface {
	LowerBound() float64
	UpperBound() float64
}

// WheelPrize Приз бонусного колеса с весом выпадения
type WheelPrize struct {
	Amount int
	Weight float64
}

type WheelConfig interface {
	Cooldown() time.Duration
	Prizes() []WheelPrize
}
