package model

import (
	"errors"
	"fmt"
	"time"
)

// Доменные ошибки. Валидация всегда выполняется до любой мутации,
// поэтому возврат любой из этих ошибок означает, что состояние не тронуто.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrNoEligibleOutcome   = errors.New("no eligible outcome")
	ErrPromoUsed           = errors.New("promo code already used")
	ErrSessionActive       = errors.New("wager session already active")
	ErrNoActiveSession     = errors.New("no active wager session")
	ErrOnCooldown          = errors.New("on cooldown")
)

// CooldownError Ошибка "колесо еще на перезарядке" с остатком времени ожидания
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("on cooldown: %s remaining", e.Remaining.Round(time.Second))
}

// Is Позволяет матчить CooldownError через errors.Is(err, ErrOnCooldown)
func (e *CooldownError) Is(target error) bool {
	return target == ErrOnCooldown
}
