package wrand

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDistribution — в пуле нет ни одного исхода с положительным весом
// (или вес отрицательный). Это ошибка конфигурации каталога, а не игрока.
var ErrEmptyDistribution = errors.New("empty distribution")

// Source — источник равномерной случайности [0,1).
// Инжектируется в сервисы вместо глобального генератора,
// чтобы тесты могли воспроизводить розыгрыши с фиксированным сидом.
type Source interface {
	Float64() float64
}

// NewSource Создает воспроизводимый источник по сиду (для тестов)
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// DefaultSource Создает источник со случайным сидом (для продакшена)
func DefaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Validate проверяет пул весов без расхода случайности.
// Нужен там, где ошибку конфигурации надо поймать до списания ставки.
func Validate(weights []float64) error {
	if len(weights) == 0 {
		return ErrEmptyDistribution
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			return ErrEmptyDistribution
		}
		total += w
	}
	if total <= 0 {
		return ErrEmptyDistribution
	}
	return nil
}

// Pick выбирает индекс исхода по весам методом обратной CDF:
// бросаем r в [0, Σweights) и идем по пулу, накапливая веса.
// Порядок накопления стабилен (порядок пула), поэтому при фиксированном
// сиде результат полностью воспроизводим.
func Pick(src Source, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrEmptyDistribution
	}

	var total float64
	for _, w := range weights {
		if w < 0 {
			return 0, ErrEmptyDistribution
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrEmptyDistribution
	}

	r := src.Float64() * total

	cumulative := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		cumulative += w
		if r < cumulative {
			return i, nil
		}
	}

	// Из-за погрешности сложения float64 значение r могло не попасть
	// ни в один диапазон — отдаем последний исход с положительным весом,
	// молча "не выбрать ничего" нельзя.
	return last, nil
}

// Bernoulli — испытание успех/неудача с шансом в процентах (0..100).
// Реализовано как взвешенный выбор из двух исходов {chance, 100-chance}.
func Bernoulli(src Source, chancePercent float64) bool {
	if chancePercent <= 0 {
		return false
	}
	if chancePercent >= 100 {
		return true
	}
	return src.Float64()*100 < chancePercent
}

// Intn — равномерный выбор из n исходов (косметические номера слотов и т.п.)
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
