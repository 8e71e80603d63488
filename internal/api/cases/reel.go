package cases

import (
	"cases_backend/internal/catalogue"
	"cases_backend/internal/model"
	"cases_backend/pkg/wrand"
)

const (
	reelLength  = 30
	winnerIndex = 24 // Позиция, на которой лента останавливается на клиенте
)

// buildReel собирает декоративную ленту прокрутки.
// Исход уже разыгран сервисом: победитель стоит на фиксированной
// позиции, остальные слоты — приманки, на результат не влияющие.
func buildReel(src wrand.Source, cat *catalogue.Catalogue, winner model.Item) ([]model.Item, int) {
	items := cat.Items()
	weights := cat.ItemWeights()

	reel := make([]model.Item, reelLength)
	for i := range reel {
		if i == winnerIndex {
			reel[i] = winner
			continue
		}

		idx, err := wrand.Pick(src, weights)
		if err != nil {
			reel[i] = winner
			continue
		}
		reel[i] = items[idx]
	}

	return reel, winnerIndex
}
