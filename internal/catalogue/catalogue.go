package catalogue

import (
	"cases_backend/internal/config"
	"cases_backend/internal/model"
)

// Catalogue Каталог кейсов и предметов.
// Собирается один раз из конфигурации и дальше только читается,
// поэтому ему не нужны блокировки.
type Catalogue struct {
	cases    []model.Case
	items    []model.Item
	caseByID map[int]model.Case
	itemByID map[int]model.Item
}

func New(cfg config.CatalogueConfig) *Catalogue {
	c := &Catalogue{
		cases:    cfg.Cases(),
		items:    cfg.Items(),
		caseByID: make(map[int]model.Case),
		itemByID: make(map[int]model.Item),
	}
	for _, cs := range c.cases {
		c.caseByID[cs.ID] = cs
	}
	for _, it := range c.items {
		c.itemByID[it.ID] = it
	}
	return c
}

func (c *Catalogue) Cases() []model.Case {
	out := make([]model.Case, len(c.cases))
	copy(out, c.cases)
	return out
}

func (c *Catalogue) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalogue) CaseByID(id int) (model.Case, bool) {
	cs, ok := c.caseByID[id]
	return cs, ok
}

func (c *Catalogue) ItemByID(id int) (model.Item, bool) {
	it, ok := c.itemByID[id]
	return it, ok
}

// ItemWeights Веса предметов в порядке каталога.
// Порядок стабилен — от него зависит воспроизводимость розыгрышей.
func (c *Catalogue) ItemWeights() []float64 {
	weights := make([]float64, len(c.items))
	for i, it := range c.items {
		weights[i] = it.Weight
	}
	return weights
}
