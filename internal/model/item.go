package model

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item Предмет каталога (неизменяемый)
type Item struct {
	ID     int
	Name   string
	Value  int     // Стоимость в минимальных единицах валюты
	Rarity Rarity  // Косметика: цвет рамки на клиенте
	Weight float64 // Вес выпадения в кейсах
}

// Case Кейс каталога (неизменяемый)
type Case struct {
	ID     int
	Name   string
	Price  int
	Rarity Rarity
}

// InventoryEntry Предмет в инвентаре игрока.
// Создается при любом гранте (кейс, апгрейд, контракт),
// уничтожается при продаже, апгрейде или обмене по контракту.
type InventoryEntry struct {
	EntryID    string // uuid
	Item       Item
	AcquiredAt time.Time
}

// Drop Запись истории выпадений из кейсов
type Drop struct {
	Item      Item
	CaseName  string
	DroppedAt time.Time
}
