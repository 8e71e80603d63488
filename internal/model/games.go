package model

type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
	ColorGreen Color = "green"
)

// CaseOpenResult Результат открытия кейса
type CaseOpenResult struct {
	Item    Item
	Balance int // Баланс после списания цены кейса
}

// LadderSession Активная сессия игры "лесенка".
// Живет от ставки до разрешения, не более одной на игрока.
type LadderSession struct {
	Stake int
	Step  int
}

// LadderState Состояние лесенки, возвращаемое клиенту после хода
type LadderState struct {
	Step       int
	Multiplier float64
	Alive      bool // false — сессия разрешилась (проигрыш или авто-кэшаут)
	Payout     int  // > 0 только если сессия разрешилась выигрышем
	Balance    int
}

// RouletteResult Результат одного спина цветовой рулетки
type RouletteResult struct {
	Won        bool
	BetColor   Color
	ResultSlot int   // Косметический номер слота (0..14)
	Color      Color // Цвет выпавшего слота
	Payout     int
	Balance    int
}

// UpgradeResult Результат попытки апгрейда предмета
type UpgradeResult struct {
	Success bool
	Chance  float64
	Granted *InventoryEntry // nil при неудаче
}

// ContractResult Результат обмена по контракту
type ContractResult struct {
	Consumed []InventoryEntry
	Granted  InventoryEntry
}

// WheelResult Результат спина бонусного колеса
type WheelResult struct {
	Prize   int
	Balance int
}

// WheelStatus Доступность бонусного колеса
type WheelStatus struct {
	Available bool
	Remaining int // Секунды до следующего спина (0 если доступно)
}

// SaleResult Результат продажи предмета из инвентаря
type SaleResult struct {
	Sold    InventoryEntry
	Balance int
}

// PlayerStats Агрегаты по ставкам игрока (производные данные, не журнал)
type PlayerStats struct {
	TotalStaked  int
	TotalPaidOut int
	WagersByGame map[string]int
	BestDrop     *Item
}

// LeaderboardEntry Строка таблицы лучших дропов
type LeaderboardEntry struct {
	Name     string
	BestDrop Item
}
