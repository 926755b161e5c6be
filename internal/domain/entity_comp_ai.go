package domain

// AIComponent - поведение сущности без контроллера.
// Враждебная сущность каждый тик ставит в очередь эффект преследования
// первого найденного игрока (см. systems.TickAI).
type AIComponent struct {
	IsHostile bool `json:"isHostile"`
}
