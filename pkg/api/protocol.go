package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" арены. Поле Cells заполняется
// только в первом сообщении после логина (геометрия арены статична),
// дальше клиент получает только Entities и Tick.
type ServerResponse struct {
	// Type тип сообщения. "INIT" для первого снимка, дальше "UPDATE".
	Type string `json:"type"`

	// Tick номер тика симуляции. Монотонно растёт.
	Tick uint64 `json:"tick"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Cells геометрия арены: ячейки поля с масками проходимости.
	Cells []CellView `json:"cells,omitempty"`

	// Entities срез всех сущностей арены.
	Entities []EntityView `json:"entities,omitempty"`
}

// BoxView это DTO прямоугольника в мировых координатах.
type BoxView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CellView это DTO одной ячейки поля.
type CellView struct {
	Index int    `json:"index"`
	Box   BoxView `json:"box"`

	// Solidity битовая маска проходимости ячейки. Клиент использует её
	// только для подсветки стен, сервер остаётся источником истины.
	Solidity uint8 `json:"solidity"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, DUMMY
	Name string `json:"name"`

	Box BoxView `json:"box"`

	Velocity struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"velocity"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats характеристики сущности. Поле может отсутствовать (omitempty)
	// у сущностей без здоровья.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP     float64 `json:"hp"`
	MaxHP  float64 `json:"maxHp"`
	IsDead bool    `json:"isDead"`

	// AttackCooldown - доля оставшейся перезарядки атаки (0..1),
	// для индикатора на клиенте.
	AttackCooldown float64 `json:"attackCooldown,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token имя игрока. Обязателен только для первого сообщения "LOGIN".
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (e.g. MOVE).
// Вектор задаёт желаемое направление, сервер сам ограничит его пределом
// скорости сущности.
type DirectionPayload struct {
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

// PositionPayload используется для действий, нацеленных на точку арены.
type PositionPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
