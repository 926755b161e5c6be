package domain

import "github.com/google/uuid"

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
	EntityTypeDummy  = "DUMMY"
)

// RenderComponent - подсказки для отрисовки на клиенте.
// Ядро симуляции этим компонентом не пользуется.
type RenderComponent struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// Entity - движущееся тело на поле: скорость, предел скорости, геометрия,
// здоровье, маска проходимости и уникальный идентификатор.
// Скорость, предел и геометрия приватны: их инварианты (клампинг скорости,
// положительный размер) поддерживаются методами.
type Entity struct {
	// Идентификация
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
	Name string    `json:"name"`

	velocity    Vec
	maxVelocity float64
	box         Box
	health      Health
	solidity    Solidity

	// Компоненты (nil - свойство отсутствует)
	Render *RenderComponent `json:"render,omitempty"`
	Combat *CombatComponent `json:"combat,omitempty"`
	AI     *AIComponent     `json:"ai,omitempty"`
}

// NewEntity создает сущность с валидацией предела скорости.
// Геометрия валидируется самим Box при создании у вызывающего.
func NewEntity(entityType, name string, box Box, maxVelocity, maxHealth float64, solidity Solidity) (*Entity, error) {
	if maxVelocity < 0 {
		return nil, ErrMaxVelocity
	}
	return &Entity{
		ID:          uuid.New(),
		Type:        entityType,
		Name:        name,
		box:         box,
		maxVelocity: maxVelocity,
		health:      NewHealth(maxHealth),
		solidity:    solidity,
	}, nil
}

func (e *Entity) Velocity() Vec        { return e.velocity }
func (e *Entity) MaxVelocity() float64 { return e.maxVelocity }
func (e *Entity) Box() Box             { return e.box }
func (e *Entity) Solidity() Solidity   { return e.solidity }

// Health возвращает изменяемый компонент здоровья.
func (e *Entity) Health() *Health { return &e.health }

// SetVelocity устанавливает скорость, ограничивая ее величину пределом
// с сохранением направления.
func (e *Entity) SetVelocity(v Vec) {
	if v.MagnitudeSq() <= e.maxVelocity*e.maxVelocity {
		e.velocity = v
	} else {
		e.velocity = v.Normalize().Scale(e.maxVelocity)
	}
}

// SetMaxVelocity меняет предел скорости. Отрицательный предел - ошибка
// валидации, текущее значение не трогаем.
func (e *Entity) SetMaxVelocity(max float64) error {
	if max < 0 {
		return ErrMaxVelocity
	}
	e.maxVelocity = max
	return nil
}

// SetBox заменяет геометрию целиком (инвариант размера несет сам Box).
func (e *Entity) SetBox(box Box) {
	e.box = box
}

// SetSolidity меняет маску проходимости тела.
func (e *Entity) SetSolidity(s Solidity) {
	e.solidity = s
}

// IsPlayer - предикат для таргетинга и поиска в реестре.
func (e *Entity) IsPlayer() bool {
	return e.Type == EntityTypePlayer
}
