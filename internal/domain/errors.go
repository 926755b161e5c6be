package domain

import (
	"errors"
	"fmt"
)

// Ошибки валидации и внутренних инвариантов ядра симуляции.
// Конструкторы возвращают их вместо паники: некорректные размеры и
// индексы должны подниматься наверх как обычные ошибки.
var (
	// ErrBoxSize - попытка создать Box с нулевой или отрицательной стороной.
	ErrBoxSize = errors.New("box width and height must be positive")

	// ErrMaxVelocity - отрицательный предел скорости сущности.
	ErrMaxVelocity = errors.New("max velocity must be non-negative")

	// ErrNoFieldCell - позиция сущности не попадает ни в одну клетку поля.
	// Фатальна для шага движения, но не для состояния сущности.
	ErrNoFieldCell = errors.New("no field cell at position")

	// ErrFieldIndex - обращение к несуществующему индексу клетки.
	// При корректной конструкции поля недостижима, но обязана оставаться
	// ошибкой, а не выходом за границы массива.
	ErrFieldIndex = errors.New("invalid field cell index")
)

// NoFieldCellError оборачивает ErrNoFieldCell с координатами для логов.
func NoFieldCellError(pos Vec) error {
	return fmt.Errorf("%w: (%.2f, %.2f)", ErrNoFieldCell, pos.X, pos.Y)
}

// FieldIndexError оборачивает ErrFieldIndex с конкретным индексом.
func FieldIndexError(idx int) error {
	return fmt.Errorf("%w: %d", ErrFieldIndex, idx)
}
