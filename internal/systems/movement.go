package systems

import (
	"arena-server/internal/domain"
	"arena-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TryMove продвигает сущность по ее скорости за dt, обрезая перемещение
// о граф клеток поля. Коллизии сущность-сущность здесь НЕ решаются -
// это отдельная фаза тика, чтобы движение не зависело от порядка обхода
// реестра.
//
// Алгоритм:
//  1. Нулевая скорость - выходим сразу.
//  2. Ищем текущую клетку по позиции; ее отсутствие - ошибка шага
//     (состояние сущности не меняется).
//  3. Собираем соседей текущей клетки, пересекающихся с ТЕКУЩИМ телом:
//     это дополнительные "исходные" клетки для обрезки.
//  4. Строим пробное тело: позиция + скорость*dt.
//  5. Если пробное тело целиком внутри текущей клетки - обрезка не нужна.
//  6. Иначе для текущей клетки и каждой клетки из перекрытия применяем
//     ограничения движения (см. applyMovementReductions).
//  7. Фиксируем (возможно обрезанное) тело.
func TryMove(e *domain.Entity, field *domain.Field, dt float64) error {
	if e.Velocity().IsZero() {
		return nil
	}

	currentBox := e.Box()
	currentCell := field.CellAtPos(currentBox.Pos())
	if currentCell == nil {
		return domain.NoFieldCellError(currentBox.Pos())
	}

	overlaps, err := field.NeighborsOfCellOverlappingBox(currentCell, currentBox)
	if err != nil {
		return err
	}

	newBox := currentBox
	newBox.SetPos(currentBox.Pos().Add(e.Velocity().Scale(dt)))

	if !newBox.IsFullyContainedBy(currentCell.Box()) {
		if err := applyMovementReductions(e, field, currentCell, &newBox); err != nil {
			return err
		}
		for _, overlap := range overlaps.All() {
			if err := applyMovementReductions(e, field, overlap, &newBox); err != nil {
				return err
			}
		}
	}

	e.SetBox(newBox)
	return nil
}

// applyMovementReductions обрезает пробное тело newBox об ограничения
// одной исходной клетки fromCell.
//
// Для каждой стороны и каждого соседа на ней: если выход из fromCell или
// вход в соседа запрещены, а скорость гасится этой стороной, прижимаем
// соответствующую сторону пробного тела к стороне fromCell.
//
// Сторона без единого соседа в графе - неявная сплошная граница: если
// скорость гасится ею и пробное тело пересекает ее, обрезаем так же.
// Движение за пределами покрытия поля не определено и не должно случаться.
func applyMovementReductions(e *domain.Entity, field *domain.Field, fromCell *domain.Cell, newBox *domain.Box) error {
	neighbors, err := field.NeighborsOfCellOverlappingBox(fromCell, *newBox)
	if err != nil {
		return err
	}

	velocity := e.Velocity()

	for _, edge := range domain.Edges {
		onEdge := neighbors.OnEdge(edge)

		for _, neighbor := range onEdge {
			blocked := !fromCell.Solidity().ExitEdge(edge) ||
				!neighbor.Solidity().EnterEdge(edge.Opposite())
			if blocked && velocity.IsReducedByEdge(edge) {
				logger.Log.WithFields(logrus.Fields{
					"component": "movement_system",
					"entity_id": e.ID,
					"edge":      edge.String(),
					"from_cell": fromCell.Index(),
					"neighbor":  neighbor.Index(),
				}).Debug("Movement clamped by cell boundary")

				newBox.SetTouchingEdge(fromCell.Box(), edge)
			}
		}

		if len(onEdge) == 0 &&
			velocity.IsReducedByEdge(edge) &&
			fromCell.Box().IsEdgeCrossedBy(*newBox, edge) {
			logger.Log.WithFields(logrus.Fields{
				"component": "movement_system",
				"entity_id": e.ID,
				"edge":      edge.String(),
				"from_cell": fromCell.Index(),
			}).Debug("Movement clamped by field extent")

			newBox.SetTouchingEdge(fromCell.Box(), edge)
		}
	}

	return nil
}
