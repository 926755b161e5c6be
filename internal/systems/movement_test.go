package systems

import (
	"errors"
	"testing"

	"arena-server/internal/domain"
)

// twoCellField строит поле из двух клеток 10x10 бок о бок:
// A = [0,10) x [0,10), B = [10,20) x [0,10).
func twoCellField(t *testing.T, solidityA, solidityB domain.Solidity) *domain.Field {
	t.Helper()
	field, err := domain.NewField([]domain.Cell{
		domain.NewCell(solidityA, domain.MustBox(0, 0, 10, 10)),
		domain.NewCell(solidityB, domain.MustBox(10, 0, 10, 10)),
	})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return field
}

func movingEntity(t *testing.T, pos, vel domain.Vec) *domain.Entity {
	t.Helper()
	e, err := domain.NewEntity(domain.EntityTypePlayer, "Тест",
		domain.MustBox(pos.X, pos.Y, 4, 4), 100, 100, domain.Solid)
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}
	e.SetVelocity(vel)
	return e
}

func TestTryMoveZeroVelocity(t *testing.T) {
	field := twoCellField(t, domain.NoSolidity, domain.NoSolidity)
	e := movingEntity(t, domain.Vec{X: 2, Y: 2}, domain.Vec{})

	if err := TryMove(e, field, 1); err != nil {
		t.Fatalf("TryMove: %v", err)
	}
	if e.Box().Pos() != (domain.Vec{X: 2, Y: 2}) {
		t.Errorf("pos = %v, want unchanged", e.Box().Pos())
	}
}

func TestTryMoveOutsideField(t *testing.T) {
	field := twoCellField(t, domain.NoSolidity, domain.NoSolidity)
	e := movingEntity(t, domain.Vec{X: 50, Y: 50}, domain.Vec{X: 1, Y: 0})

	err := TryMove(e, field, 1)
	if !errors.Is(err, domain.ErrNoFieldCell) {
		t.Fatalf("err = %v, want ErrNoFieldCell", err)
	}
	// Состояние сущности не тронуто
	if e.Box().Pos() != (domain.Vec{X: 50, Y: 50}) {
		t.Errorf("pos = %v, want unchanged on error", e.Box().Pos())
	}
}

func TestTryMoveWithinCell(t *testing.T) {
	field := twoCellField(t, domain.NoSolidity, domain.NoSolidity)
	e := movingEntity(t, domain.Vec{X: 2, Y: 2}, domain.Vec{X: 2, Y: 1})

	if err := TryMove(e, field, 1); err != nil {
		t.Fatalf("TryMove: %v", err)
	}
	if e.Box().Pos() != (domain.Vec{X: 4, Y: 3}) {
		t.Errorf("pos = %v, want (4,3)", e.Box().Pos())
	}
}

func TestTryMoveCrossings(t *testing.T) {
	tests := []struct {
		name      string
		solidityA domain.Solidity
		solidityB domain.Solidity
		wantPos   domain.Vec
	}{
		{
			// Обе клетки открыты: тело свободно пересекает стык
			name:      "Open crossing",
			solidityA: domain.NoSolidity,
			solidityB: domain.NoSolidity,
			wantPos:   domain.Vec{X: 8, Y: 2},
		},
		{
			// B непроходима: правая сторона тела прижимается к стыку x=10
			name:      "Enter blocked",
			solidityA: domain.NoSolidity,
			solidityB: domain.Solid,
			wantPos:   domain.Vec{X: 6, Y: 2},
		},
		{
			// Выход из A направо закрыт: результат тот же, хоть B и открыта
			name:      "Exit blocked",
			solidityA: domain.NoSolidity ^ domain.ExitRight,
			solidityB: domain.NoSolidity,
			wantPos:   domain.Vec{X: 6, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := twoCellField(t, tt.solidityA, tt.solidityB)
			e := movingEntity(t, domain.Vec{X: 2, Y: 2}, domain.Vec{X: 6, Y: 0})

			if err := TryMove(e, field, 1); err != nil {
				t.Fatalf("TryMove: %v", err)
			}
			if e.Box().Pos() != tt.wantPos {
				t.Errorf("pos = %v, want %v", e.Box().Pos(), tt.wantPos)
			}
		})
	}
}

func TestTryMoveImplicitBoundary(t *testing.T) {
	// Слева от A соседей нет вовсе: граница поля работает как стена
	field := twoCellField(t, domain.NoSolidity, domain.NoSolidity)
	e := movingEntity(t, domain.Vec{X: 2, Y: 2}, domain.Vec{X: -4, Y: 0})

	if err := TryMove(e, field, 1); err != nil {
		t.Fatalf("TryMove: %v", err)
	}
	if e.Box().Pos() != (domain.Vec{X: 0, Y: 2}) {
		t.Errorf("pos = %v, want clamped to (0,2)", e.Box().Pos())
	}
}

func TestTryMoveStraddlingTwoCells(t *testing.T) {
	// Тело стоит на стыке A/B и едет вниз: нижняя граница поля режет
	// движение по ограничениям ОБЕИХ исходных клеток
	field := twoCellField(t, domain.NoSolidity, domain.NoSolidity)
	e := movingEntity(t, domain.Vec{X: 8, Y: 2}, domain.Vec{X: 0, Y: 6})

	if err := TryMove(e, field, 1); err != nil {
		t.Fatalf("TryMove: %v", err)
	}
	if e.Box().Pos() != (domain.Vec{X: 8, Y: 6}) {
		t.Errorf("pos = %v, want clamped to (8,6)", e.Box().Pos())
	}
}

func TestTryMoveDtScaling(t *testing.T) {
	field := twoCellField(t, domain.NoSolidity, domain.NoSolidity)
	e := movingEntity(t, domain.Vec{X: 2, Y: 2}, domain.Vec{X: 4, Y: 2})

	if err := TryMove(e, field, 0.5); err != nil {
		t.Fatalf("TryMove: %v", err)
	}
	if e.Box().Pos() != (domain.Vec{X: 4, Y: 3}) {
		t.Errorf("pos = %v, want (4,3)", e.Box().Pos())
	}
}
