package engine

import (
	"errors"
	"math"
	"testing"

	"arena-server/internal/domain"
	"arena-server/internal/systems"
)

// openScene строит сцену на одной большой открытой клетке 100x100.
func openScene(t *testing.T) *Scene {
	t.Helper()
	field, err := domain.NewField([]domain.Cell{
		domain.NewCell(domain.NoSolidity, domain.MustBox(0, 0, 100, 100)),
	})
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return NewScene(field)
}

func sceneEntity(t *testing.T, entityType string, box domain.Box, maxVelocity float64) *domain.Entity {
	t.Helper()
	e, err := domain.NewEntity(entityType, entityType, box, maxVelocity, 100, domain.Solid)
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}
	return e
}

func TestSceneRegisterAndLookup(t *testing.T) {
	s := openScene(t)

	enemy := sceneEntity(t, domain.EntityTypeEnemy, domain.MustBox(10, 10, 4, 4), 10)
	player := sceneEntity(t, domain.EntityTypePlayer, domain.MustBox(50, 50, 4, 4), 10)

	if idx := s.RegisterEntity(enemy); idx != 0 {
		t.Errorf("first index = %d, want 0", idx)
	}
	if idx := s.RegisterEntity(player); idx != 1 {
		t.Errorf("second index = %d, want 1", idx)
	}

	got, idx := s.Player()
	if got != player || idx != 1 {
		t.Errorf("Player() = %v at %d, want player at 1", got, idx)
	}

	if _, ok := s.Entity(5); ok {
		t.Error("out-of-range index must not resolve")
	}
}

// TestSceneEffectTargeting - базовый сценарий урона: эффект по области
// задевает источник и обе другие сущности, но бьет только того, кто
// проходит и по источнику, и по области.
func TestSceneEffectTargeting(t *testing.T) {
	s := openScene(t)

	// Источник и "жертва" стоят в зоне поражения, третья сущность - вне
	source := sceneEntity(t, domain.EntityTypePlayer, domain.MustBox(10, 10, 4, 4), 0)
	inside := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(16, 10, 4, 4), 0)
	outside := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(80, 80, 4, 4), 0)

	srcIdx := s.RegisterEntity(source)
	s.RegisterEntity(inside)
	s.RegisterEntity(outside)

	s.QueueEffect(domain.PendingEffect{
		Source: &domain.EffectSource{Index: srcIdx, CanTargetSource: false},
		Target: &systems.AreaTarget{Area: domain.MustBox(8, 8, 16, 16)},
		Effect: &systems.BasicAttack{Damage: 2},
	})

	if err := s.TickEntities(0.1); err != nil {
		t.Fatalf("TickEntities: %v", err)
	}

	if source.Health().Current() != 100 {
		t.Errorf("source hp = %v, want untouched (self-targeting forbidden)", source.Health().Current())
	}
	if inside.Health().Current() != 98 {
		t.Errorf("inside hp = %v, want 98", inside.Health().Current())
	}
	if outside.Health().Current() != 100 {
		t.Errorf("outside hp = %v, want untouched (out of area)", outside.Health().Current())
	}

	// Одноразовый эффект покидает очередь
	if s.PendingEffects() != 0 {
		t.Errorf("pending effects = %d, want 0", s.PendingEffects())
	}
}

// tickingEffect - тестовый эффект, который просит продолжения заданное
// число применений и считает вызовы.
type tickingEffect struct {
	ticksLeft int
	applied   int
	updated   int
}

func (e *tickingEffect) ApplyEffect(_ *domain.Entity) (bool, error) {
	e.applied++
	e.ticksLeft--
	return e.ticksLeft > 0, nil
}

func (e *tickingEffect) UpdateSource(_ *domain.Entity) error {
	e.updated++
	return nil
}

func TestSceneEffectRetention(t *testing.T) {
	s := openScene(t)
	target := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(10, 10, 4, 4), 0)
	s.RegisterEntity(target)

	effect := &tickingEffect{ticksLeft: 3}
	s.QueueEffect(domain.PendingEffect{
		Target: &systems.AreaTarget{Area: domain.MustBox(0, 0, 50, 50)},
		Effect: effect,
	})

	// Три тика эффект живет, на третьем - уходит
	for tick := 1; tick <= 3; tick++ {
		if err := s.TickEntities(0.1); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		wantPending := 1
		if tick == 3 {
			wantPending = 0
		}
		if s.PendingEffects() != wantPending {
			t.Errorf("tick %d: pending = %d, want %d", tick, s.PendingEffects(), wantPending)
		}
	}

	if effect.applied != 3 {
		t.Errorf("applied = %d, want 3", effect.applied)
	}
	// Без источника UpdateSource не вызывается
	if effect.updated != 0 {
		t.Errorf("updated = %d, want 0", effect.updated)
	}
}

type failingEffect struct{}

func (failingEffect) ApplyEffect(_ *domain.Entity) (bool, error) {
	return false, errors.New("boom")
}

func (failingEffect) UpdateSource(_ *domain.Entity) error { return nil }

func TestSceneEffectErrorIsolation(t *testing.T) {
	s := openScene(t)

	a := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(10, 10, 4, 4), 0)
	b := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(20, 10, 4, 4), 0)
	s.RegisterEntity(a)
	s.RegisterEntity(b)

	// Первый эффект падает на каждой цели, второй должен отработать
	s.QueueEffect(domain.PendingEffect{
		Target: &systems.AreaTarget{Area: domain.MustBox(0, 0, 50, 50)},
		Effect: failingEffect{},
	})
	s.QueueEffect(domain.PendingEffect{
		Target: &systems.AreaTarget{Area: domain.MustBox(0, 0, 50, 50)},
		Effect: &systems.BasicAttack{Damage: 1},
	})

	if err := s.TickEntities(0.1); err != nil {
		t.Fatalf("TickEntities: %v", err)
	}

	if a.Health().Current() != 99 || b.Health().Current() != 99 {
		t.Errorf("hp = %v/%v, want 99/99 (second effect must still land)",
			a.Health().Current(), b.Health().Current())
	}
	if s.PendingEffects() != 0 {
		t.Errorf("pending = %d, want 0", s.PendingEffects())
	}
}

// TestSceneHostilePursuit - интеграция фаз: ИИ ставит преследование,
// фаза эффектов запоминает позицию игрока и рулит скоростью врага,
// следующий тик двигает врага к игроку.
func TestSceneHostilePursuit(t *testing.T) {
	s := openScene(t)

	enemy := sceneEntity(t, domain.EntityTypeEnemy, domain.MustBox(10, 10, 4, 4), 5)
	enemy.AI = &domain.AIComponent{IsHostile: true}
	player := sceneEntity(t, domain.EntityTypePlayer, domain.MustBox(40, 50, 4, 4), 0)

	s.RegisterEntity(enemy)
	s.RegisterEntity(player)

	// Тик 1: эффект преследования применился и развернул скорость врага
	if err := s.TickEntities(0.1); err != nil {
		t.Fatalf("TickEntities: %v", err)
	}

	v := enemy.Velocity()
	if v.IsZero() {
		t.Fatal("enemy velocity must point at the player after the first tick")
	}
	// Направление (30,40), предел 5 -> (3,4)
	if math.Abs(v.X-3) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Errorf("velocity = %v, want (3,4)", v)
	}

	// Тик 2: враг сдвинулся по этой скорости
	before := enemy.Box().Pos()
	if err := s.TickEntities(0.1); err != nil {
		t.Fatalf("TickEntities: %v", err)
	}
	after := enemy.Box().Pos()
	if math.Abs(after.X-before.X-0.3) > 1e-9 || math.Abs(after.Y-before.Y-0.4) > 1e-9 {
		t.Errorf("enemy moved %v -> %v, want step (0.3, 0.4)", before, after)
	}
}

func TestSceneOverlapPhase(t *testing.T) {
	s := openScene(t)

	// Два неподвижных тела, вставленных друг в друга: фаза расталкивания
	// разводит их за тик
	e0 := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(10, 10, 4, 4), 0)
	e1 := sceneEntity(t, domain.EntityTypeDummy, domain.MustBox(12, 10, 4, 4), 0)
	s.RegisterEntity(e0)
	s.RegisterEntity(e1)

	if err := s.TickEntities(0.1); err != nil {
		t.Fatalf("TickEntities: %v", err)
	}

	if e0.Box().HasOverlap(e1.Box()) {
		t.Errorf("bodies still overlap: %v and %v", e0.Box().Pos(), e1.Box().Pos())
	}
	if e1.Box().Pos() != (domain.Vec{X: 12, Y: 10}) {
		t.Errorf("higher index moved: %v", e1.Box().Pos())
	}
}
