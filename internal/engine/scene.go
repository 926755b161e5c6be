package engine

import (
	"arena-server/internal/domain"
	"arena-server/internal/systems"
	"arena-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Scene - состояние одной арены: поле, зарегистрированные сущности и
// очередь отложенных эффектов. Индекс сущности в слайсе стабилен на всё
// время жизни сцены и используется как ссылка источника эффекта.
type Scene struct {
	field    *domain.Field
	entities []*domain.Entity
	effects  domain.EffectQueue
}

func NewScene(field *domain.Field) *Scene {
	return &Scene{field: field}
}

// RegisterEntity добавляет сущность в сцену и возвращает её индекс.
func (s *Scene) RegisterEntity(e *domain.Entity) int {
	s.entities = append(s.entities, e)
	return len(s.entities) - 1
}

func (s *Scene) Field() *domain.Field {
	return s.field
}

func (s *Scene) Entities() []*domain.Entity {
	return s.entities
}

// Entity возвращает сущность по индексу.
func (s *Scene) Entity(index int) (*domain.Entity, bool) {
	if index < 0 || index >= len(s.entities) {
		return nil, false
	}
	return s.entities[index], true
}

// FirstEntity - первая сущность, удовлетворяющая предикату.
func (s *Scene) FirstEntity(pred func(*domain.Entity) bool) (*domain.Entity, int) {
	for i, e := range s.entities {
		if pred(e) {
			return e, i
		}
	}
	return nil, -1
}

// Player - первый игрок сцены (в текущем режиме он один).
func (s *Scene) Player() (*domain.Entity, int) {
	return s.FirstEntity((*domain.Entity).IsPlayer)
}

// TickEntities прокручивает сцену на один тик. Три фазы:
//  1. Движение и поведение: каждая сущность в порядке индексов
//     перемещается по полю и ставит свои эффекты в очередь.
//  2. Расталкивание: пересекающиеся твёрдые сущности разводятся.
//  3. Эффекты: каждый отложенный эффект применяется ко всем подходящим
//     целям; эффект остаётся в очереди, только если хотя бы одна цель
//     попросила продолжения.
//
// Ошибка движения прерывает тик: она означает, что сущность вне поля,
// и дальнейшая симуляция не имеет смысла.
func (s *Scene) TickEntities(dt float64) error {
	// --- Фаза 1: движение и поведение ---
	for idx, e := range s.entities {
		if err := systems.TryMove(e, s.field, dt); err != nil {
			return err
		}
		systems.TickAI(idx, e, &s.effects)
		systems.TickCombat(idx, e, &s.effects, dt)
	}

	// --- Фаза 2: расталкивание твёрдых сущностей ---
	systems.ResolveOverlaps(s.entities)

	// --- Фаза 3: применение эффектов ---
	s.effects.Retain(func(_ int, pending *domain.PendingEffect) bool {
		return s.applyPending(pending)
	})

	return nil
}

// applyPending применяет один отложенный эффект ко всем целям сцены и
// затем обновляет источник. Возвращает true, если эффект должен остаться
// в очереди на следующий тик.
func (s *Scene) applyPending(pending *domain.PendingEffect) bool {
	keep := false

	for idx, e := range s.entities {
		if pending.Source != nil && !pending.Source.ShouldApplyEffect(idx) {
			continue
		}
		if !pending.Target.CanTarget(e) {
			continue
		}

		cont, err := pending.Effect.ApplyEffect(e)
		if err != nil {
			// Ошибка на одной цели не мешает остальным.
			logger.Log.WithFields(logrus.Fields{
				"component": "scene",
				"target_id": e.ID,
				"error":     err.Error(),
			}).Error("Effect application failed")
			continue
		}
		keep = keep || cont
	}

	if pending.Source != nil {
		src, ok := s.Entity(pending.Source.Index)
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"component":    "scene",
				"source_index": pending.Source.Index,
			}).Error("Effect source index out of range")
			return keep
		}
		if err := pending.Effect.UpdateSource(src); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "scene",
				"source_id": src.ID,
				"error":     err.Error(),
			}).Error("Effect source update failed")
		}
	}

	return keep
}

// QueueEffect ставит эффект в очередь извне (обработчики команд).
func (s *Scene) QueueEffect(pending domain.PendingEffect) {
	s.effects.Push(pending)
}

// PendingEffects - текущая длина очереди эффектов (для диагностики и тестов).
func (s *Scene) PendingEffects() int {
	return s.effects.Len()
}
