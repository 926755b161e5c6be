package systems

import (
	"arena-server/internal/domain"
	"arena-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BasicAttack - эффект сырого урона: снимает фиксированное количество
// здоровья, никаких модификаторов и продолжений.
type BasicAttack struct {
	Damage float64
}

func (a *BasicAttack) ApplyEffect(target *domain.Entity) (bool, error) {
	hpBefore := target.Health().Current()
	target.Health().RawDamage(a.Damage)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target_id": target.ID,
		"damage":    a.Damage,
		"hp_before": hpBefore,
		"hp_after":  target.Health().Current(),
	}).Debug("Attack resolved")

	return false, nil
}

func (a *BasicAttack) UpdateSource(_ *domain.Entity) error {
	return nil
}

// IntoPendingEffect упаковывает атаку в отложенный эффект по области:
// источник известен, самопоражение запрещено.
func (a BasicAttack) IntoPendingEffect(sourceIndex int, targetArea domain.Box) domain.PendingEffect {
	return domain.PendingEffect{
		Source: &domain.EffectSource{Index: sourceIndex, CanTargetSource: false},
		Target: &AreaTarget{Area: targetArea},
		Effect: &a,
	}
}

// FollowTarget - эффект преследования: при применении запоминает позицию
// цели, при обновлении источника заворачивает его скорость к последней
// запомненной позиции (с клампингом по пределу скорости источника).
type FollowTarget struct {
	LastSeen *domain.Vec
}

func (f *FollowTarget) ApplyEffect(target *domain.Entity) (bool, error) {
	pos := target.Box().Pos()
	f.LastSeen = &pos
	return false, nil
}

func (f *FollowTarget) UpdateSource(src *domain.Entity) error {
	if f.LastSeen == nil {
		return nil
	}
	// SetVelocity сам ограничит величину пределом источника.
	src.SetVelocity(f.LastSeen.Sub(src.Box().Pos()))
	return nil
}
