package systems

import (
	"arena-server/internal/domain"
	"arena-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// TickCombat прокручивает боевой компонент сущности на один тик:
//  1. Остужаем кулдаун атаки.
//  2. Если атака была запрошена и кулдаун готов - ставим эффект урона
//     в очередь и перезапускаем кулдаун.
//
// Зона поражения - квадрат вокруг атакующего: в два раза больше его
// хитбокса, с тем же центром.
func TickCombat(index int, e *domain.Entity, effects *domain.EffectQueue, dt float64) {
	if e.Combat == nil {
		return
	}

	e.Combat.Attack.Cooldown.Cool(dt)

	if !e.Combat.Attack.ShouldDo(e.Combat.Cooldown) {
		return
	}

	area := attackArea(e.Box())
	effects.Push((BasicAttack{Damage: e.Combat.Damage}).IntoPendingEffect(index, area))

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"entity_id": e.ID,
		"damage":    e.Combat.Damage,
	}).Debug("Attack queued")
}

// attackArea строит область атаки: удвоенный размер, смещение на
// размер хитбокса влево-вверх, центр совпадает с центром атакующего.
func attackArea(box domain.Box) domain.Box {
	pos := box.Pos()
	size := box.Size()
	return domain.MustBox(
		pos.X-size.X,
		pos.Y-size.Y,
		size.X*2,
		size.Y*2,
	)
}
