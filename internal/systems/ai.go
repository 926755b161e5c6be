package systems

import "arena-server/internal/domain"

// TickAI - поведение враждебных сущностей. Каждый тик враг заново ставит
// в очередь эффект преследования первого игрока: эффект одноразовый,
// поэтому свежая постановка обязательна.
func TickAI(index int, e *domain.Entity, effects *domain.EffectQueue) {
	if e.AI == nil || !e.AI.IsHostile {
		return
	}

	effects.Push(domain.PendingEffect{
		Source: &domain.EffectSource{Index: index, CanTargetSource: false},
		Target: TargetFirstPlayer(),
		Effect: &FollowTarget{},
	})
}
