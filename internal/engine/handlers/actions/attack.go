package actions

import (
	"arena-server/internal/engine/handlers"
)

// HandleAttack взводит намерение атаки. Если перезарядка ещё идёт,
// намерение не взводится и команда молча игнорируется: клиент видит
// индикатор кулдауна и сам решает, когда жать снова.
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.Combat == nil {
		return handlers.Result{Msg: "Эта сущность не умеет атаковать.", MsgType: "ERROR"}, nil
	}

	ctx.Actor.Combat.Attack.MaybeSetDoing()
	return handlers.EmptyResult(), nil
}
