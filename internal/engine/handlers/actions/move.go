package actions

import (
	"arena-server/internal/domain"
	"arena-server/internal/engine/handlers"
	"arena-server/pkg/api"
)

// HandleMove задаёт желаемое направление движения актора. Величина
// вектора роли не играет: SetVelocity сам подтянет её к пределу скорости.
// Фактическое перемещение и клиппинг о стены происходят на тике движка.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir := domain.Vec{X: p.Dx, Y: p.Dy}.Normalize().Scale(ctx.Actor.MaxVelocity())
	ctx.Actor.SetVelocity(dir)
	return handlers.EmptyResult(), nil
}

// HandleStop обнуляет скорость актора.
func HandleStop(ctx handlers.Context) (handlers.Result, error) {
	ctx.Actor.SetVelocity(domain.Vec{})
	return handlers.EmptyResult(), nil
}
