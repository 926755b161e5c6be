package domain

// Cooldown - готовность действия: ноль или меньше означает "готово".
type Cooldown struct {
	Remaining float64 `json:"remaining"`
}

// Ready - можно ли использовать действие.
func (c Cooldown) Ready() bool {
	return c.Remaining <= 0
}

// Cool уменьшает оставшееся время перезарядки на dt.
func (c *Cooldown) Cool(dt float64) {
	if c.Remaining > 0 {
		c.Remaining -= dt
		if c.Remaining < 0 {
			c.Remaining = 0
		}
	}
}

// TryAction - намерение выполнить действие на следующем тике.
// Взводится извне (командой игрока), срабатывает один раз и уходит
// на перезарядку.
type TryAction struct {
	TryAction bool     `json:"tryAction"`
	Cooldown  Cooldown `json:"cooldown"`
}

// MaybeSetDoing взводит намерение, если перезарядка завершена.
func (a *TryAction) MaybeSetDoing() {
	if a.Cooldown.Ready() {
		a.TryAction = true
	}
}

// ShouldDo возвращает true ровно один раз на взведенное намерение
// и запускает перезарядку на cooldown секунд.
func (a *TryAction) ShouldDo(cooldown float64) bool {
	if a.TryAction {
		a.TryAction = false
		a.Cooldown = Cooldown{Remaining: cooldown}
		return true
	}
	return false
}

// CombatComponent - параметры атаки сущности.
type CombatComponent struct {
	Attack   TryAction `json:"attack"`
	Damage   float64   `json:"damage"`
	Cooldown float64   `json:"cooldown"` // Длительность перезарядки в секундах
}

// CooldownFraction - доля оставшейся перезарядки (для индикатора на клиенте).
func (c *CombatComponent) CooldownFraction() float64 {
	if c.Cooldown <= 0 {
		return 0
	}
	return c.Attack.Cooldown.Remaining / c.Cooldown
}
