package domain

// Health - запас прочности сущности. Значение может уходить в минус:
// решение о смерти принимает вышестоящая логика, а не компонент.
type Health struct {
	curr float64
	max  float64
}

// NewHealth создает здоровье, заполненное до максимума.
func NewHealth(max float64) Health {
	return Health{curr: max, max: max}
}

// RawDamage снимает фиксированное количество здоровья без модификаторов.
func (h *Health) RawDamage(amt float64) {
	h.curr -= amt
}

func (h Health) Current() float64 { return h.curr }
func (h Health) Max() float64     { return h.max }

// Fraction - доля оставшегося здоровья (для полосок HP на клиенте).
func (h Health) Fraction() float64 {
	return h.curr / h.max
}
