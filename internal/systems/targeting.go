package systems

import (
	"arena-server/internal/domain"
)

// AreaTarget - предикат "цель пересекается с заданной областью".
type AreaTarget struct {
	Area domain.Box
}

func (t *AreaTarget) CanTarget(candidate *domain.Entity) bool {
	return t.Area.HasOverlap(candidate.Box())
}

// FirstMatchTarget - предикат "первый подходящий кандидат".
// Возвращает true только для первого кандидата, удовлетворившего
// внутреннему условию, и false для всех последующих, даже подходящих.
// Захват НЕ сбрасывается между тиками: состояние живет столько же,
// сколько сам предикат.
type FirstMatchTarget struct {
	Match func(*domain.Entity) bool
	found bool
}

func (t *FirstMatchTarget) CanTarget(candidate *domain.Entity) bool {
	if t.found {
		return false
	}
	if t.Match(candidate) {
		t.found = true
		return true
	}
	return false
}

// TargetFirstPlayer - готовый предикат для захвата первого игрока в реестре.
func TargetFirstPlayer() *FirstMatchTarget {
	return &FirstMatchTarget{Match: (*domain.Entity).IsPlayer}
}
