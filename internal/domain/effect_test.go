package domain

import "testing"

func TestEffectSourceShouldApplyEffect(t *testing.T) {
	tests := []struct {
		name   string
		source EffectSource
		target int
		want   bool
	}{
		{"Other entity", EffectSource{Index: 2, CanTargetSource: false}, 5, true},
		{"Self, self-targeting forbidden", EffectSource{Index: 2, CanTargetSource: false}, 2, false},
		{"Self, self-targeting allowed", EffectSource{Index: 2, CanTargetSource: true}, 2, true},
		{"Other, self-targeting allowed", EffectSource{Index: 2, CanTargetSource: true}, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.source.ShouldApplyEffect(tt.target); got != tt.want {
				t.Errorf("ShouldApplyEffect(%d) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestEffectQueueRetain(t *testing.T) {
	var q EffectQueue

	// Помечаем эффекты индексами источников, чтобы отследить порядок
	for i := 0; i < 5; i++ {
		q.Push(PendingEffect{Source: &EffectSource{Index: i}})
	}

	// Оставляем только четные
	q.Retain(func(_ int, effect *PendingEffect) bool {
		return effect.Source.Index%2 == 0
	})

	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	want := []int{0, 2, 4}
	for i, w := range want {
		if got := q.At(i).Source.Index; got != w {
			t.Errorf("At(%d).Source.Index = %d, want %d", i, got, w)
		}
	}

	// Повторный Retain поверх уже сжатой очереди
	q.Retain(func(i int, _ *PendingEffect) bool { return i == 1 })
	if q.Len() != 1 || q.At(0).Source.Index != 2 {
		t.Errorf("second Retain left %d items, first source %v", q.Len(), q.At(0).Source)
	}
}
