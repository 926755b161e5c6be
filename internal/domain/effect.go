package domain

// TargetPredicate решает, попадает ли сущность под эффект.
// Предикат может хранить состояние между вызовами (например, "только
// первый подходящий"): состояние живет, пока жив сам PendingEffect.
type TargetPredicate interface {
	CanTarget(candidate *Entity) bool
}

// Effect - применимое к сущностям воздействие.
type Effect interface {
	// ApplyEffect мутирует цель и сообщает, нужен ли эффекту еще один тик.
	ApplyEffect(target *Entity) (bool, error)

	// UpdateSource применяет к источнику побочные изменения
	// (руление скоростью, расход ресурсов и т.п.).
	UpdateSource(src *Entity) error
}

// EffectSource описывает, какая сущность породила эффект и может ли
// эффект задевать ее саму.
type EffectSource struct {
	Index           int  `json:"index"`
	CanTargetSource bool `json:"canTargetSource"`
}

// ShouldApplyEffect - ложь только для самого источника при запрете
// самонаведения; во всех остальных комбинациях истина.
func (s EffectSource) ShouldApplyEffect(targetIndex int) bool {
	return !(targetIndex == s.Index && !s.CanTargetSource)
}

// PendingEffect - отложенное воздействие в очереди сцены.
// Раз в тик проверяется против всех сущностей реестра; остается в очереди
// только если хотя бы один вызов ApplyEffect попросил продолжения.
type PendingEffect struct {
	// Source - источник эффекта; nil у "бесхозных" эффектов (ловушки, среда).
	Source *EffectSource
	// Target определяет, кого эффект задевает.
	Target TargetPredicate
	// Effect - собственно логика воздействия.
	Effect Effect
}

// EffectQueue - очередь отложенных эффектов сцены. Сущности пополняют ее
// во время своей фазы движения; сцена разбирает ее в фазе эффектов.
type EffectQueue struct {
	pending []PendingEffect
}

// Push добавляет эффект в конец очереди.
func (q *EffectQueue) Push(effect PendingEffect) {
	q.pending = append(q.pending, effect)
}

// Len - текущий размер очереди.
func (q *EffectQueue) Len() int {
	return len(q.pending)
}

// At - доступ к эффекту по позиции (для фазы разрешения).
func (q *EffectQueue) At(i int) *PendingEffect {
	return &q.pending[i]
}

// Retain оставляет в очереди только эффекты, для которых keep вернул true,
// сохраняя их взаимный порядок и внутреннее состояние.
func (q *EffectQueue) Retain(keep func(i int, effect *PendingEffect) bool) {
	kept := q.pending[:0]
	for i := range q.pending {
		if keep(i, &q.pending[i]) {
			kept = append(kept, q.pending[i])
		}
	}
	// Зануляем хвост, чтобы не держать ссылки на отброшенные эффекты.
	for i := len(kept); i < len(q.pending); i++ {
		q.pending[i] = PendingEffect{}
	}
	q.pending = kept
}
