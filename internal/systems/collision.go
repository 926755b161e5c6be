package systems

import (
	"arena-server/internal/domain"
)

// ResolveOverlaps разводит пересекающиеся тела сущностей за один проход.
//
// Для каждой упорядоченной пары (i, j<i): если у любой из сущностей маска
// проходимости полностью открыта (нет телесности), пара пропускается;
// иначе тело j выталкивается из тела i минимальным сдвигом. Двигается
// ТОЛЬКО сущность с меньшим индексом.
//
// Проход один, без итераций до неподвижной точки: при трех и более взаимно
// пересекающихся телах остаточное перекрытие возможно. Это осознанный
// выбор в пользу предсказуемости и стоимости O(n^2).
func ResolveOverlaps(entities []*domain.Entity) {
	for i := range entities {
		this := entities[i]
		if !this.Solidity().HasSolidity() {
			continue
		}
		thisBox := this.Box()

		for j := 0; j < i; j++ {
			other := entities[j]
			if !other.Solidity().HasSolidity() {
				continue
			}
			box := other.Box()
			box.ShiftToNonoverlapping(thisBox)
			other.SetBox(box)
		}
	}
}
