package domain

// Cell - статичная прямоугольная область уровня с маской проходимости.
// Клетки создаются только внутри NewField: индекс назначается при
// конструировании и стабилен все время жизни поля.
type Cell struct {
	index    int
	solidity Solidity
	box      Box
}

// NewCell подготавливает клетку для передачи в NewField.
// До регистрации в поле индекс не имеет смысла.
func NewCell(solidity Solidity, box Box) Cell {
	return Cell{solidity: solidity, box: box}
}

func (c *Cell) Index() int         { return c.index }
func (c *Cell) Solidity() Solidity { return c.solidity }
func (c *Cell) Box() Box           { return c.box }

// fieldEdge - направленное ребро графа смежности: к какой клетке,
// через какую физическую сторону и проходимо ли оно по правилам
// exit/enter обеих клеток.
type fieldEdge struct {
	to       int
	edge     BoxEdge
	passable bool
}

// Field - набор клеток и направленный граф их смежности.
// Строится один раз из списка клеток и далее неизменен. Клетки не хранят
// ссылок друг на друга - только индексы в общем массиве поля, поэтому
// вопросов владения и циклов не возникает.
type Field struct {
	cells     []Cell
	adjacency [][]fieldEdge
}

// NewField строит поле: каждой клетке назначается индекс в порядке
// добавления, затем для каждой стороны каждой клетки сканируются границы
// и заполняется граф смежности.
//
// Сканирование одной стороны: пробная точка ставится сразу за стороной и
// двигается вдоль нее. Если в точке найдена клетка - записываем ребро и
// перепрыгиваем на ее дальний край; если нет - шаг ровно на единицу, чтобы
// не застрять на разрыве. Останавливаемся, когда точка уходит за дальний
// угол сканируемой клетки. Линейный поиск клетки по точке дает O(n) на
// пробу, что приемлемо: конструкция выполняется только при загрузке уровня.
func NewField(cells []Cell) (*Field, error) {
	f := &Field{
		cells:     make([]Cell, len(cells)),
		adjacency: make([][]fieldEdge, len(cells)),
	}
	for i, c := range cells {
		c.index = i
		f.cells[i] = c
	}

	for i := range f.cells {
		if err := f.buildCellEdges(i); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// buildCellEdges сканирует все четыре стороны клетки.
func (f *Field) buildCellEdges(idx int) error {
	cell, err := f.cellAt(idx)
	if err != nil {
		return err
	}
	box := cell.box

	// Стартовые точки: на единицу снаружи для верхней и левой сторон,
	// ровно на границе для нижней и правой (полуоткрытый ContainsPos
	// относит границу к соседу).
	starts := [4]struct {
		edge BoxEdge
		pos  Vec
	}{
		{EdgeTop, Vec{X: box.LeftX(), Y: box.TopY() - 1}},
		{EdgeLeft, Vec{X: box.LeftX() - 1, Y: box.TopY()}},
		{EdgeBottom, Vec{X: box.LeftX(), Y: box.BottomY()}},
		{EdgeRight, Vec{X: box.RightX(), Y: box.TopY()}},
	}

	for _, s := range starts {
		if err := f.scanEdge(idx, s.pos, s.edge); err != nil {
			return err
		}
	}
	return nil
}

// scanEdge двигает пробную точку вдоль стороны edge клетки idx.
func (f *Field) scanEdge(idx int, testPos Vec, edge BoxEdge) error {
	cell, err := f.cellAt(idx)
	if err != nil {
		return err
	}

	axis := edge.ParallelAxis()
	farEnd := cell.box.FarAxis(axis)

	for axis.Component(testPos) < farEnd {
		var next float64

		if neighbor := f.CellAtPos(testPos); neighbor != nil {
			// Проходимость ребра складывается из правил обеих клеток:
			// из этой можно выйти И в соседнюю можно войти с ее стороны.
			passable := cell.solidity.ExitEdge(edge) &&
				neighbor.solidity.EnterEdge(edge.Opposite())
			f.updateEdge(idx, neighbor.index, edge, passable)
			next = neighbor.box.FarAxis(axis)
		} else {
			// Разрыв в покрытии: минимальный шаг вперед.
			next = axis.Component(testPos) + 1
		}

		if axis == AxisX {
			testPos.X = next
		} else {
			testPos.Y = next
		}
	}
	return nil
}

// updateEdge записывает ребро from->to, заменяя существующее с тем же
// адресатом (повторное обнаружение той же пары при сканировании).
func (f *Field) updateEdge(from, to int, edge BoxEdge, passable bool) {
	for i := range f.adjacency[from] {
		if f.adjacency[from][i].to == to {
			f.adjacency[from][i] = fieldEdge{to: to, edge: edge, passable: passable}
			return
		}
	}
	f.adjacency[from] = append(f.adjacency[from], fieldEdge{to: to, edge: edge, passable: passable})
}

// cellAt - доступ к клетке по индексу с контролем границ.
func (f *Field) cellAt(idx int) (*Cell, error) {
	if idx < 0 || idx >= len(f.cells) {
		return nil, FieldIndexError(idx)
	}
	return &f.cells[idx], nil
}

// CellAtPos возвращает клетку, содержащую точку, либо nil.
// Линейный поиск: полуоткрытый тест гарантирует не больше одного
// совпадения на корректно построенном уровне.
func (f *Field) CellAtPos(pos Vec) *Cell {
	for i := range f.cells {
		if f.cells[i].box.ContainsPos(pos) {
			return &f.cells[i]
		}
	}
	return nil
}

// Cells - количество клеток поля.
func (f *Field) Cells() int {
	return len(f.cells)
}

// Cell - клетка по индексу (для сериализации/отрисовки внешним слоем).
func (f *Field) Cell(idx int) (*Cell, error) {
	return f.cellAt(idx)
}

// NeighborsOfCellOverlappingBox обходит исходящие ребра клетки и собирает
// соседей, чьи прямоугольники пересекаются с probe, в группы по сторонам.
// Внутри группы порядок обнаружения сохраняется.
func (f *Field) NeighborsOfCellOverlappingBox(cell *Cell, probe Box) (*CellNeighbors, error) {
	neighbors := &CellNeighbors{}

	for _, ge := range f.adjacency[cell.index] {
		target, err := f.cellAt(ge.to)
		if err != nil {
			return nil, err
		}
		if probe.HasOverlap(target.box) {
			neighbors.add(target, ge.edge)
		}
	}

	return neighbors, nil
}

// CellNeighbors - соседи клетки, сгруппированные по стороне, на которой
// они обнаружены.
type CellNeighbors struct {
	top    []*Cell
	left   []*Cell
	bottom []*Cell
	right  []*Cell
}

func (n *CellNeighbors) add(cell *Cell, edge BoxEdge) {
	switch edge {
	case EdgeTop:
		n.top = append(n.top, cell)
	case EdgeLeft:
		n.left = append(n.left, cell)
	case EdgeBottom:
		n.bottom = append(n.bottom, cell)
	case EdgeRight:
		n.right = append(n.right, cell)
	}
}

// OnEdge - все соседи на данной стороне.
func (n *CellNeighbors) OnEdge(edge BoxEdge) []*Cell {
	switch edge {
	case EdgeTop:
		return n.top
	case EdgeLeft:
		return n.left
	case EdgeBottom:
		return n.bottom
	default:
		return n.right
	}
}

// All - все соседи в каноническом порядке сторон.
func (n *CellNeighbors) All() []*Cell {
	all := make([]*Cell, 0, len(n.top)+len(n.left)+len(n.bottom)+len(n.right))
	all = append(all, n.top...)
	all = append(all, n.left...)
	all = append(all, n.bottom...)
	all = append(all, n.right...)
	return all
}

// Len - общее число найденных соседей.
func (n *CellNeighbors) Len() int {
	return len(n.top) + len(n.left) + len(n.bottom) + len(n.right)
}
