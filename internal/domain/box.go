package domain

// Box - прямоугольник, выровненный по осям: позиция верхнего левого угла
// и размер. Инвариант w>0 && h>0 гарантируется конструктором и SetSize,
// поэтому поля приватные.
type Box struct {
	pos  Vec
	size Vec
}

// NewBox создает прямоугольник с проверкой размеров.
func NewBox(x, y, w, h float64) (Box, error) {
	if w <= 0 || h <= 0 {
		return Box{}, ErrBoxSize
	}
	return Box{pos: Vec{X: x, Y: y}, size: Vec{X: w, Y: h}}, nil
}

// MustBox - вспомогательный конструктор для литералов в коде уровней и тестах,
// где размеры известны статически.
func MustBox(x, y, w, h float64) Box {
	b, err := NewBox(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Box) Pos() Vec  { return b.pos }
func (b Box) Size() Vec { return b.size }

// SetPos переносит прямоугольник (размер не трогаем, инвариант цел).
func (b *Box) SetPos(pos Vec) {
	b.pos = pos
}

// SetSize меняет размер с той же валидацией, что и конструктор.
func (b *Box) SetSize(size Vec) error {
	if size.X <= 0 || size.Y <= 0 {
		return ErrBoxSize
	}
	b.size = size
	return nil
}

// Координаты сторон.

func (b Box) TopY() float64    { return b.pos.Y }
func (b Box) LeftX() float64   { return b.pos.X }
func (b Box) BottomY() float64 { return b.pos.Y + b.size.Y }
func (b Box) RightX() float64  { return b.pos.X + b.size.X }

// Edge возвращает координату стороны: для Top/Bottom это Y, для Left/Right - X.
func (b Box) Edge(edge BoxEdge) float64 {
	switch edge {
	case EdgeTop:
		return b.TopY()
	case EdgeLeft:
		return b.LeftX()
	case EdgeBottom:
		return b.BottomY()
	default:
		return b.RightX()
	}
}

// SetEdge переносит прямоугольник так, чтобы Edge(edge) == val.
// Перенос только по оси, перпендикулярной стороне.
func (b *Box) SetEdge(val float64, edge BoxEdge) {
	switch edge {
	case EdgeTop:
		b.pos.Y = val
	case EdgeLeft:
		b.pos.X = val
	case EdgeBottom:
		b.pos.Y = val - b.size.Y
	case EdgeRight:
		b.pos.X = val - b.size.X
	}
}

// SetTouchingEdge совмещает одноименные стороны b и other.
func (b *Box) SetTouchingEdge(other Box, edge BoxEdge) {
	b.SetEdge(other.Edge(edge), edge)
}

// SetTouchingOppositeEdge совмещает сторону edge прямоугольника b
// с противоположной стороной other (b прижимается к other снаружи).
func (b *Box) SetTouchingOppositeEdge(other Box, edge BoxEdge) {
	b.SetEdge(other.Edge(edge.Opposite()), edge)
}

// FarAxis - дальняя координата по оси (правая или нижняя сторона).
func (b Box) FarAxis(axis Axis) float64 {
	if axis == AxisX {
		return b.RightX()
	}
	return b.BottomY()
}

// NearAxis - ближняя координата по оси (левая или верхняя сторона).
func (b Box) NearAxis(axis Axis) float64 {
	if axis == AxisX {
		return b.LeftX()
	}
	return b.TopY()
}

// ContainsPos - полуоткрытый тест принадлежности: верхняя и левая стороны
// включены, нижняя и правая исключены. Благодаря этому точка на стыке двух
// клеток принадлежит ровно одной из них.
func (b Box) ContainsPos(p Vec) bool {
	return p.X >= b.pos.X && p.X < b.RightX() &&
		p.Y >= b.pos.Y && p.Y < b.BottomY()
}

// containsPosInclusive - тот же тест, но все четыре стороны включены.
func (b Box) containsPosInclusive(p Vec) bool {
	return p.X >= b.pos.X && p.X <= b.RightX() &&
		p.Y >= b.pos.Y && p.Y <= b.BottomY()
}

// HasOverlap - строгое пересечение внутренностей (только > и <).
// Два прямоугольника, соприкасающиеся стороной, НЕ пересекаются.
func (b Box) HasOverlap(other Box) bool {
	return other.RightX() > b.pos.X && other.pos.X < b.RightX() &&
		other.BottomY() > b.pos.Y && other.pos.Y < b.BottomY()
}

// IsFullyContainedBy - включающее вложение: b.IsFullyContainedBy(b) == true,
// совпадение границ тоже считается вложением.
func (b Box) IsFullyContainedBy(other Box) bool {
	return other.containsPosInclusive(b.pos) &&
		other.containsPosInclusive(b.pos.Add(b.size))
}

// IsEdgeCrossedBy проверяет, пересекает ли other сторону edge прямоугольника b
// (ближняя координата other строго меньше координаты стороны, дальняя строго больше).
func (b Box) IsEdgeCrossedBy(other Box, edge BoxEdge) bool {
	switch edge {
	case EdgeTop:
		return other.pos.Y < b.pos.Y && other.BottomY() > b.pos.Y
	case EdgeLeft:
		return other.pos.X < b.pos.X && other.RightX() > b.pos.X
	case EdgeBottom:
		return other.pos.Y < b.BottomY() && other.BottomY() > b.BottomY()
	default:
		return other.pos.X < b.RightX() && other.RightX() > b.RightX()
	}
}

// EdgesCrossedBy возвращает стороны b, которые other пересекает насквозь.
// Пусто, если пересечения нет вовсе или other целиком внутри b.
func (b Box) EdgesCrossedBy(other Box) []BoxEdge {
	if !b.HasOverlap(other) || other.IsFullyContainedBy(b) {
		return nil
	}
	edges := make([]BoxEdge, 0, 4)
	for _, edge := range Edges {
		if b.IsEdgeCrossedBy(other, edge) {
			edges = append(edges, edge)
		}
	}
	return edges
}

// ShiftToNonoverlapping выталкивает b из other по направлению минимального
// проникновения. Один минимальный сдвиг, не итеративный решатель: при трех и
// более взаимных пересечениях остаточное перекрытие возможно.
// Ничья между равными глубинами разрешается порядком top,left,bottom,right.
func (b *Box) ShiftToNonoverlapping(other Box) {
	if !b.HasOverlap(other) {
		return
	}

	// Глубина проникновения для каждого из четырех направлений выталкивания.
	diffs := [4]struct {
		edge BoxEdge
		diff float64
	}{
		{EdgeTop, other.BottomY() - b.TopY()},
		{EdgeLeft, other.RightX() - b.LeftX()},
		{EdgeBottom, b.BottomY() - other.TopY()},
		{EdgeRight, b.RightX() - other.LeftX()},
	}

	shiftEdge := BoxEdge(0)
	best := 0.0
	found := false
	for _, d := range diffs {
		if d.diff > 0 && (!found || d.diff < best) {
			shiftEdge = d.edge
			best = d.diff
			found = true
		}
	}

	if found {
		b.SetTouchingOppositeEdge(other, shiftEdge)
	}
}
