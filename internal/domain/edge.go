package domain

// BoxEdge - идентификатор одной из четырех сторон прямоугольника.
// Система координат экранная: +Y направлен вниз, поэтому Top - это
// сторона с минимальным Y.
type BoxEdge uint8

const (
	EdgeTop BoxEdge = iota
	EdgeLeft
	EdgeBottom
	EdgeRight
)

// Axis - одна из двух осей координат.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Edges перечисляет стороны в каноническом порядке обхода.
// Этот порядок важен: он определяет разрешение ничьих в ShiftToNonoverlapping
// и порядок групп соседей в обходе графа.
var Edges = [4]BoxEdge{EdgeTop, EdgeLeft, EdgeBottom, EdgeRight}

// Opposite возвращает противоположную сторону (Top <-> Bottom, Left <-> Right).
func (e BoxEdge) Opposite() BoxEdge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeLeft:
		return EdgeRight
	case EdgeBottom:
		return EdgeTop
	default:
		return EdgeLeft
	}
}

// PerpendicularAxis - ось, перпендикулярная стороне (для Top/Bottom это Y).
func (e BoxEdge) PerpendicularAxis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return AxisY
	}
	return AxisX
}

// ParallelAxis - ось, вдоль которой тянется сторона (для Top/Bottom это X).
func (e BoxEdge) ParallelAxis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return AxisX
	}
	return AxisY
}

// String нужен для логов физики.
func (e BoxEdge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	}
	return "?"
}

// Component возвращает компонент вектора вдоль оси.
func (a Axis) Component(v Vec) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}
