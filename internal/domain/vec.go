package domain

import "math"

// Vec - точка или вектор в непрерывных координатах арены.
// Передается по значению, как и Position в пошаговой версии движка.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add возвращает сумму векторов (не меняя исходный).
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub возвращает разность векторов.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale умножает вектор на скаляр.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// MagnitudeSq - квадрат длины (для сравнений без корня).
func (v Vec) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude - длина вектора.
func (v Vec) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize возвращает вектор той же направленности с длиной 1.
// Нулевой вектор остается нулевым.
func (v Vec) Normalize() Vec {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec{}
	}
	return Vec{X: v.X / mag, Y: v.Y / mag}
}

// IsZero - строгая проверка на неподвижность.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsReducedByEdge проверяет, гасится ли скорость столкновением на данной
// стороне: скалярное произведение скорости и нормали стороны положительно.
// Движение вправо гасится правой стороной, движение вверх (-Y) - верхней.
func (v Vec) IsReducedByEdge(edge BoxEdge) bool {
	switch edge {
	case EdgeTop:
		return v.Y < 0
	case EdgeLeft:
		return v.X < 0
	case EdgeBottom:
		return v.Y > 0
	case EdgeRight:
		return v.X > 0
	}
	return false
}
