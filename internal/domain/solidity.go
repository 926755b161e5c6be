package domain

// Solidity - упакованная в байт маска проходимости сторон.
//
// Конфигурация битов:
//
//	старшая тетрада - "выходимость" (exit), младшая - "входимость" (enter);
//	внутри тетрады биты от старшего к младшему: left, right, top, bottom.
//
// Бит 1 означает, что сторону МОЖНО пройти. Таким образом Solid (все нули) -
// полностью непроходимая область, NoSolidity (все единицы) - воздух.
// Побитовые &, | и ^ работают как пересечение, объединение и дополнение
// разрешений.
type Solidity uint8

const (
	// Solid - нельзя ни войти, ни выйти ни с одной стороны.
	Solid Solidity = 0
	// NoSolidity - все стороны свободно проходимы в обе стороны.
	NoSolidity Solidity = 0xFF

	EnterLeft   Solidity = 0b0000_1000
	EnterRight  Solidity = 0b0000_0100
	EnterTop    Solidity = 0b0000_0010
	EnterBottom Solidity = 0b0000_0001
	ExitLeft    Solidity = 0b1000_0000
	ExitRight   Solidity = 0b0100_0000
	ExitTop     Solidity = 0b0010_0000
	ExitBottom  Solidity = 0b0001_0000
)

// --- МЕТОДЫ ДОСТУПА ---

func (s Solidity) EnterLeft() bool   { return s&EnterLeft != 0 }
func (s Solidity) EnterRight() bool  { return s&EnterRight != 0 }
func (s Solidity) EnterTop() bool    { return s&EnterTop != 0 }
func (s Solidity) EnterBottom() bool { return s&EnterBottom != 0 }
func (s Solidity) ExitLeft() bool    { return s&ExitLeft != 0 }
func (s Solidity) ExitRight() bool   { return s&ExitRight != 0 }
func (s Solidity) ExitTop() bool     { return s&ExitTop != 0 }
func (s Solidity) ExitBottom() bool  { return s&ExitBottom != 0 }

// EnterEdge - можно ли войти через данную сторону.
func (s Solidity) EnterEdge(edge BoxEdge) bool {
	switch edge {
	case EdgeTop:
		return s.EnterTop()
	case EdgeLeft:
		return s.EnterLeft()
	case EdgeBottom:
		return s.EnterBottom()
	default:
		return s.EnterRight()
	}
}

// ExitEdge - можно ли выйти через данную сторону.
func (s Solidity) ExitEdge(edge BoxEdge) bool {
	switch edge {
	case EdgeTop:
		return s.ExitTop()
	case EdgeLeft:
		return s.ExitLeft()
	case EdgeBottom:
		return s.ExitBottom()
	default:
		return s.ExitRight()
	}
}

// HasSolidity - есть ли хоть одно ограничение (маска отличается от воздуха).
func (s Solidity) HasSolidity() bool {
	return s != NoSolidity
}
