package domain

import "testing"

func TestSolidityBits(t *testing.T) {
	// Маска = объединение разрешений
	s := EnterLeft | EnterTop | ExitRight

	if !s.EnterLeft() || !s.EnterTop() || !s.ExitRight() {
		t.Error("expected granted bits to be set")
	}
	if s.EnterRight() || s.EnterBottom() || s.ExitLeft() || s.ExitTop() || s.ExitBottom() {
		t.Error("expected ungranted bits to be clear")
	}
}

func TestSolidityExtremes(t *testing.T) {
	for _, edge := range Edges {
		if Solid.EnterEdge(edge) || Solid.ExitEdge(edge) {
			t.Errorf("Solid must block edge %v in both directions", edge)
		}
		if !NoSolidity.EnterEdge(edge) || !NoSolidity.ExitEdge(edge) {
			t.Errorf("NoSolidity must open edge %v in both directions", edge)
		}
	}
}

func TestSolidityEdgeAccessors(t *testing.T) {
	tests := []struct {
		name  string
		mask  Solidity
		edge  BoxEdge
		enter bool
		exit  bool
	}{
		{"Enter top only", EnterTop, EdgeTop, true, false},
		{"Exit bottom only", ExitBottom, EdgeBottom, false, true},
		{"Left closed", NoSolidity ^ EnterLeft ^ ExitLeft, EdgeLeft, false, false},
		{"Right open", NoSolidity, EdgeRight, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.EnterEdge(tt.edge); got != tt.enter {
				t.Errorf("EnterEdge(%v) = %v, want %v", tt.edge, got, tt.enter)
			}
			if got := tt.mask.ExitEdge(tt.edge); got != tt.exit {
				t.Errorf("ExitEdge(%v) = %v, want %v", tt.edge, got, tt.exit)
			}
		})
	}
}

func TestSolidityHasSolidity(t *testing.T) {
	if NoSolidity.HasSolidity() {
		t.Error("air must have no solidity")
	}
	if !Solid.HasSolidity() {
		t.Error("solid must have solidity")
	}
	// Даже одно закрытое направление - уже телесность
	if !(NoSolidity ^ EnterTop).HasSolidity() {
		t.Error("a single blocked direction must count as solidity")
	}
}
