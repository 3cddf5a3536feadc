package interpreter

import "testing"

var allFacings = []Facing{North, East, South, West}

func TestRotationCycle(t *testing.T) {
	tests := []struct {
		from        Facing
		left, right Facing
	}{
		{North, West, East},
		{West, South, North},
		{South, East, West},
		{East, North, South},
	}
	for _, tt := range tests {
		if got := tt.from.Left(); got != tt.left {
			t.Errorf("%v.Left() = %v, want %v", tt.from, got, tt.left)
		}
		if got := tt.from.Right(); got != tt.right {
			t.Errorf("%v.Right() = %v, want %v", tt.from, got, tt.right)
		}
	}
}

func TestRotationClosure(t *testing.T) {
	for _, f := range allFacings {
		l, r := f, f
		for i := 0; i < 4; i++ {
			l = l.Left()
			r = r.Right()
		}
		if l != f {
			t.Errorf("four lefts from %v ended at %v", f, l)
		}
		if r != f {
			t.Errorf("four rights from %v ended at %v", f, r)
		}
		if got := f.Left().Right(); got != f {
			t.Errorf("%v left then right = %v", f, got)
		}
		if got := f.Right().Left(); got != f {
			t.Errorf("%v right then left = %v", f, got)
		}
	}
}

func TestParseFacing(t *testing.T) {
	tests := []struct {
		input string
		want  Facing
		ok    bool
	}{
		{"NORTH", North, true},
		{"south", South, true},
		{"East", East, true},
		{"wEsT", West, true},
		{"  NORTH  ", North, true},
		{"northward", North, true},
		{"SOUTHWEST", South, true},
		{"go west then north", West, true},
		{"", North, false},
		{"UP", North, false},
		{"NORT", North, false},
	}
	for _, tt := range tests {
		got, ok := ParseFacing(tt.input)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseFacing(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFacingString(t *testing.T) {
	want := []string{"NORTH", "EAST", "SOUTH", "WEST"}
	for i, f := range allFacings {
		if f.String() != want[i] {
			t.Errorf("String() = %s, want %s", f.String(), want[i])
		}
	}
}

func TestInvalidFacingPanics(t *testing.T) {
	ops := map[string]func(Facing){
		"Left":   func(f Facing) { f.Left() },
		"Right":  func(f Facing) { f.Right() },
		"String": func(f Facing) { _ = f.String() },
		"step":   func(f Facing) { f.step() },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on invalid facing did not panic", name)
				}
			}()
			op(Facing(9))
		})
	}
}
