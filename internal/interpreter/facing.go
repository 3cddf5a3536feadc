package interpreter

import (
	"fmt"
	"strings"
)

// Facing is one of the four compass directions the robot can point at.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"NORTH", "EAST", "SOUTH", "WEST"}

func (f Facing) valid() bool {
	return f >= North && f <= West
}

// mustBeValid panics on a value outside the four directions. Place and the
// rotations only ever store valid values, so reaching the panic is a bug.
func (f Facing) mustBeValid() {
	if !f.valid() {
		panic(fmt.Sprintf("interpreter: invalid facing %d", int(f)))
	}
}

func (f Facing) String() string {
	f.mustBeValid()
	return facingNames[f]
}

// Left returns the facing 90 degrees counterclockwise of f.
func (f Facing) Left() Facing {
	f.mustBeValid()
	return (f + 3) % 4
}

// Right returns the facing 90 degrees clockwise of f.
func (f Facing) Right() Facing {
	f.mustBeValid()
	return (f + 1) % 4
}

// step is the unit move for f
func (f Facing) step() (dx, dy int) {
	switch f {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("interpreter: invalid facing %d", int(f)))
}

// ParseFacing finds a direction name anywhere in s, ignoring case. When s
// holds more than one name the leftmost wins, so "northwest" is North.
func ParseFacing(s string) (Facing, bool) {
	upper := strings.ToUpper(s)
	found, at := North, -1
	for i, name := range facingNames {
		if j := strings.Index(upper, name); j >= 0 && (at < 0 || j < at) {
			found, at = Facing(i), j
		}
	}
	return found, at >= 0
}

// Capture lets the grammar decode a direction token straight into a Facing.
func (f *Facing) Capture(values []string) error {
	v, ok := ParseFacing(strings.Join(values, ""))
	if !ok {
		return fmt.Errorf("unknown facing %q", strings.Join(values, ""))
	}
	*f = v
	return nil
}
