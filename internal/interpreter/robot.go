package interpreter

import "fmt"

// Robot holds the position and facing of the toy robot. Whether it is on
// the table is tracked by Table; no Robot method checks it.
type Robot struct {
	X, Y   int
	Facing Facing
}

func NewRobot() *Robot {
	return &Robot{Facing: North}
}

// Place puts the robot at x,y facing f on a width x height table. Nothing
// changes when the spot is off the table.
func (r *Robot) Place(x, y int, f Facing, width, height int) bool {
	if x < 0 || y < 0 || width < 1 || height < 1 {
		return false
	}
	if !inBounds(x, y, width, height) {
		return false
	}
	if !f.valid() {
		return false
	}
	r.X, r.Y, r.Facing = x, y, f
	return true
}

// PlaceString is Place with the direction given as text, matched the way
// ParseFacing does.
func (r *Robot) PlaceString(x, y int, facing string, width, height int) bool {
	f, ok := ParseFacing(facing)
	if !ok {
		return false
	}
	return r.Place(x, y, f, width, height)
}

func (r *Robot) Left() bool {
	r.Facing = r.Facing.Left()
	return true
}

func (r *Robot) Right() bool {
	r.Facing = r.Facing.Right()
	return true
}

// Move steps one unit forward unless that would take the robot off a
// width x height table.
func (r *Robot) Move(width, height int) bool {
	if width < 1 || height < 1 {
		return false
	}
	dx, dy := r.Facing.step()
	nx, ny := r.X+dx, r.Y+dy
	if !inBounds(nx, ny, width, height) {
		return false
	}
	r.X, r.Y = nx, ny
	return true
}

func (r *Robot) Position() (int, int, Facing) {
	return r.X, r.Y, r.Facing
}

// Report renders the robot state as printed for the REPORT command.
func (r *Robot) Report() string {
	return fmt.Sprintf("\nOutput: %s\n", r)
}

func (r *Robot) String() string {
	return fmt.Sprintf("%d, %d, %s", r.X, r.Y, r.Facing)
}
