package interpreter

import (
	"errors"
	"fmt"
)

// DefaultSize is the width and height of a table built by NewTable.
const DefaultSize = 5

// ErrInvalidDimensions is returned for a table narrower or shorter than one unit.
var ErrInvalidDimensions = errors.New("table dimensions must be positive")

// Table is the rectangular surface the robot moves on. Point 0,0 is the
// south western corner.
type Table struct {
	width    int
	height   int
	occupied bool
}

// NewTable builds a DefaultSize x DefaultSize table.
func NewTable() *Table {
	return &Table{width: DefaultSize, height: DefaultSize}
}

// NewTableSize builds a width x height table.
func NewTableSize(width, height int) (*Table, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Table{width: width, height: height}, nil
}

// Width is the number of columns, x runs from 0 to Width()-1.
func (t *Table) Width() int { return t.width }

// Height is the number of rows, y runs from 0 to Height()-1.
func (t *Table) Height() int { return t.height }

// HasRobot reports whether a robot has been placed on the table.
func (t *Table) HasRobot() bool { return t.occupied }

// MarkOccupied records a successful placement. There is no way back.
func (t *Table) MarkOccupied() {
	t.occupied = true
}

// inBounds reports whether x,y lies on a width x height table.
func inBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

func (t *Table) String() string {
	return fmt.Sprintf("%dx%d", t.width, t.height)
}
