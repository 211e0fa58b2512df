package level

import "fmt"

// Coord represents a 2D cell coordinate on the grid.
// X increases to the right, Y increases downward (row 0 is topmost).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Vec2 is a world-space 2D position.
type Vec2 struct {
	X float64
	Y float64
}

// String returns a string representation of the position.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}
