// Package piece models the seven tetrominoes, their rotation and wall kicks.
package piece

import "github.com/plus3/stacker/board"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	I Shape = iota
	O
	T
	S
	Z
	J
	L
)

// Shapes lists every shape in bag order.
var Shapes = [...]Shape{I, O, T, S, Z, J, L}

var shapeNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

var shapeColors = [...]board.Color{
	I: board.ColorCyan,
	O: board.ColorYellow,
	T: board.ColorPurple,
	S: board.ColorGreen,
	Z: board.ColorRed,
	J: board.ColorBlue,
	L: board.ColorOrange,
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "?"
}

// Color returns the cell color pieces of this shape lock with.
func (s Shape) Color() board.Color {
	if int(s) < len(shapeColors) {
		return shapeColors[s]
	}
	return board.ColorNone
}

// Valid reports whether s names one of the seven shapes.
func (s Shape) Valid() bool {
	return int(s) < len(Shapes)
}

// ParseShape maps a one-letter name to its shape.
func ParseShape(name string) (Shape, bool) {
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), true
		}
	}
	return 0, false
}

// Point is a board coordinate.
type Point struct {
	Row, Col int
}

func (p Point) add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Spawn position of the 4x4 bounding box every shape is laid out in.
const (
	SpawnRow = 0
	SpawnCol = 3
)

// spawnCells holds the orientation-0 layout of every shape relative to the
// spawn box origin. Index 3 is the pivot.
var spawnCells = [...][4]Point{
	I: {{1, 0}, {1, 1}, {1, 3}, {1, 2}},
	O: {{0, 1}, {0, 2}, {1, 2}, {1, 1}},
	T: {{0, 1}, {1, 0}, {1, 2}, {1, 1}},
	S: {{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	Z: {{0, 0}, {0, 1}, {1, 2}, {1, 1}},
	J: {{0, 0}, {1, 0}, {1, 2}, {1, 1}},
	L: {{0, 2}, {1, 0}, {1, 2}, {1, 1}},
}

// barStates lays out the long bar in each orientation inside its 4x4 box.
// The bar has no fixed center cell, so it rotates by table instead of about
// its pivot; the box origin is recovered from the pivot before each step.
var barStates = [4][4]Point{
	{{1, 0}, {1, 1}, {1, 3}, {1, 2}},
	{{0, 2}, {1, 2}, {3, 2}, {2, 2}},
	{{2, 3}, {2, 2}, {2, 0}, {2, 1}},
	{{3, 1}, {2, 1}, {0, 1}, {1, 1}},
}
