package piece

import "github.com/plus3/stacker/board"

// Direction is a rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Pivot is the index of the pivot in Piece.Cells.
const Pivot = 3

// Piece is a tetromino placed on the board.
type Piece struct {
	Shape    Shape
	Rotation int
	Color    board.Color
	// Cells holds the three satellites followed by the pivot.
	Cells [4]Point
}

// Placement is a candidate position produced by a rotation.
type Placement struct {
	Cells    [4]Point
	Rotation int
}

// New instantiates a shape at the spawn position in orientation 0.
func New(shape Shape) Piece {
	p := Piece{Shape: shape, Color: shape.Color()}
	for i, c := range spawnCells[shape] {
		p.Cells[i] = c.add(SpawnRow, SpawnCol)
	}
	return p
}

// Pivot returns the pivot cell.
func (p Piece) Pivot() Point {
	return p.Cells[Pivot]
}

// Shifted returns the piece translated by the given offset.
func (p Piece) Shifted(dRow, dCol int) Piece {
	for i := range p.Cells {
		p.Cells[i] = p.Cells[i].add(dRow, dCol)
	}
	return p
}

// Apply returns the piece moved to the placement.
func (p Piece) Apply(pl Placement) Piece {
	p.Cells = pl.Cells
	p.Rotation = pl.Rotation
	return p
}

// Placement returns the current position as a placement.
func (p Piece) Placement() Placement {
	return Placement{Cells: p.Cells, Rotation: p.Rotation}
}

// Fits reports whether every cell of the piece lies on a free board cell.
func (p Piece) Fits(b *board.Board) bool {
	return fits(p.Cells, b)
}

// Fits reports whether every cell of the placement lies on a free board cell.
func (pl Placement) Fits(b *board.Board) bool {
	return fits(pl.Cells, b)
}

func fits(cells [4]Point, b *board.Board) bool {
	for _, c := range cells {
		if b.Blocked(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// Rotate returns the ordered rotation candidates: the plain rotation first,
// followed by its wall-kick alternatives. The square returns only itself.
func (p Piece) Rotate(dir Direction) []Placement {
	if p.Shape == O {
		return []Placement{p.Placement()}
	}

	to := nextRotation(p.Rotation, dir)
	rotated := Placement{Cells: p.rotatedCells(dir, to), Rotation: to}

	kicks := kickTable(p.Shape, p.Rotation, dir)
	candidates := make([]Placement, 0, len(kicks))
	for _, k := range kicks {
		c := rotated
		for i := range c.Cells {
			c.Cells[i] = c.Cells[i].add(k.Row, k.Col)
		}
		candidates = append(candidates, c)
	}
	return candidates
}

func nextRotation(from int, dir Direction) int {
	if dir == CounterClockwise {
		return (from + 3) % 4
	}
	return (from + 1) % 4
}

func (p Piece) rotatedCells(dir Direction, to int) [4]Point {
	var out [4]Point
	if p.Shape == I {
		origin := p.Pivot().add(-barStates[p.Rotation][Pivot].Row, -barStates[p.Rotation][Pivot].Col)
		for i, c := range barStates[to] {
			out[i] = origin.add(c.Row, c.Col)
		}
		return out
	}

	pivot := p.Pivot()
	for i, c := range p.Cells {
		dr, dc := c.Row-pivot.Row, c.Col-pivot.Col
		if dir == Clockwise {
			dr, dc = dc, -dr
		} else {
			dr, dc = -dc, dr
		}
		out[i] = pivot.add(dr, dc)
	}
	return out
}
