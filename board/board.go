// Package board implements the playfield grid.
//
// Rows are numbered top to bottom. The first HiddenRows rows form the spawn buffer:
// they collide like any other row but are never rendered.
package board

import "strings"

const (
	Columns     = 10
	VisibleRows = 20
	HiddenRows  = 2
	Rows        = VisibleRows + HiddenRows
)

// Color is the identity tag a cell is drawn with.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorGarbage
)

// Cell is one square of the playfield.
type Cell struct {
	Occupied bool
	Color    Color
}

// Board is a fixed-size grid of cells.
type Board struct {
	cells [Rows][Columns]Cell
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [Rows][Columns]Cell{}
}

func (b *Board) Rows() int    { return Rows }
func (b *Board) Columns() int { return Columns }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// Cell returns the cell at (row, col). Off-board positions yield an empty cell.
func (b *Board) Cell(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[row][col]
}

// IsOccupied reports whether the on-board cell at (row, col) is filled.
func (b *Board) IsOccupied(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row][col].Occupied
}

// Blocked reports whether a piece cell may not be placed at (row, col).
func (b *Board) Blocked(row, col int) bool {
	return !b.InBounds(row, col) || b.cells[row][col].Occupied
}

// SetCell writes a cell. Off-board writes are ignored.
func (b *Board) SetCell(row, col int, occupied bool, color Color) {
	if !b.InBounds(row, col) {
		return
	}
	if !occupied {
		color = ColorNone
	}
	b.cells[row][col] = Cell{Occupied: occupied, Color: color}
}

// IsRowFull reports whether every cell of the row is occupied.
func (b *Board) IsRowFull(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for _, c := range b.cells[row] {
		if !c.Occupied {
			return false
		}
	}
	return true
}

func (b *Board) isRowEmpty(row int) bool {
	for _, c := range b.cells[row] {
		if c.Occupied {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and returns how many were removed.
// Rows are scanned top to bottom; each removal shifts the rows above it down by
// one and opens an empty row at index 0, so the scan never skips a row.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := 0; row < Rows; row++ {
		if !b.IsRowFull(row) {
			continue
		}
		copy(b.cells[1:row+1], b.cells[0:row])
		b.cells[0] = [Columns]Cell{}
		cleared++
	}
	return cleared
}

// InsertGarbageRows pushes the stack up by n rows and fills the bottom with
// garbage, leaving one hole per row at the column returned by hole.
// It reports overflow when any row pushed off the top was occupied.
func (b *Board) InsertGarbageRows(n int, hole func() int) (overflow bool) {
	if n <= 0 {
		return false
	}
	if n > Rows {
		n = Rows
	}

	for row := 0; row < n; row++ {
		if !b.isRowEmpty(row) {
			overflow = true
		}
	}

	copy(b.cells[0:Rows-n], b.cells[n:Rows])
	for row := Rows - n; row < Rows; row++ {
		gap := hole()
		for col := range b.cells[row] {
			if col == gap {
				b.cells[row][col] = Cell{}
				continue
			}
			b.cells[row][col] = Cell{Occupied: true, Color: ColorGarbage}
		}
	}
	return overflow
}

// IsBottomRowEmpty reports whether the lowest visible row is empty.
// Sessions use it as the all-clear check instead of scanning the whole board.
func (b *Board) IsBottomRowEmpty() bool {
	return b.isRowEmpty(Rows - 1)
}

// Height returns the number of rows from the bottom up to and including the
// highest occupied cell.
func (b *Board) Height() int {
	for row := 0; row < Rows; row++ {
		if !b.isRowEmpty(row) {
			return Rows - row
		}
	}
	return 0
}

// String renders the board with '#' for occupied and '.' for empty cells,
// separating the hidden rows from the visible area with a line of dashes.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		if row == HiddenRows {
			sb.WriteString(strings.Repeat("-", Columns))
			sb.WriteByte('\n')
		}
		for _, c := range b.cells[row] {
			if c.Occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
