package board_test

import (
	"testing"

	"github.com/plus3/stacker/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *board.Board, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for col := 0; col < board.Columns; col++ {
		if !skip[col] {
			b.SetCell(row, col, true, board.ColorBlue)
		}
	}
}

func TestDimensions(t *testing.T) {
	b := board.New()
	assert.Equal(t, 22, b.Rows())
	assert.Equal(t, 10, b.Columns())
}

func TestOccupancy(t *testing.T) {
	b := board.New()

	b.SetCell(5, 3, true, board.ColorRed)
	assert.True(t, b.IsOccupied(5, 3))
	assert.Equal(t, board.ColorRed, b.Cell(5, 3).Color)

	b.SetCell(5, 3, false, board.ColorRed)
	assert.False(t, b.IsOccupied(5, 3))
	assert.Equal(t, board.ColorNone, b.Cell(5, 3).Color)

	t.Run("off board", func(t *testing.T) {
		assert.False(t, b.IsOccupied(-1, 0))
		assert.False(t, b.IsOccupied(0, board.Columns))
		assert.True(t, b.Blocked(-1, 0))
		assert.True(t, b.Blocked(board.Rows, 0))
		assert.True(t, b.Blocked(0, -1))
		assert.False(t, b.Blocked(0, 0))

		b.SetCell(board.Rows, 0, true, board.ColorRed)
		assert.Equal(t, board.Cell{}, b.Cell(board.Rows, 0))
	})
}

func TestClearFullRows(t *testing.T) {
	t.Run("single full row", func(t *testing.T) {
		b := board.New()
		fillRow(b, 21)
		b.SetCell(20, 4, true, board.ColorGreen)
		b.SetCell(10, 0, true, board.ColorGreen)

		require.Equal(t, 1, b.ClearFullRows())
		assert.Equal(t, 22, b.Rows())

		for col := 0; col < board.Columns; col++ {
			assert.False(t, b.IsOccupied(0, col), "top row must be fresh")
		}
		assert.True(t, b.IsOccupied(21, 4), "row above shifted down")
		assert.True(t, b.IsOccupied(11, 0))
		assert.False(t, b.IsOccupied(10, 0))
	})

	t.Run("no full rows", func(t *testing.T) {
		b := board.New()
		fillRow(b, 21, 9)
		assert.Equal(t, 0, b.ClearFullRows())
		assert.True(t, b.IsOccupied(21, 0))
	})

	t.Run("adjacent and separated rows", func(t *testing.T) {
		b := board.New()
		fillRow(b, 21)
		fillRow(b, 20)
		fillRow(b, 19, 0)
		fillRow(b, 18)
		b.SetCell(17, 7, true, board.ColorRed)

		assert.Equal(t, 3, b.ClearFullRows())
		assert.True(t, b.IsOccupied(21, 1))
		assert.False(t, b.IsOccupied(21, 0))
		assert.True(t, b.IsOccupied(20, 7))
		assert.Equal(t, 2, b.Height())
	})

	t.Run("full row in the hidden buffer", func(t *testing.T) {
		b := board.New()
		fillRow(b, 0)
		assert.Equal(t, 1, b.ClearFullRows())
		assert.Equal(t, 0, b.Height())
	})
}

func TestInsertGarbageRows(t *testing.T) {
	t.Run("pushes the stack up", func(t *testing.T) {
		b := board.New()
		b.SetCell(21, 2, true, board.ColorRed)

		overflow := b.InsertGarbageRows(2, func() int { return 5 })
		assert.False(t, overflow)
		assert.True(t, b.IsOccupied(19, 2))
		assert.False(t, b.IsOccupied(21, 2) && b.Cell(21, 2).Color == board.ColorRed)

		for _, row := range []int{20, 21} {
			for col := 0; col < board.Columns; col++ {
				if col == 5 {
					assert.False(t, b.IsOccupied(row, col))
					continue
				}
				assert.Equal(t, board.ColorGarbage, b.Cell(row, col).Color)
			}
		}
	})

	t.Run("asks the policy once per row", func(t *testing.T) {
		b := board.New()
		holes := []int{1, 8, 3}
		i := 0
		b.InsertGarbageRows(3, func() int {
			h := holes[i]
			i++
			return h
		})
		assert.Equal(t, 3, i)
		assert.False(t, b.IsOccupied(19, 1))
		assert.False(t, b.IsOccupied(20, 8))
		assert.False(t, b.IsOccupied(21, 3))
	})

	t.Run("overflow when the top is occupied", func(t *testing.T) {
		b := board.New()
		b.SetCell(1, 4, true, board.ColorRed)

		assert.True(t, b.InsertGarbageRows(2, func() int { return 0 }))
		assert.Equal(t, 22, b.Rows())
	})

	t.Run("zero rows is a no-op", func(t *testing.T) {
		b := board.New()
		assert.False(t, b.InsertGarbageRows(0, func() int { return 0 }))
		assert.Equal(t, 0, b.Height())
	})
}

func TestIsBottomRowEmpty(t *testing.T) {
	b := board.New()
	assert.True(t, b.IsBottomRowEmpty())

	b.SetCell(5, 5, true, board.ColorRed)
	assert.True(t, b.IsBottomRowEmpty(), "only the lowest row is inspected")

	b.SetCell(21, 0, true, board.ColorRed)
	assert.False(t, b.IsBottomRowEmpty())
}

func TestString(t *testing.T) {
	b := board.New()
	b.SetCell(21, 0, true, board.ColorRed)
	s := b.String()

	assert.Contains(t, s, "----------\n")
	assert.Contains(t, s, "#.........\n")
}
