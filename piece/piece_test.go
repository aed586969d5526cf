package piece_test

import (
	"testing"

	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placed moves a fresh piece down into open space so kicks have room.
func placed(shape piece.Shape) piece.Piece {
	return piece.New(shape).Shifted(8, 0)
}

func cellSet(p piece.Piece) map[piece.Point]bool {
	set := make(map[piece.Point]bool, 4)
	for _, c := range p.Cells {
		set[c] = true
	}
	return set
}

func TestNew(t *testing.T) {
	for _, shape := range piece.Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			p := piece.New(shape)
			assert.Equal(t, 0, p.Rotation)
			assert.Equal(t, shape.Color(), p.Color)
			assert.Len(t, cellSet(p), 4, "cells must be distinct")

			for _, c := range p.Cells {
				assert.Less(t, c.Row, board.HiddenRows, "spawns inside the buffer")
				assert.GreaterOrEqual(t, c.Col, 3)
				assert.LessOrEqual(t, c.Col, 6)
			}
			assert.True(t, p.Fits(board.New()))
		})
	}
}

func TestFullRotationCycle(t *testing.T) {
	for _, shape := range piece.Shapes {
		for _, dir := range []piece.Direction{piece.Clockwise, piece.CounterClockwise} {
			t.Run(shape.String()+"/"+dir.String(), func(t *testing.T) {
				start := placed(shape)
				p := start
				for range 4 {
					candidates := p.Rotate(dir)
					require.NotEmpty(t, candidates)
					p = p.Apply(candidates[0])
				}
				assert.Equal(t, start.Cells, p.Cells)
				assert.Equal(t, start.Rotation, p.Rotation)
			})
		}
	}
}

func TestRotationStates(t *testing.T) {
	p := placed(piece.T)
	p = p.Apply(p.Rotate(piece.Clockwise)[0])
	assert.Equal(t, 1, p.Rotation)
	p = p.Apply(p.Rotate(piece.Clockwise)[0])
	assert.Equal(t, 2, p.Rotation)

	q := placed(piece.T)
	q = q.Apply(q.Rotate(piece.CounterClockwise)[0])
	assert.Equal(t, 3, q.Rotation)
}

func TestSquareIsRotationInvariant(t *testing.T) {
	p := placed(piece.O)
	for _, dir := range []piece.Direction{piece.Clockwise, piece.CounterClockwise} {
		candidates := p.Rotate(dir)
		require.Len(t, candidates, 1)
		assert.Equal(t, p.Cells, candidates[0].Cells)
		assert.Equal(t, 0, candidates[0].Rotation)
	}
}

func TestTRotatesAboutPivot(t *testing.T) {
	p := placed(piece.T)
	pivot := p.Pivot()

	r := p.Apply(p.Rotate(piece.Clockwise)[0])
	assert.Equal(t, pivot, r.Pivot())

	// Orientation 1 points right: the nub sits right of the pivot.
	assert.True(t, cellSet(r)[piece.Point{Row: pivot.Row, Col: pivot.Col + 1}])
	assert.True(t, cellSet(r)[piece.Point{Row: pivot.Row - 1, Col: pivot.Col}])
	assert.True(t, cellSet(r)[piece.Point{Row: pivot.Row + 1, Col: pivot.Col}])
}

func TestBarRotationTable(t *testing.T) {
	p := placed(piece.I)
	r := p.Apply(p.Rotate(piece.Clockwise)[0])

	cols := map[int]bool{}
	for _, c := range r.Cells {
		cols[c.Col] = true
	}
	assert.Len(t, cols, 1, "vertical bar occupies a single column")
	assert.Equal(t, p.Cells[2].Col-1, r.Cells[0].Col)
}

func TestKickCandidates(t *testing.T) {
	t.Run("identity first", func(t *testing.T) {
		for _, shape := range piece.Shapes {
			p := placed(shape)
			candidates := p.Rotate(piece.Clockwise)
			if shape == piece.O {
				continue
			}
			require.Len(t, candidates, 5)
			for i := 1; i < len(candidates); i++ {
				assert.NotEqual(t, candidates[0].Cells, candidates[i].Cells)
				assert.Equal(t, candidates[0].Rotation, candidates[i].Rotation)
			}
		}
	})

	t.Run("T against the left wall kicks right", func(t *testing.T) {
		b := board.New()
		p := placed(piece.T)
		// Rotate to orientation 1 (pointing right) and slide flush left.
		p = p.Apply(p.Rotate(piece.CounterClockwise)[0])
		p = p.Apply(p.Rotate(piece.CounterClockwise)[0])
		p = p.Apply(p.Rotate(piece.CounterClockwise)[0])
		require.Equal(t, 1, p.Rotation)
		for p.Shifted(0, -1).Fits(b) {
			p = p.Shifted(0, -1)
		}

		candidates := p.Rotate(piece.CounterClockwise)
		assert.False(t, candidates[0].Fits(b), "plain rotation pokes through the wall")

		var chosen *piece.Placement
		for i := range candidates {
			if candidates[i].Fits(b) {
				chosen = &candidates[i]
				break
			}
		}
		require.NotNil(t, chosen)
		assert.Equal(t, 0, chosen.Rotation)
	})
}

func TestParseShape(t *testing.T) {
	s, ok := piece.ParseShape("T")
	assert.True(t, ok)
	assert.Equal(t, piece.T, s)

	_, ok = piece.ParseShape("X")
	assert.False(t, ok)
	assert.False(t, piece.Shape(9).Valid())
	assert.Equal(t, "?", piece.Shape(9).String())
}
