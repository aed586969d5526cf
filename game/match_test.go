package game_test

import (
	"testing"
	"time"

	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newMatch(t *testing.T) (*game.Match, *game.Session, *game.Session) {
	t.Helper()
	m := game.NewMatch(bag.New(3), game.WithLogger(zaptest.NewLogger(t)), game.WithGarbageSeed(11))
	m.Start()
	a, b := m.Players()
	return m, a, b
}

func TestMatchSharesSequence(t *testing.T) {
	m, a, b := newMatch(t)
	assert.Equal(t, game.Versus, a.Mode())
	assert.Equal(t, game.Versus, b.Mode())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Active().Shape, b.Active().Shape)
	assert.Equal(t, a.Next(), b.Next())

	require.True(t, a.HardDrop())
	require.True(t, a.HardDrop())
	assert.NotEqual(t, a.Next(), b.Next(), "cursors advance independently")

	m.Restart()
	assert.Equal(t, a.Active().Shape, b.Active().Shape)
	assert.Equal(t, a.Next(), b.Next(), "both players open on the same bag after restart")
	assert.Zero(t, a.Board().Height())
}

func TestMatchGarbageExchange(t *testing.T) {
	m, a, b := newMatch(t)

	prepareTetris(a.Board())
	dropVerticalBar(t, a)
	require.Equal(t, 4, a.Garbage().Outbound())

	m.Advance(0)
	assert.Zero(t, a.Garbage().Outbound())
	assert.Equal(t, 4, b.Garbage().Pending())
	assert.Zero(t, a.Garbage().Pending())

	m.Advance(999 * time.Millisecond)
	assert.Zero(t, b.Garbage().Inbound(), "batch waits for its countdown")
	m.Advance(time.Millisecond)
	assert.Equal(t, 4, b.Garbage().Inbound())
	assert.Zero(t, b.Garbage().Pending())

	require.True(t, b.HardDrop())
	assert.Zero(t, b.Garbage().Inbound())
	for row := board.Rows - 4; row < board.Rows; row++ {
		assert.Equal(t, board.ColorGarbage, garbageColor(b.Board(), row), "row %d", row)
	}
}

func TestMatchCancellation(t *testing.T) {
	m, a, b := newMatch(t)

	prepareTetris(a.Board())
	dropVerticalBar(t, a)
	m.Advance(0)
	require.Equal(t, 4, b.Garbage().Pending())

	prepareTetris(b.Board())
	dropVerticalBar(t, b)
	r := b.LastClear()
	assert.Equal(t, 4, r.Attack)
	assert.Zero(t, r.Sent, "the clear is spent cancelling incoming lines")

	m.Advance(0)
	assert.Zero(t, a.Garbage().Pending())
	assert.Zero(t, b.Garbage().Pending())
}

func TestMatchSimultaneousClears(t *testing.T) {
	m, a, b := newMatch(t)

	prepareTetris(a.Board())
	dropVerticalBar(t, a)
	prepareTetris(b.Board())
	dropVerticalBar(t, b)

	m.Advance(0)
	assert.Equal(t, 4, a.Garbage().Pending())
	assert.Equal(t, 4, b.Garbage().Pending())
}

func TestMatchWinner(t *testing.T) {
	m, a, b := newMatch(t)
	assert.False(t, m.Over())
	assert.Nil(t, m.Winner())

	for row := 2; row < board.Rows; row++ {
		fillRow(a.Board(), row, board.Columns-1)
	}
	require.True(t, a.HardDrop())
	require.True(t, a.GameOver())

	assert.True(t, m.Over())
	assert.Same(t, b, m.Winner())

	b.Garbage().Receive(1)
	prepareTetris(b.Board())
	dropVerticalBar(t, b)
	m.Advance(0)
	assert.Zero(t, a.Garbage().Pending(), "a finished player receives nothing")
}

func TestMatchPause(t *testing.T) {
	m, a, b := newMatch(t)
	m.Advance(300 * time.Millisecond)

	m.TogglePause()
	require.True(t, m.Paused())
	assert.True(t, a.Paused())
	assert.True(t, b.Paused())
	m.Advance(time.Minute)

	m.TogglePause()
	assert.False(t, m.Paused())
	assert.Equal(t, 300*time.Millisecond, a.GravityElapsed())
	assert.Equal(t, 300*time.Millisecond, b.GravityElapsed())
}

func TestMatchUnderScheduler(t *testing.T) {
	m, a, b := newMatch(t)
	rowA, rowB := a.Active().Pivot().Row, b.Active().Pivot().Row

	scheduler := loop.NewScheduler()
	scheduler.Register(m)
	scheduler.Once(800 * time.Millisecond)

	assert.Equal(t, rowA+1, a.Active().Pivot().Row)
	assert.Equal(t, rowB+1, b.Active().Pivot().Row)
	assert.Equal(t, "Match", scheduler.GetStats().Systems[0].Name)
}

// garbageColor returns the color shared by every occupied cell of the row, or
// ColorNone when the row mixes colors.
func garbageColor(b *board.Board, row int) board.Color {
	color := board.ColorNone
	for col := range board.Columns {
		cell := b.Cell(row, col)
		if !cell.Occupied {
			continue
		}
		if color != board.ColorNone && cell.Color != color {
			return board.ColorNone
		}
		color = cell.Color
	}
	return color
}

func TestNewMatchLeavesCallerOptions(t *testing.T) {
	opts := make([]game.Option, 1, 4)
	opts[0] = game.WithLogger(zaptest.NewLogger(t))

	m := game.NewMatch(bag.New(1), opts...)
	a, _ := m.Players()
	assert.Equal(t, game.Versus, a.Mode())
	assert.Nil(t, opts[:cap(opts)][1], "spare capacity is not written")
}
