package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newSession(t *testing.T, opts ...game.Option) *game.Session {
	t.Helper()
	s := game.NewSession(bag.New(1), append(opts, game.WithLogger(zaptest.NewLogger(t)))...)
	s.Start()
	return s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func leftmost(s *game.Session) int {
	col := s.Active().Cells[0].Col
	for _, pt := range s.Active().Cells {
		col = min(col, pt.Col)
	}
	return col
}

func TestDispatchSolo(t *testing.T) {
	s := newSession(t)
	players := []player{{session: s, keys: soloKeys}}

	col := leftmost(s)
	assert.True(t, dispatch(players, key(tcell.KeyLeft)))
	assert.Equal(t, col-1, leftmost(s))

	assert.True(t, dispatch(players, char('c')))
	_, held := s.Held()
	assert.True(t, held)

	assert.False(t, dispatch(players, char('m')))
}

func TestDispatchVersus(t *testing.T) {
	match := game.NewMatch(bag.New(1), game.WithLogger(zaptest.NewLogger(t)))
	match.Start()
	a, b := match.Players()
	players := []player{
		{session: a, keys: leftKeys},
		{session: b, keys: rightKeys},
	}

	colA, colB := leftmost(a), leftmost(b)
	dispatch(players, char('a'))
	assert.Equal(t, colA-1, leftmost(a))
	assert.Equal(t, colB, leftmost(b))

	dispatch(players, key(tcell.KeyRight))
	assert.Equal(t, colA-1, leftmost(a))
	assert.Equal(t, colB+1, leftmost(b))

	dispatch(players, key(tcell.KeyEnter))
	assert.Equal(t, 1, b.PiecesLocked())
	assert.Equal(t, 0, a.PiecesLocked())
}

func TestSandboxKeys(t *testing.T) {
	s := newSession(t, game.WithMode(game.Sandbox))
	players := []player{{session: s, keys: sandboxKeys()}}

	require.True(t, dispatch(players, char('3')))
	assert.Equal(t, piece.T, s.Active().Shape)

	require.True(t, dispatch(players, char('f')))
	assert.False(t, s.AutoFall())
	require.True(t, dispatch(players, char('f')))
	assert.True(t, s.AutoFall())

	// overrides are sandbox only
	_, ok := soloKeys[runeKey('3')]
	assert.False(t, ok)
}

func TestDrawSession(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 30)

	s := newSession(t)
	drawSession(screen, 0, 0, "solo", s)
	screen.Show()

	content := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	text := func(x, y, n int) string {
		out := make([]rune, n)
		for i := range out {
			out[i] = content(x+i, y)
		}
		return string(out)
	}

	assert.Equal(t, "solo", text(0, 0, 4))
	assert.Equal(t, '┌', content(0, 1))
	assert.Equal(t, '┘', content(boardWidth-1, 1+board.VisibleRows+1))
	assert.Equal(t, '·', content(2, 1+board.VisibleRows))
	assert.Equal(t, "Score   0", text(boardWidth+2, 1, 9))

	// a locked cell is drawn as a colored block
	s.Board().SetCell(board.Rows-1, 0, true, board.ColorRed)
	drawSession(screen, 0, 0, "solo", s)
	screen.Show()
	_, _, style, _ := screen.GetContent(1, 1+board.VisibleRows)
	_, bg, _ := style.Decompose()
	assert.Equal(t, palette[board.ColorRed], bg)
}
