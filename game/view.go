package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/garbage"
	"github.com/plus3/stacker/piece"
)

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) Mode() Mode             { return s.mode }
func (s *Session) Board() *board.Board    { return s.board }
func (s *Session) Active() piece.Piece    { return s.active }
func (s *Session) State() State           { return s.state }
func (s *Session) Started() bool          { return s.started }
func (s *Session) Paused() bool           { return s.paused }
func (s *Session) GameOver() bool         { return s.state == GameOver }
func (s *Session) Score() int             { return s.score }
func (s *Session) Lines() int             { return s.lines }
func (s *Session) Level() int             { return s.level }
func (s *Session) Combo() int             { return s.combo }
func (s *Session) BackToBack() bool       { return s.backToBack }
func (s *Session) PiecesLocked() int      { return s.locked }
func (s *Session) LastClear() ClearResult { return s.last }
func (s *Session) Garbage() *garbage.Queue {
	return s.garbage
}

// Held returns the held piece, if any.
func (s *Session) Held() (piece.Piece, bool) {
	if s.held == nil {
		return piece.Piece{}, false
	}
	return *s.held, true
}

// HoldAvailable reports whether Hold would currently succeed.
func (s *Session) HoldAvailable() bool {
	return s.acceptsInput() && s.holdEnabled && !s.holdUsed
}

// Next returns the upcoming shapes without consuming them.
func (s *Session) Next() []piece.Shape {
	if s.lookahead <= 0 {
		return nil
	}
	next := s.seq.Peek(s.player, s.lookahead)
	if s.override != nil {
		next = append([]piece.Shape{*s.override}, next[:len(next)-1]...)
	}
	return next
}

// GravityInterval returns the time between forced drops at the current level.
func (s *Session) GravityInterval() time.Duration {
	return GravityInterval(s.level)
}

func (s *Session) GravityElapsed() time.Duration { return s.gravity.Elapsed() }
func (s *Session) LockElapsed() time.Duration    { return s.lock.Elapsed() }
func (s *Session) MaxLockElapsed() time.Duration { return s.maxLock.Elapsed() }
func (s *Session) Grounded() bool                { return s.grounded }
func (s *Session) AutoFall() bool                { return s.autoFall }

// Ghost returns where the active piece would land on a hard drop.
func (s *Session) Ghost() piece.Piece {
	ghost := s.active
	for next := ghost.Shifted(1, 0); next.Fits(s.board); next = next.Shifted(1, 0) {
		ghost = next
	}
	return ghost
}

// Render draws the visible playfield into sink: locked cells, then the ghost
// when enabled, then the active piece.
func (s *Session) Render(sink RenderSink) {
	var (
		colors [board.VisibleRows][board.Columns]board.Color
		flags  [board.VisibleRows][board.Columns]CellFlags
	)
	for r := range board.VisibleRows {
		for c := range board.Columns {
			cell := s.board.Cell(r+board.HiddenRows, c)
			if cell.Occupied {
				colors[r][c], flags[r][c] = cell.Color, CellLocked
			} else {
				flags[r][c] = CellEmpty
			}
		}
	}

	overlay := func(p piece.Piece, f CellFlags) {
		for _, pt := range p.Cells {
			r := pt.Row - board.HiddenRows
			if r < 0 || r >= board.VisibleRows || pt.Col < 0 || pt.Col >= board.Columns {
				continue
			}
			colors[r][pt.Col], flags[r][pt.Col] = p.Color, f
		}
	}
	if s.started && s.state != GameOver {
		if s.ghostEnabled {
			overlay(s.Ghost(), CellGhost)
		}
		overlay(s.active, CellActive)
	}

	for r := range board.VisibleRows {
		for c := range board.Columns {
			sink.DrawCell(r, c, colors[r][c], flags[r][c])
		}
	}
}
