package main

import (
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/piece"
)

// Heuristic weights for placement scoring.
const (
	weightHeight = -0.51
	weightLines  = 0.76
	weightHoles  = -0.36
	weightBumps  = -0.18
)

// move is a planned placement: the number of clockwise turns and the pivot
// column to shift to before dropping.
type move struct {
	turns int
	col   int
	score float64
}

// Bot plays a session by evaluating every reachable rotation and column of the
// active piece and hard dropping onto the best one.
type Bot struct {
	Session *game.Session
	// Every is the number of frames between moves.
	Every  int
	frames int
	moves  int
}

// Execute is called once per frame.
func (b *Bot) Execute() {
	s := b.Session
	if !s.Started() || s.GameOver() || s.Paused() {
		return
	}
	b.frames++
	if b.frames < b.Every {
		return
	}
	b.frames = 0
	b.play()
}

func (b *Bot) play() {
	s := b.Session
	best, ok := plan(s.Board(), s.Active())
	if !ok {
		s.HardDrop()
		return
	}

	for range best.turns {
		if !s.Rotate(piece.Clockwise) {
			break
		}
	}
	for s.Active().Pivot().Col > best.col && s.MoveLeft() {
	}
	for s.Active().Pivot().Col < best.col && s.MoveRight() {
	}
	s.HardDrop()
	b.moves++
}

// plan searches every rotation and column for the best landing spot. It
// mirrors the session's rotation order so the chosen turns reproduce the same
// placement.
func plan(b *board.Board, active piece.Piece) (move, bool) {
	var (
		best  move
		found bool
	)
	p := active
	for turns := range 4 {
		if turns > 0 {
			rotated, ok := rotate(b, p)
			if !ok {
				break
			}
			p = rotated
		}

		left := p
		for next := left.Shifted(0, -1); next.Fits(b); next = next.Shifted(0, -1) {
			left = next
		}
		for cur := left; cur.Fits(b); cur = cur.Shifted(0, 1) {
			score := evaluate(b, drop(b, cur))
			if !found || score > best.score {
				best = move{turns: turns, col: cur.Pivot().Col, score: score}
				found = true
			}
		}
	}
	return best, found
}

func rotate(b *board.Board, p piece.Piece) (piece.Piece, bool) {
	for _, c := range p.Rotate(piece.Clockwise) {
		if c.Fits(b) {
			return p.Apply(c), true
		}
	}
	return p, false
}

func drop(b *board.Board, p piece.Piece) piece.Piece {
	for next := p.Shifted(1, 0); next.Fits(b); next = next.Shifted(1, 0) {
		p = next
	}
	return p
}

// evaluate scores the board that results from locking p.
func evaluate(b *board.Board, p piece.Piece) float64 {
	sim := *b
	for _, c := range p.Cells {
		sim.SetCell(c.Row, c.Col, true, p.Color)
	}
	lines := sim.ClearFullRows()

	var heights [board.Columns]int
	holes := 0
	for col := range board.Columns {
		seen := false
		for row := range board.Rows {
			if sim.IsOccupied(row, col) {
				if !seen {
					heights[col] = board.Rows - row
					seen = true
				}
			} else if seen {
				holes++
			}
		}
	}

	aggregate, bumps := 0, 0
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			bumps += abs(h - heights[col-1])
		}
	}

	return weightHeight*float64(aggregate) +
		weightLines*float64(lines) +
		weightHoles*float64(holes) +
		weightBumps*float64(bumps)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
