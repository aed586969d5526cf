// Package bag implements the shared 7-bag piece sequencer.
//
// All players read from one append-only sequence of shapes through their own
// cursor, so every player sees the same pieces in the same order regardless of
// how fast they play.
package bag

import (
	"math/rand/v2"

	"github.com/kamstrup/intmap"
	"github.com/plus3/stacker/piece"
)

// GroupSize is the number of shapes generated per refill.
const GroupSize = len(piece.Shapes)

// PlayerID identifies a cursor into the shared sequence.
type PlayerID int

// Sequencer generates shapes in shuffled groups of seven.
type Sequencer struct {
	rng        *rand.Rand
	queue      []piece.Shape
	cursors    *intmap.Map[PlayerID, int]
	nextPlayer PlayerID
	bagOff     bool
}

// New creates a sequencer seeded with seed and primed with one group.
func New(seed uint64) *Sequencer {
	s := &Sequencer{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		cursors: intmap.New[PlayerID, int](4),
	}
	s.refill()
	return s
}

// SetBagEnabled switches between shuffled groups and independent uniform draws.
// The change applies to groups generated afterwards.
func (s *Sequencer) SetBagEnabled(enabled bool) {
	s.bagOff = !enabled
}

// BagEnabled reports whether groups are generated as permutations.
func (s *Sequencer) BagEnabled() bool {
	return !s.bagOff
}

// AddPlayer registers a new cursor at the start of the sequence.
func (s *Sequencer) AddPlayer() PlayerID {
	id := s.nextPlayer
	s.nextPlayer++
	s.cursors.Put(id, 0)
	return id
}

// Next returns the shape under the player's cursor and advances it.
func (s *Sequencer) Next(id PlayerID) piece.Shape {
	pos, _ := s.cursors.Get(id)
	s.ensure(pos + 1)

	shape := s.queue[pos]
	s.cursors.Put(id, pos+1)
	s.replenish()
	return shape
}

// Peek returns the next n shapes for the player without consuming them.
func (s *Sequencer) Peek(id PlayerID, n int) []piece.Shape {
	if n <= 0 {
		return nil
	}
	pos, _ := s.cursors.Get(id)
	s.ensure(pos + n)

	out := make([]piece.Shape, n)
	copy(out, s.queue[pos:pos+n])
	return out
}

// Position returns how many shapes the player has consumed.
func (s *Sequencer) Position(id PlayerID) int {
	pos, _ := s.cursors.Get(id)
	return pos
}

// Len returns the length of the generated sequence.
func (s *Sequencer) Len() int {
	return len(s.queue)
}

// Reset discards the sequence and generates one fresh group. Call it before
// ResetPosition so every player opens on the same new bag.
func (s *Sequencer) Reset() {
	s.queue = s.queue[:0]
	s.refill()
}

// ResetPosition moves the player's cursor back to the start.
func (s *Sequencer) ResetPosition(id PlayerID) {
	s.cursors.Put(id, 0)
}

// replenish keeps at least one full group ahead of the farthest cursor.
func (s *Sequencer) replenish() {
	farthest := 0
	s.cursors.ForEach(func(_ PlayerID, pos int) bool {
		farthest = max(farthest, pos)
		return true
	})
	for len(s.queue)-farthest < GroupSize {
		s.refill()
	}
}

func (s *Sequencer) ensure(n int) {
	for len(s.queue) < n {
		s.refill()
	}
}

func (s *Sequencer) refill() {
	group := piece.Shapes
	if s.bagOff {
		for i := range group {
			group[i] = piece.Shapes[s.rng.IntN(GroupSize)]
		}
	} else {
		s.rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
	}
	s.queue = append(s.queue, group[:]...)
}
