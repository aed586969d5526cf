// Package garbage implements the per-player garbage queue exchanged between
// competing sessions.
//
// Incoming lines wait in FIFO batches, each with its own countdown. Lines a
// player clears first cancel their own oldest pending batches; only the
// remainder is sent on. Expired batches move to the inbound accumulator, which
// the session dumps onto its board at the next lock that clears nothing.
package garbage

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/stacker/clock"
)

// Batch is a group of incoming lines waiting for its countdown to expire.
type Batch struct {
	Size  int
	Delay time.Duration
	timer *clock.Stopwatch
}

// Remaining returns how long until the batch expires.
func (b *Batch) Remaining() time.Duration {
	return max(b.Delay-b.timer.Elapsed(), 0)
}

func (b *Batch) expired() bool {
	return b.timer.Elapsed() >= b.Delay
}

// Queue holds one player's pending, inbound and outbound garbage.
type Queue struct {
	src        clock.Source
	rng        *rand.Rand
	batches    []*Batch
	inbound    int
	outbound   int
	delay      time.Duration
	repeatBias float64
	lastColumn int
	paused     bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithDelay sets the countdown given to new batches.
func WithDelay(d time.Duration) Option {
	return func(q *Queue) { q.delay = d }
}

// WithRepeatBias sets the probability of reusing the previous hole column.
func WithRepeatBias(p float64) Option {
	return func(q *Queue) { q.repeatBias = p }
}

// WithSeed seeds the hole column generator.
func WithSeed(seed uint64) Option {
	return func(q *Queue) { q.rng = rand.New(rand.NewPCG(seed, seed+1)) }
}

// NewQueue creates an empty queue whose timers read src.
func NewQueue(src clock.Source, opts ...Option) *Queue {
	q := &Queue{
		src:        src,
		delay:      time.Second,
		repeatBias: 0.7,
		lastColumn: -1,
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.rng == nil {
		q.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return q
}

// SetDelay changes the countdown for batches received from now on.
func (q *Queue) SetDelay(d time.Duration) {
	q.delay = d
}

// Delay returns the countdown new batches receive.
func (q *Queue) Delay() time.Duration {
	return q.delay
}

// SetRepeatBias changes the probability of reusing the previous hole column.
func (q *Queue) SetRepeatBias(p float64) {
	q.repeatBias = p
}

// Send cancels n lines against the pending batches, oldest first, and adds
// whatever is left to the outbound counter. It returns the uncancelled amount.
func (q *Queue) Send(n int) int {
	for n > 0 && len(q.batches) > 0 {
		front := q.batches[0]
		if n < front.Size {
			front.Size -= n
			return 0
		}
		n -= front.Size
		q.batches = q.batches[1:]
	}
	if n > 0 {
		q.outbound += n
	}
	return max(n, 0)
}

// Receive queues a batch of n lines with a fresh countdown.
func (q *Queue) Receive(n int) {
	if n <= 0 {
		return
	}
	b := &Batch{
		Size:  n,
		Delay: q.delay,
		timer: clock.NewStopwatch(q.src),
	}
	if !q.paused {
		b.timer.Start()
	}
	q.batches = append(q.batches, b)
}

// Tick moves the foremost batch to the inbound accumulator once its countdown
// has expired. It reports whether a batch was released.
func (q *Queue) Tick() bool {
	if q.paused || len(q.batches) == 0 {
		return false
	}
	front := q.batches[0]
	if !front.expired() {
		return false
	}
	q.inbound += front.Size
	q.batches = q.batches[1:]
	return true
}

// Inbound returns the number of released lines waiting to be dumped.
func (q *Queue) Inbound() int {
	return q.inbound
}

// TakeInbound returns and clears the released lines.
func (q *Queue) TakeInbound() int {
	n := q.inbound
	q.inbound = 0
	return n
}

// Outbound returns the lines waiting to be sent to the opponent.
func (q *Queue) Outbound() int {
	return q.outbound
}

// TakeOutbound returns and clears the lines waiting to be sent.
func (q *Queue) TakeOutbound() int {
	n := q.outbound
	q.outbound = 0
	return n
}

// Pending returns the total size of the batches still counting down.
func (q *Queue) Pending() int {
	total := 0
	for _, b := range q.batches {
		total += b.Size
	}
	return total
}

// Batches returns the pending batches, oldest first.
func (q *Queue) Batches() []*Batch {
	return q.batches
}

// Column picks the hole column for the next garbage row.
func (q *Queue) Column(width int) int {
	if q.lastColumn >= 0 && q.lastColumn < width && q.rng.Float64() < q.repeatBias {
		return q.lastColumn
	}
	q.lastColumn = q.rng.IntN(width)
	return q.lastColumn
}

// Pause freezes every batch countdown.
func (q *Queue) Pause() {
	if q.paused {
		return
	}
	q.paused = true
	for _, b := range q.batches {
		b.timer.Stop()
	}
}

// Resume continues every batch countdown from where it was frozen.
func (q *Queue) Resume() {
	if !q.paused {
		return
	}
	q.paused = false
	for _, b := range q.batches {
		b.timer.Start()
	}
}

// Paused reports whether the countdowns are frozen.
func (q *Queue) Paused() bool {
	return q.paused
}

// Reset drops all pending, inbound and outbound lines.
func (q *Queue) Reset() {
	q.batches = nil
	q.inbound = 0
	q.outbound = 0
	q.lastColumn = -1
}
