package game

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/loop"
	"go.uber.org/zap"
)

// Match pairs two versus sessions that share one piece sequence and trade
// garbage every frame.
type Match struct {
	id  uuid.UUID
	seq *bag.Sequencer
	a   *Session
	b   *Session
	log *zap.Logger
}

// NewMatch creates two versus sessions on seq. The options apply to both
// players; WithMode is overridden.
func NewMatch(seq *bag.Sequencer, opts ...Option) *Match {
	m := &Match{id: uuid.New(), seq: seq, log: zap.NewNop()}

	probe := &Session{}
	for _, opt := range opts {
		opt(probe)
	}
	if probe.log != nil {
		m.log = probe.log
	}
	m.log = m.log.With(zap.Stringer("match", m.id))

	opts = append(slices.Clone(opts), WithMode(Versus))
	optsA := append(opts[:len(opts):len(opts)], WithLogger(m.log.Named("a")))
	optsB := append(opts[:len(opts):len(opts)], WithLogger(m.log.Named("b")))
	if probe.garbageSeed != nil {
		// distinct hole columns per board
		optsB = append(optsB, WithGarbageSeed(*probe.garbageSeed+1))
	}
	m.a = NewSession(seq, optsA...)
	m.b = NewSession(seq, optsB...)
	return m
}

func (m *Match) ID() uuid.UUID { return m.id }

// Players returns both sessions, first player first.
func (m *Match) Players() (*Session, *Session) {
	return m.a, m.b
}

// Start starts both sessions.
func (m *Match) Start() {
	m.a.Start()
	m.b.Start()
	m.log.Info("match started")
}

// Restart resets the shared sequence and restarts both players so they see
// the same opening bag.
func (m *Match) Restart() {
	m.seq.Reset()
	m.a.Restart()
	m.b.Restart()
	m.log.Info("match restarted")
}

// Advance steps both sessions by dt and then exchanges the garbage each sent
// this frame. Both outbound counters are read before either side receives.
func (m *Match) Advance(dt time.Duration) {
	m.a.AdvanceTime(dt)
	m.b.AdvanceTime(dt)
	m.exchange()
}

// Execute lets a match run under a loop.Scheduler.
func (m *Match) Execute(frame *loop.UpdateFrame) {
	m.Advance(frame.Delta)
}

func (m *Match) Name() string { return "Match" }

func (m *Match) exchange() {
	toB := m.a.garbage.TakeOutbound()
	toA := m.b.garbage.TakeOutbound()
	if toB > 0 && !m.b.GameOver() {
		m.b.garbage.Receive(toB)
		m.log.Debug("garbage sent", zap.String("to", "b"), zap.Int("lines", toB))
	}
	if toA > 0 && !m.a.GameOver() {
		m.a.garbage.Receive(toA)
		m.log.Debug("garbage sent", zap.String("to", "a"), zap.Int("lines", toA))
	}
}

// Pause pauses both players.
func (m *Match) Pause() {
	m.a.Pause()
	m.b.Pause()
}

// Resume resumes both players.
func (m *Match) Resume() {
	m.a.Resume()
	m.b.Resume()
}

// TogglePause flips both players together.
func (m *Match) TogglePause() {
	if m.Paused() {
		m.Resume()
		return
	}
	m.Pause()
}

func (m *Match) Paused() bool {
	return m.a.Paused() || m.b.Paused()
}

// Over reports whether either player has topped out.
func (m *Match) Over() bool {
	return m.a.GameOver() || m.b.GameOver()
}

// Winner returns the surviving player once the match is over, or nil while it
// is running or when both topped out.
func (m *Match) Winner() *Session {
	switch {
	case m.a.GameOver() && !m.b.GameOver():
		return m.b
	case m.b.GameOver() && !m.a.GameOver():
		return m.a
	}
	return nil
}
