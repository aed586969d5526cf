// Package game implements the per-player rules engine and the two-player match.
//
// A Session owns one board and drives its active piece through
// spawn, fall, lock and clear. The host advances it once per frame with
// AdvanceTime and forwards player input through the command methods; every
// call completes immediately and no goroutines are started.
package game

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/board"
	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/garbage"
	"github.com/plus3/stacker/loop"
	"github.com/plus3/stacker/piece"
	"github.com/plus3/stacker/settings"
	"go.uber.org/zap"
)

// Session is one player's game.
type Session struct {
	id    uuid.UUID
	log   *zap.Logger
	mode  Mode
	sound SoundTrigger

	seq    *bag.Sequencer
	player bag.PlayerID
	board  *board.Board

	active   piece.Piece
	held     *piece.Piece
	holdUsed bool
	override *piece.Shape
	lastSpin bool
	grounded bool

	src     *clock.Manual
	timers  clock.Group
	gravity *clock.Stopwatch
	lock    *clock.Stopwatch
	maxLock *clock.Stopwatch
	garbage *garbage.Queue

	state   State
	started bool
	paused  bool

	score      int
	lines      int
	level      int
	combo      int
	backToBack bool
	locked     int
	last       ClearResult

	provider     settings.Provider
	garbageSeed  *uint64
	lookahead    int
	startLevel   int
	lockDelay    time.Duration
	maxLockDelay time.Duration
	holdEnabled  bool
	ghostEnabled bool
	kicksEnabled bool
	autoFall     bool
	multiplier   float64
}

// Option configures a Session.
type Option func(*Session)

// WithMode selects the rule set.
func WithMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithSound sets the sound cue receiver.
func WithSound(t SoundTrigger) Option {
	return func(s *Session) { s.sound = t }
}

// WithSettings sets the provider applied at construction.
func WithSettings(p settings.Provider) Option {
	return func(s *Session) { s.provider = p }
}

// WithGarbageSeed seeds the garbage hole column generator.
func WithGarbageSeed(seed uint64) Option {
	return func(s *Session) { s.garbageSeed = &seed }
}

// WithLookahead sets how many upcoming shapes Next reports.
func WithLookahead(n int) Option {
	return func(s *Session) { s.lookahead = n }
}

// NewSession creates a session reading shapes from seq. The session registers
// its own cursor with the sequencer.
func NewSession(seq *bag.Sequencer, opts ...Option) *Session {
	s := &Session{
		id:        uuid.New(),
		log:       zap.NewNop(),
		sound:     silent,
		seq:       seq,
		board:     board.New(),
		src:       clock.NewManual(time.Unix(0, 0)),
		lookahead: 5,
		autoFall:  true,
		provider:  settings.Defaults(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(zap.Stringer("session", s.id), zap.Stringer("mode", s.mode))
	s.player = seq.AddPlayer()

	s.gravity = clock.NewStopwatch(s.src)
	s.lock = clock.NewStopwatch(s.src)
	s.maxLock = clock.NewStopwatch(s.src)
	s.timers.Add(s.gravity, s.lock, s.maxLock)

	var qopts []garbage.Option
	if s.garbageSeed != nil {
		qopts = append(qopts, garbage.WithSeed(*s.garbageSeed))
	}
	s.garbage = garbage.NewQueue(s.src, qopts...)

	s.Configure(s.provider)
	return s
}

// Start spawns the first piece. Calling Start again has no effect.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.log.Info("session started")
	s.spawn(s.nextShape())
}

// Restart clears the board and scoring and starts over with a fresh piece
// sequence. A versus session leaves the shared sequencer to its Match, which
// resets it once for both players.
func (s *Session) Restart() {
	s.timers.Resume()
	s.garbage.Resume()
	s.gravity.Reset()
	s.lock.Reset()
	s.maxLock.Reset()
	s.garbage.Reset()

	s.board.Reset()
	if s.mode != Versus {
		s.seq.Reset()
	}
	s.seq.ResetPosition(s.player)
	s.held = nil
	s.holdUsed = false
	s.override = nil
	s.paused = false
	s.score, s.lines, s.combo, s.locked = 0, 0, 0, 0
	s.backToBack = false
	s.last = ClearResult{}
	s.level = s.startLevel

	s.started = false
	s.Start()
}

// Execute advances the session by the frame delta so a solo session can be
// registered with a loop.Scheduler.
func (s *Session) Execute(frame *loop.UpdateFrame) {
	s.AdvanceTime(frame.Delta)
}

// AdvanceTime moves the session clock forward by dt and runs the timers.
// While paused or over only the clock moves.
func (s *Session) AdvanceTime(dt time.Duration) {
	s.src.Advance(dt)
	if !s.started || s.paused || s.state == GameOver {
		return
	}

	if s.garbage.Tick() {
		s.log.Debug("garbage released", zap.Int("inbound", s.garbage.Inbound()))
	}

	if interval := s.GravityInterval(); s.autoFall && s.gravity.Elapsed() >= interval {
		// keep the overshoot so the drop rate is not rounded up to the frame time
		over := (s.gravity.Elapsed() - interval) % interval
		s.gravity.Restart()
		s.gravity.Credit(over)
		s.fall()
	}

	s.updateGrounded()
	if s.grounded && (s.lock.Elapsed() >= s.lockDelay || s.maxLock.Elapsed() >= s.maxLockDelay) {
		s.lockPiece()
	}
}

// MoveLeft shifts the active piece one column left.
func (s *Session) MoveLeft() bool {
	return s.translate(0, -1)
}

// MoveRight shifts the active piece one column right.
func (s *Session) MoveRight() bool {
	return s.translate(0, 1)
}

// SoftDrop moves the active piece one row down and scores a point.
func (s *Session) SoftDrop() bool {
	if !s.translate(1, 0) {
		return false
	}
	s.score++
	return true
}

// HardDrop drops the active piece as far as it goes and locks it at once.
func (s *Session) HardDrop() bool {
	if !s.acceptsInput() {
		return false
	}
	dist := 0
	for next := s.active.Shifted(1, 0); next.Fits(s.board); next = next.Shifted(1, 0) {
		s.active = next
		dist++
	}
	if dist > 0 {
		s.lastSpin = false
	}
	s.score += 2 * dist
	s.lockPiece()
	return true
}

// Rotate turns the active piece, trying wall kicks in order when enabled.
// A failed rotation leaves the piece untouched.
func (s *Session) Rotate(dir piece.Direction) bool {
	if !s.acceptsInput() {
		return false
	}
	candidates := s.active.Rotate(dir)
	if !s.kicksEnabled {
		candidates = candidates[:1]
	}
	for _, c := range candidates {
		if !c.Fits(s.board) {
			continue
		}
		s.active = s.active.Apply(c)
		s.lastSpin = true
		s.afterAction(CueRotate)
		return true
	}
	return false
}

// Hold swaps the active piece with the held one, or stores it and draws the
// next shape when nothing is held. It is allowed once per lock.
func (s *Session) Hold() bool {
	if !s.acceptsInput() || !s.holdEnabled || s.holdUsed {
		return false
	}
	var next piece.Shape
	if s.held != nil {
		next = s.held.Shape
	} else {
		next = s.nextShape()
	}
	held := piece.New(s.active.Shape)
	s.held = &held
	s.holdUsed = true
	s.sound.Trigger(CueHold)
	s.spawn(next)
	return true
}

// SpawnOverride replaces the active piece with a fresh piece of shape. Before
// Start it chooses the first shape instead.
func (s *Session) SpawnOverride(shape piece.Shape) bool {
	if !shape.Valid() || s.state == GameOver {
		return false
	}
	if !s.started {
		s.override = &shape
		return true
	}
	if s.paused {
		return false
	}
	s.spawn(shape)
	return true
}

// Pause freezes gravity, lock and garbage timers.
func (s *Session) Pause() {
	if !s.started || s.paused || s.state == GameOver {
		return
	}
	s.paused = true
	s.timers.Pause()
	s.garbage.Pause()
	s.log.Info("paused")
}

// Resume continues every timer from where Pause froze it.
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.timers.Resume()
	s.garbage.Resume()
	s.log.Info("resumed")
}

// TogglePause flips between paused and running.
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
		return
	}
	s.Pause()
}

func (s *Session) acceptsInput() bool {
	return s.started && !s.paused && s.state != GameOver
}

func (s *Session) nextShape() piece.Shape {
	if s.override != nil {
		shape := *s.override
		s.override = nil
		return shape
	}
	return s.seq.Next(s.player)
}

func (s *Session) spawn(shape piece.Shape) {
	s.state = Spawning
	s.active = piece.New(shape)
	s.lastSpin = false
	s.grounded = false
	s.lock.Reset()
	s.maxLock.Reset()

	if !s.active.Fits(s.board) {
		s.die("spawn blocked")
		return
	}

	s.log.Debug("spawn", zap.Stringer("shape", shape))
	s.state = Falling
	s.gravity.Restart()
	s.updateGrounded()
}

func (s *Session) translate(dRow, dCol int) bool {
	if !s.acceptsInput() {
		return false
	}
	moved := s.active.Shifted(dRow, dCol)
	if !moved.Fits(s.board) {
		return false
	}
	s.active = moved
	s.lastSpin = false
	s.afterAction(CueMove)
	return true
}

// fall is the gravity step. It never resets the lock timer.
func (s *Session) fall() {
	moved := s.active.Shifted(1, 0)
	if !moved.Fits(s.board) {
		return
	}
	s.active = moved
	s.lastSpin = false
}

func (s *Session) afterAction(cue Cue) {
	if s.grounded {
		s.lock.Restart()
	}
	s.sound.Trigger(cue)
	s.updateGrounded()
}

// updateGrounded tracks whether the piece rests on something. The max-lock
// timer starts on the first grounding of a piece and only a lock resets it.
func (s *Session) updateGrounded() {
	if s.active.Shifted(1, 0).Fits(s.board) {
		if s.grounded {
			s.grounded = false
			s.lock.Reset()
		}
		s.state = Falling
		return
	}
	if !s.grounded {
		s.grounded = true
		s.lock.Restart()
		if !s.maxLock.Running() && s.maxLock.Elapsed() == 0 {
			s.maxLock.Restart()
		}
	}
	s.state = Locking
}

func (s *Session) lockPiece() {
	s.state = Clearing
	for _, c := range s.active.Cells {
		s.board.SetCell(c.Row, c.Col, true, s.active.Color)
	}
	s.locked++
	s.holdUsed = false
	s.grounded = false
	s.lock.Reset()
	s.maxLock.Reset()
	s.sound.Trigger(CueLock)

	tspin := s.detectTSpin()
	lines := s.board.ClearFullRows()
	s.last = s.scoreClear(lines, tspin)

	if lines > 0 {
		s.sound.Trigger(CueClear)
		s.log.Debug("clear",
			zap.String("kind", s.last.Name()),
			zap.Int("points", s.last.Points),
			zap.Int("combo", s.combo),
			zap.Bool("b2b", s.last.BackToBack),
			zap.Int("sent", s.last.Sent),
		)
	} else if s.garbage.Inbound() > 0 {
		if !s.dumpGarbage() {
			return
		}
	}

	if s.mode == Classic {
		if level := s.levelFor(s.lines); level > s.level {
			s.level = level
			s.sound.Trigger(CueSpeedUp)
			s.log.Debug("speed up", zap.Int("level", level), zap.Duration("interval", s.GravityInterval()))
		}
	}

	s.spawn(s.nextShape())
}

func (s *Session) scoreClear(lines int, tspin bool) ClearResult {
	r := ClearResult{Lines: lines, Kind: kindOf(lines), TSpin: tspin}
	r.Points = Points(lines, tspin) * s.level

	if lines == 0 {
		s.combo = 0
		s.score += r.Points
		return r
	}

	eligible := eligibleForBackToBack(lines, tspin)
	r.BackToBack = eligible && s.backToBack
	s.backToBack = eligible

	s.combo++
	r.Combo = s.combo
	r.AllClear = s.board.IsBottomRowEmpty()

	attack := Attack(lines, tspin) + ComboBonus(s.combo)
	if r.BackToBack {
		r.Points = r.Points * 3 / 2
		attack++
	}
	r.Points += comboPoints * (s.combo - 1) * s.level
	if r.AllClear {
		r.Points += allClearPoints
		attack += allClearAttack
	}

	r.Attack = int(math.Round(float64(attack) * s.multiplier))
	if r.Attack > 0 {
		r.Sent = s.garbage.Send(r.Attack)
	}

	s.score += r.Points
	s.lines += lines
	return r
}

// detectTSpin checks the pivot's four diagonal neighbours on the board with
// the piece already placed. Off-board counts as filled.
func (s *Session) detectTSpin() bool {
	if s.active.Shape != piece.T || !s.lastSpin {
		return false
	}
	p := s.active.Pivot()
	filled := 0
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		if s.board.Blocked(p.Row+d[0], p.Col+d[1]) {
			filled++
		}
	}
	return filled >= 3
}

// dumpGarbage applies the released lines. It reports false when the push
// overflowed the board and ended the game.
func (s *Session) dumpGarbage() bool {
	n := s.garbage.TakeInbound()
	overflow := s.board.InsertGarbageRows(n, func() int {
		return s.garbage.Column(s.board.Columns())
	})
	s.sound.Trigger(CueGarbageDump)
	s.log.Debug("garbage dumped", zap.Int("rows", n))
	if overflow {
		s.die("garbage overflow")
		return false
	}
	return true
}

func (s *Session) die(reason string) {
	s.state = GameOver
	s.gravity.Stop()
	s.lock.Stop()
	s.maxLock.Stop()
	s.garbage.Pause()
	s.sound.Trigger(CueDeath)
	s.log.Info("game over",
		zap.String("reason", reason),
		zap.Int("score", s.score),
		zap.Int("lines", s.lines),
		zap.Int("pieces", s.locked),
	)
}

func (s *Session) levelFor(lines int) int {
	if s.mode != Classic {
		return s.startLevel
	}
	return s.startLevel + lines/10
}
