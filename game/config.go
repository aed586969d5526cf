package game

import (
	"time"

	"github.com/plus3/stacker/settings"
	"go.uber.org/zap"
)

// Configure applies every value from p. Settings screens call it after each
// change so edits take effect on the running session.
func (s *Session) Configure(p settings.Provider) {
	v := p.Values()
	s.provider = p
	s.SetGravityLevel(v.StartingLevel)
	s.SetLockDelay(v.LockDelay)
	s.SetMaxLockDelay(v.MaxLockDelay)
	s.SetHoldEnabled(v.HoldEnabled)
	s.SetGhostEnabled(v.GhostEnabled)
	s.SetBagEnabled(v.BagEnabled)
	s.SetKicksEnabled(v.KicksEnabled)
	s.SetGarbageDelay(v.GarbageDelay)
	s.SetGarbageMultiplier(v.GarbageMultiplier)
	s.SetGarbageRepeatBias(v.GarbageRepeatBias)
	s.log.Debug("configured",
		zap.Int("level", v.StartingLevel),
		zap.Duration("lockDelay", v.LockDelay),
		zap.Duration("maxLockDelay", v.MaxLockDelay),
		zap.Duration("garbageDelay", v.GarbageDelay),
		zap.Float64("garbageMultiplier", v.GarbageMultiplier),
	)
}

// SetGravityLevel sets the starting level. The current level is raised or
// lowered to match, keeping any levels already earned in classic mode.
func (s *Session) SetGravityLevel(level int) {
	level = max(level, 1)
	s.startLevel = level
	s.level = s.levelFor(s.lines)
}

func (s *Session) SetLockDelay(d time.Duration) {
	s.lockDelay = d
}

func (s *Session) SetMaxLockDelay(d time.Duration) {
	s.maxLockDelay = d
}

// SetHoldEnabled turns the hold slot on or off. Disabling it keeps the
// currently held piece for when it is turned back on.
func (s *Session) SetHoldEnabled(enabled bool) {
	s.holdEnabled = enabled
}

func (s *Session) SetGhostEnabled(enabled bool) {
	s.ghostEnabled = enabled
}

// SetKicksEnabled limits rotation to the unkicked placement when disabled.
func (s *Session) SetKicksEnabled(enabled bool) {
	s.kicksEnabled = enabled
}

// SetAutoFall turns gravity on or off. Sandbox hosts use it to let the
// player place pieces by hand.
func (s *Session) SetAutoFall(enabled bool) {
	s.autoFall = enabled
	if enabled {
		s.gravity.Restart()
	}
}

// SetGarbageDelay sets the countdown for batches received from now on.
func (s *Session) SetGarbageDelay(d time.Duration) {
	s.garbage.SetDelay(d)
}

func (s *Session) SetGarbageMultiplier(m float64) {
	s.multiplier = max(m, 0)
}

func (s *Session) SetGarbageRepeatBias(p float64) {
	s.garbage.SetRepeatBias(p)
}

// SetBagEnabled switches the shared sequencer between bag and uniform draws.
// In a match the change applies to both players.
func (s *Session) SetBagEnabled(enabled bool) {
	s.seq.SetBagEnabled(enabled)
}
