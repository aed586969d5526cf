// Package settings holds the tunable game options.
//
// Every option is a selector: an index into a fixed list of choices. The
// persisted form is the list of indices, one integer per line, in Key order.
// Anything that does not decode cleanly falls back to the defaults.
package settings

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOutOfRange is returned when a selector index has no matching choice.
	ErrOutOfRange = errors.New("settings: selector index out of range")
	// ErrMalformed is returned when persisted data cannot be decoded.
	ErrMalformed = errors.New("settings: malformed data")
)

// Key names a selector.
type Key int

const (
	StartingLevel Key = iota
	LockDelay
	MaxLockDelay
	Hold
	Ghost
	BagRandomizer
	KickTable
	GarbageTimer
	GarbageMultiplier
	GarbageRepeatBias

	keyCount
)

var (
	levelChoices      = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	lockChoices       = []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond, 400 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond, time.Second}
	maxLockChoices    = []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 5 * time.Second, 10 * time.Second}
	toggleChoices     = []bool{false, true}
	garbageChoices    = []time.Duration{0, 500 * time.Millisecond, time.Second, 2 * time.Second, 3 * time.Second, 5 * time.Second}
	multiplierChoices = []float64{0.5, 1, 1.5, 2}
	biasChoices       = []float64{0, 0.3, 0.5, 0.7, 0.9, 1}
)

type selector struct {
	name   string
	count  int
	def    int
	labels func(i int) string
}

var selectors = [keyCount]selector{
	StartingLevel:     {"starting level", len(levelChoices), 0, func(i int) string { return fmt.Sprint(levelChoices[i]) }},
	LockDelay:         {"lock delay", len(lockChoices), 4, func(i int) string { return lockChoices[i].String() }},
	MaxLockDelay:      {"max lock delay", len(maxLockChoices), 2, func(i int) string { return maxLockChoices[i].String() }},
	Hold:              {"hold", len(toggleChoices), 1, toggleLabel},
	Ghost:             {"ghost piece", len(toggleChoices), 1, toggleLabel},
	BagRandomizer:     {"bag randomizer", len(toggleChoices), 1, toggleLabel},
	KickTable:         {"kick table", len(toggleChoices), 1, toggleLabel},
	GarbageTimer:      {"garbage timer", len(garbageChoices), 2, func(i int) string { return garbageChoices[i].String() }},
	GarbageMultiplier: {"garbage multiplier", len(multiplierChoices), 1, func(i int) string { return fmt.Sprintf("x%g", multiplierChoices[i]) }},
	GarbageRepeatBias: {"garbage repeat bias", len(biasChoices), 3, func(i int) string { return fmt.Sprintf("%g%%", biasChoices[i]*100) }},
}

func toggleLabel(i int) string {
	if toggleChoices[i] {
		return "on"
	}
	return "off"
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return selectors[k].name
}

// Keys lists every selector in persisted order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Values are the concrete option values a session applies.
type Values struct {
	StartingLevel     int
	LockDelay         time.Duration
	MaxLockDelay      time.Duration
	HoldEnabled       bool
	GhostEnabled      bool
	BagEnabled        bool
	KicksEnabled      bool
	GarbageDelay      time.Duration
	GarbageMultiplier float64
	GarbageRepeatBias float64
}

// Provider exposes the current option values.
type Provider interface {
	Values() Values
}

// Values implements Provider so a fixed set of values can be passed directly.
func (v Values) Values() Values {
	return v
}

// Defaults returns the values of a fresh Settings.
func Defaults() Values {
	return New().Values()
}

// Settings is the selector state for every option.
type Settings struct {
	index [keyCount]int
}

// New creates settings with every selector at its default.
func New() *Settings {
	s := &Settings{}
	s.ResetDefaults()
	return s
}

// ResetDefaults moves every selector back to its default.
func (s *Settings) ResetDefaults() {
	for k, sel := range selectors {
		s.index[k] = sel.def
	}
}

// Index returns the selected choice for k.
func (s *Settings) Index(k Key) int {
	if k < 0 || k >= keyCount {
		return 0
	}
	return s.index[k]
}

// Count returns the number of choices for k.
func (s *Settings) Count(k Key) int {
	if k < 0 || k >= keyCount {
		return 0
	}
	return selectors[k].count
}

// Label returns the display text of choice i for k.
func (s *Settings) Label(k Key, i int) string {
	if k < 0 || k >= keyCount || i < 0 || i >= selectors[k].count {
		return ""
	}
	return selectors[k].labels(i)
}

// Set selects choice idx for k. An index without a matching choice selects
// the default and returns ErrOutOfRange.
func (s *Settings) Set(k Key, idx int) error {
	if k < 0 || k >= keyCount {
		return fmt.Errorf("%w: unknown key %d", ErrOutOfRange, int(k))
	}
	sel := selectors[k]
	if idx < 0 || idx >= sel.count {
		s.index[k] = sel.def
		return fmt.Errorf("%w: %s index %d not in [0,%d)", ErrOutOfRange, sel.name, idx, sel.count)
	}
	s.index[k] = idx
	return nil
}

// Values resolves every selector to its concrete value.
func (s *Settings) Values() Values {
	return Values{
		StartingLevel:     levelChoices[s.index[StartingLevel]],
		LockDelay:         lockChoices[s.index[LockDelay]],
		MaxLockDelay:      maxLockChoices[s.index[MaxLockDelay]],
		HoldEnabled:       toggleChoices[s.index[Hold]],
		GhostEnabled:      toggleChoices[s.index[Ghost]],
		BagEnabled:        toggleChoices[s.index[BagRandomizer]],
		KicksEnabled:      toggleChoices[s.index[KickTable]],
		GarbageDelay:      garbageChoices[s.index[GarbageTimer]],
		GarbageMultiplier: multiplierChoices[s.index[GarbageMultiplier]],
		GarbageRepeatBias: biasChoices[s.index[GarbageRepeatBias]],
	}
}
