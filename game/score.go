package game

import (
	"fmt"
	"time"
)

// ClearKind classifies a lock by the number of rows it cleared.
type ClearKind int

const (
	ClearNone ClearKind = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearTetris
)

var clearNames = [...]string{"none", "single", "double", "triple", "tetris"}

func (k ClearKind) String() string {
	if k >= 0 && int(k) < len(clearNames) {
		return clearNames[k]
	}
	return "unknown"
}

func kindOf(lines int) ClearKind {
	return ClearKind(min(max(lines, 0), int(ClearTetris)))
}

// ClearResult describes the outcome of one lock.
type ClearResult struct {
	Lines      int
	Kind       ClearKind
	TSpin      bool
	BackToBack bool
	Combo      int
	AllClear   bool
	Points     int
	// Attack is the garbage generated before cancellation; Sent is what was
	// left for the opponent after cancelling pending batches.
	Attack int
	Sent   int
}

// Name returns the conventional name of the clear, e.g. "T-spin double".
func (r ClearResult) Name() string {
	if r.TSpin {
		if r.Kind == ClearNone {
			return "T-spin"
		}
		return fmt.Sprintf("T-spin %s", r.Kind)
	}
	return r.Kind.String()
}

const (
	allClearPoints = 3000
	allClearAttack = 10
	comboPoints    = 50
)

var (
	linePoints  = [...]int{0, 100, 300, 500, 800}
	spinPoints  = [...]int{400, 800, 1200, 1600, 1600}
	lineAttack  = [...]int{0, 0, 1, 2, 4}
	spinAttack  = [...]int{0, 2, 4, 6, 6}
	gravityStep = [...]time.Duration{
		800 * time.Millisecond,
		720 * time.Millisecond,
		630 * time.Millisecond,
		550 * time.Millisecond,
		470 * time.Millisecond,
		380 * time.Millisecond,
		300 * time.Millisecond,
		220 * time.Millisecond,
		130 * time.Millisecond,
		100 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond,
		70 * time.Millisecond,
		70 * time.Millisecond,
		70 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
		50 * time.Millisecond,
		30 * time.Millisecond,
	}
)

// Points returns the base score of a clear before level, back-to-back and
// combo adjustments.
func Points(lines int, tspin bool) int {
	k := kindOf(lines)
	if tspin {
		return spinPoints[k]
	}
	return linePoints[k]
}

// Attack returns the garbage lines a clear sends before bonuses.
func Attack(lines int, tspin bool) int {
	k := kindOf(lines)
	if tspin {
		return spinAttack[k]
	}
	return lineAttack[k]
}

// ComboBonus returns the extra garbage for the given combo counter. The
// counter is incremented before the lookup, so the first bonus line arrives
// on the third consecutive clear.
func ComboBonus(combo int) int {
	switch {
	case combo > 11:
		return 5
	case combo > 8:
		return 4
	case combo > 6:
		return 3
	case combo > 4:
		return 2
	case combo > 2:
		return 1
	}
	return 0
}

// GravityInterval returns the time between forced drops at a level.
func GravityInterval(level int) time.Duration {
	i := min(max(level-1, 0), len(gravityStep)-1)
	return gravityStep[i]
}

// eligibleForBackToBack reports whether a clear counts as a difficult clear.
func eligibleForBackToBack(lines int, tspin bool) bool {
	return lines > 0 && (lines >= 4 || tspin)
}
