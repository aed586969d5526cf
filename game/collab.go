package game

import "github.com/plus3/stacker/board"

// Cue identifies a sound effect the host may play.
type Cue int

const (
	CueMove Cue = iota
	CueRotate
	CueLock
	CueClear
	CueSpeedUp
	CueGarbageDump
	CueDeath
	CueHold
)

var cueNames = [...]string{"move", "rotate", "lock", "clear", "speed-up", "garbage-dump", "death", "hold"}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// SoundTrigger receives sound cues. Implementations must not block.
type SoundTrigger interface {
	Trigger(cue Cue)
}

// SoundFunc adapts a function to SoundTrigger.
type SoundFunc func(cue Cue)

func (f SoundFunc) Trigger(cue Cue) { f(cue) }

var silent = SoundFunc(func(Cue) {})

// CellFlags describe what a drawn cell represents.
type CellFlags uint8

const (
	CellEmpty CellFlags = 1 << iota
	CellLocked
	CellGhost
	CellActive
)

// RenderSink draws one cell of the visible playfield. Row 0 is the top
// visible row; the hidden spawn rows are never drawn.
type RenderSink interface {
	DrawCell(row, col int, color board.Color, flags CellFlags)
}

// RenderFunc adapts a function to RenderSink.
type RenderFunc func(row, col int, color board.Color, flags CellFlags)

func (f RenderFunc) DrawCell(row, col int, color board.Color, flags CellFlags) {
	f(row, col, color, flags)
}
