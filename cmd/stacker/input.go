package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stacker/debugui"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/loop"
	"github.com/plus3/stacker/piece"
)

// Auto-repeat timing for held movement keys, in ticks.
const (
	repeatDelay    = 10
	repeatInterval = 2
)

type action func(s *game.Session) bool

type keyBinding struct {
	key    ebiten.Key
	act    action
	repeat bool
}

func rotate(dir piece.Direction) action {
	return func(s *game.Session) bool { return s.Rotate(dir) }
}

var soloKeys = []keyBinding{
	{key: ebiten.KeyArrowLeft, act: (*game.Session).MoveLeft, repeat: true},
	{key: ebiten.KeyArrowRight, act: (*game.Session).MoveRight, repeat: true},
	{key: ebiten.KeyArrowDown, act: (*game.Session).SoftDrop, repeat: true},
	{key: ebiten.KeyArrowUp, act: rotate(piece.Clockwise)},
	{key: ebiten.KeyX, act: rotate(piece.Clockwise)},
	{key: ebiten.KeyZ, act: rotate(piece.CounterClockwise)},
	{key: ebiten.KeySpace, act: (*game.Session).HardDrop},
	{key: ebiten.KeyC, act: (*game.Session).Hold},
	{key: ebiten.KeyShiftLeft, act: (*game.Session).Hold},
}

var leftKeys = []keyBinding{
	{key: ebiten.KeyA, act: (*game.Session).MoveLeft, repeat: true},
	{key: ebiten.KeyD, act: (*game.Session).MoveRight, repeat: true},
	{key: ebiten.KeyS, act: (*game.Session).SoftDrop, repeat: true},
	{key: ebiten.KeyW, act: rotate(piece.Clockwise)},
	{key: ebiten.KeyQ, act: rotate(piece.CounterClockwise)},
	{key: ebiten.KeySpace, act: (*game.Session).HardDrop},
	{key: ebiten.KeyShiftLeft, act: (*game.Session).Hold},
}

var rightKeys = []keyBinding{
	{key: ebiten.KeyArrowLeft, act: (*game.Session).MoveLeft, repeat: true},
	{key: ebiten.KeyArrowRight, act: (*game.Session).MoveRight, repeat: true},
	{key: ebiten.KeyArrowDown, act: (*game.Session).SoftDrop, repeat: true},
	{key: ebiten.KeyArrowUp, act: rotate(piece.Clockwise)},
	{key: ebiten.KeyControlRight, act: rotate(piece.CounterClockwise)},
	{key: ebiten.KeyEnter, act: (*game.Session).HardDrop},
	{key: ebiten.KeyShiftRight, act: (*game.Session).Hold},
}

// sandboxKeys adds piece overrides on the number keys and an auto-fall toggle.
func sandboxKeys() []keyBinding {
	keys := append([]keyBinding(nil), soloKeys...)
	for i, shape := range piece.Shapes {
		keys = append(keys, keyBinding{
			key: ebiten.KeyDigit1 + ebiten.Key(i),
			act: func(s *game.Session) bool { return s.SpawnOverride(shape) },
		})
	}
	return append(keys, keyBinding{
		key: ebiten.KeyF,
		act: func(s *game.Session) bool {
			s.SetAutoFall(!s.AutoFall())
			return true
		},
	})
}

// triggered reports whether a binding fires this tick: on the press, and
// then every repeatInterval ticks once held past repeatDelay.
func triggered(duration int, repeat bool) bool {
	if duration == 1 {
		return true
	}
	return repeat && duration > repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

type controller struct {
	session *game.Session
	keys    []keyBinding
}

// Input is the loop.System that forwards keyboard state to the sessions.
// It stands down while the overlay wants the keyboard.
type Input struct {
	controllers []controller
	overlay     *debugui.Overlay
	pause       func()
	restart     func()
}

func (in *Input) Execute(frame *loop.UpdateFrame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		in.overlay.Toggle()
	}
	if !in.overlay.Hidden && in.overlay.InputState.WantCaptureKeyboard {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.pause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.restart()
	}
	for _, c := range in.controllers {
		for _, b := range c.keys {
			if triggered(inpututil.KeyPressDuration(b.key), b.repeat) {
				b.act(c.session)
			}
		}
	}
}
