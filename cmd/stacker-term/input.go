package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/piece"
)

// action is a session command bound to a key.
type action func(s *game.Session) bool

type binding struct {
	key tcell.Key
	r   rune
}

func runeKey(r rune) binding         { return binding{key: tcell.KeyRune, r: r} }
func specialKey(k tcell.Key) binding { return binding{key: k} }

func bindingOf(ev *tcell.EventKey) binding {
	if ev.Key() == tcell.KeyRune {
		return runeKey(ev.Rune())
	}
	return specialKey(ev.Key())
}

func rotate(dir piece.Direction) action {
	return func(s *game.Session) bool { return s.Rotate(dir) }
}

var (
	moveLeft  action = (*game.Session).MoveLeft
	moveRight action = (*game.Session).MoveRight
	softDrop  action = (*game.Session).SoftDrop
	hardDrop  action = (*game.Session).HardDrop
	hold      action = (*game.Session).Hold
)

// soloKeys drives a single session.
var soloKeys = map[binding]action{
	specialKey(tcell.KeyLeft):  moveLeft,
	specialKey(tcell.KeyRight): moveRight,
	specialKey(tcell.KeyDown):  softDrop,
	specialKey(tcell.KeyUp):    rotate(piece.Clockwise),
	runeKey('x'):               rotate(piece.Clockwise),
	runeKey('z'):               rotate(piece.CounterClockwise),
	runeKey(' '):               hardDrop,
	runeKey('c'):               hold,
}

// leftKeys and rightKeys split the keyboard between the two versus players.
var leftKeys = map[binding]action{
	runeKey('a'): moveLeft,
	runeKey('d'): moveRight,
	runeKey('s'): softDrop,
	runeKey('w'): rotate(piece.Clockwise),
	runeKey('q'): rotate(piece.CounterClockwise),
	runeKey(' '): hardDrop,
	runeKey('e'): hold,
}

var rightKeys = map[binding]action{
	specialKey(tcell.KeyLeft):  moveLeft,
	specialKey(tcell.KeyRight): moveRight,
	specialKey(tcell.KeyDown):  softDrop,
	specialKey(tcell.KeyUp):    rotate(piece.Clockwise),
	runeKey(','):               rotate(piece.CounterClockwise),
	specialKey(tcell.KeyEnter): hardDrop,
	runeKey('.'):               hold,
}

// player pairs a session with the keys that control it.
type player struct {
	title   string
	session *game.Session
	keys    map[binding]action
}

// dispatch runs the action bound to ev on the first player that binds it.
func dispatch(players []player, ev *tcell.EventKey) bool {
	b := bindingOf(ev)
	for _, p := range players {
		if act, ok := p.keys[b]; ok {
			act(p.session)
			return true
		}
	}
	return false
}
