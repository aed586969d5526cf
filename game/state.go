package game

// Mode selects the rule set a session plays under.
type Mode int

const (
	// Classic is solo play; gravity speeds up with cleared lines.
	Classic Mode = iota
	// Sandbox is practice play with a fixed gravity level.
	Sandbox
	// Versus is one side of a two-player match.
	Versus
)

func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Sandbox:
		return "sandbox"
	case Versus:
		return "versus"
	}
	return "unknown"
}

// ParseMode maps a mode name to its value.
func ParseMode(name string) (Mode, bool) {
	for _, m := range []Mode{Classic, Sandbox, Versus} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// State is the phase of the active piece's life cycle.
type State int

const (
	Spawning State = iota
	Falling
	Locking
	Clearing
	GameOver
)

func (s State) String() string {
	switch s {
	case Spawning:
		return "spawning"
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	case Clearing:
		return "clearing"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
