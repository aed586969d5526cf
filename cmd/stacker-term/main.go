// Command stacker-term plays the game in a terminal: a single classic or
// sandbox board, or a two-player versus match on one keyboard.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/loop"
	"github.com/plus3/stacker/piece"
	"github.com/plus3/stacker/settings"
	"github.com/plus3/stacker/sound"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxFrame caps the time advanced in one frame after the process was stopped.
const maxFrame = 250 * time.Millisecond

// Game owns the screen and the sessions being played.
type Game struct {
	screen    tcell.Screen
	scheduler *loop.Scheduler
	players   []player
	restart   func()
	pause     func()
	sound     *sound.Speaker
	log       *zap.Logger
}

func main() {
	modeName := flag.String("mode", "classic", "Game mode: classic, sandbox or versus.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. A random seed is used when zero.")
	settingsPath := flag.String("settings", "stacker.settings", "Settings file, created with defaults when missing.")
	logPath := flag.String("log", filepath.Join(os.TempDir(), "stacker-term.log"), "Log file.")
	volume := flag.Float64("volume", 0.5, "Sound volume between 0 and 1. Zero disables sound.")
	logLevel := zap.LevelFlag("log-level", zapcore.InfoLevel, "Log level.")
	flag.Parse()

	mode, ok := game.ParseMode(*modeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *modeName)
		os.Exit(2)
	}

	// the terminal owns stdout, so logs go to a file
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*logLevel)
	cfg.OutputPaths = []string{*logPath}
	cfg.ErrorOutputPaths = []string{*logPath}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := settings.Load(*settingsPath)
	if err != nil {
		logger.Warn("settings reset to defaults", zap.String("path", *settingsPath), zap.Error(err))
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	g, err := NewGame(mode, *seed, s, *volume, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}

func NewGame(mode game.Mode, seed uint64, p settings.Provider, volume float64, logger *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:    screen,
		scheduler: loop.NewScheduler(),
		sound:     sound.NewSpeaker(volume),
		log:       logger,
	}
	if err := g.sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn("audio initialization failed", zap.Error(err))
	}

	seq := bag.New(seed)
	opts := []game.Option{
		game.WithLogger(logger),
		game.WithSound(g.sound),
		game.WithSettings(p),
		game.WithGarbageSeed(seed),
		game.WithLookahead(3),
	}

	if mode == game.Versus {
		match := game.NewMatch(seq, opts...)
		a, b := match.Players()
		g.players = []player{
			{title: "Left", session: a, keys: leftKeys},
			{title: "Right", session: b, keys: rightKeys},
		}
		g.restart = match.Restart
		g.pause = match.TogglePause
		g.scheduler.Register(match)
		match.Start()
	} else {
		session := game.NewSession(seq, append(opts, game.WithMode(mode))...)
		keys := soloKeys
		if mode == game.Sandbox {
			keys = sandboxKeys()
		}
		g.players = []player{{title: mode.String(), session: session, keys: keys}}
		g.restart = session.Restart
		g.pause = session.TogglePause
		g.scheduler.Register(session)
		session.Start()
	}

	logger.Info("game started", zap.Stringer("mode", mode), zap.Uint64("seed", seed))
	return g, nil
}

// sandboxKeys adds piece overrides on the number keys and an auto-fall toggle.
func sandboxKeys() map[binding]action {
	keys := make(map[binding]action, len(soloKeys)+len(piece.Shapes)+1)
	for b, act := range soloKeys {
		keys[b] = act
	}
	for i, shape := range piece.Shapes {
		keys[runeKey(rune('1'+i))] = func(s *game.Session) bool { return s.SpawnOverride(shape) }
	}
	keys[runeKey('f')] = func(s *game.Session) bool {
		s.SetAutoFall(!s.AutoFall())
		return true
	}
	return keys
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			g.scheduler.Once(min(now.Sub(last), maxFrame))
			last = now
			g.draw()
		}
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'p':
				g.pause()
				return true
			case 'r':
				g.restart()
				g.log.Info("restarted")
				return true
			}
		}
		dispatch(g.players, ev)

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) draw() {
	g.screen.Clear()
	for i, p := range g.players {
		drawSession(g.screen, 1+i*(fieldWidth+2), 0, p.title, p.session)
	}
	help := "p pause  r restart  esc quit"
	if len(g.players) == 1 && g.players[0].session.Mode() == game.Sandbox {
		help += "  1-7 spawn  f auto-fall"
	}
	drawText(g.screen, 1, 24, styleDim, help)
	g.screen.Show()
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}
