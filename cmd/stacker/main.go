// Command stacker plays the game in a window with the Dear ImGui developer
// overlay: live settings, a session inspector and performance stats.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/debugui"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/loop"
	"github.com/plus3/stacker/settings"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	FrameTime    = time.Second / 60
)

type Game struct {
	scheduler    *loop.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
	players      []controller
	titles       []string
}

func main() {
	modeName := flag.String("mode", "classic", "Game mode: classic, sandbox or versus.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. A random seed is used when zero.")
	settingsPath := flag.String("settings", "stacker.settings", "Settings file, created with defaults when missing.")
	volume := flag.Float64("volume", 0.5, "Sound volume between 0 and 1. Zero disables sound.")
	hideOverlay := flag.Bool("hide-overlay", false, "Start with the developer overlay hidden. F1 toggles it.")
	logLevel := zap.LevelFlag("log-level", zapcore.InfoLevel, "Log level.")
	flag.Parse()

	mode, ok := game.ParseMode(*modeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *modeName)
		os.Exit(2)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*logLevel)
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

	imguiBackend := debugui_ebiten.NewImguiBackend("Stacker", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	seq := bag.New(*seed)
	opts := []game.Option{
		game.WithLogger(logger),
		game.WithSound(NewAudio(*volume)),
		game.WithSettings(s),
		game.WithGarbageSeed(*seed),
	}

	scheduler := loop.NewScheduler()
	overlay := &debugui.Overlay{Hidden: *hideOverlay}
	input := &Input{overlay: overlay}
	g := &Game{scheduler: scheduler, imguiBackend: imguiBackend}

	var (
		sim       loop.System
		inspector *debugui.SessionInspector
		apply     func(settings.Provider)
	)
	if mode == game.Versus {
		match := game.NewMatch(seq, opts...)
		a, b := match.Players()
		g.players = []controller{{session: a, keys: leftKeys}, {session: b, keys: rightKeys}}
		g.titles = []string{"Left", "Right"}
		input.pause, input.restart = match.TogglePause, match.Restart
		inspector = debugui.NewSessionInspector("Match", a, b)
		inspector.Restart = match.Restart
		apply = func(p settings.Provider) {
			a.Configure(p)
			b.Configure(p)
		}
		sim = match
		match.Start()
	} else {
		session := game.NewSession(seq, append(opts, game.WithMode(mode))...)
		keys := soloKeys
		if mode == game.Sandbox {
			keys = sandboxKeys()
		}
		g.players = []controller{{session: session, keys: keys}}
		g.titles = []string{mode.String()}
		input.pause, input.restart = session.TogglePause, session.Restart
		inspector = debugui.NewSessionInspector("Session", session)
		apply = session.Configure
		sim = session
		session.Start()
	}
	input.controllers = g.players

	overlay.Add(
		debugui.NewSettingsPanel(s, *settingsPath, apply, logger).Render,
		inspector.Render,
		debugui.NewPerformanceStats(scheduler, 120).Render,
	)

	scheduler.Register(input)
	scheduler.Register(sim)
	scheduler.Register(overlay)

	logger.Info("game started", zap.Stringer("mode", mode), zap.Uint64("seed", *seed))
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	g.scheduler.Once(FrameTime)

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for i, p := range g.players {
		x := float32(ScreenWidth/2 - BoardWidth - 120 + i*(BoardWidth+240))
		if len(g.players) == 1 {
			x = float32(ScreenWidth/2 - BoardWidth/2)
		}
		drawSession(screen, x, 60, g.titles[i], p.session)
	}

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
