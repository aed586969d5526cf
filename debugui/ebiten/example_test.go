package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stacker/bag"
	"github.com/plus3/stacker/debugui"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/loop"
	"github.com/plus3/stacker/settings"
)

// sandbox runs one sandbox session with the overlay panels attached.
type sandbox struct {
	backend *debugui_ebiten.ImguiBackend
	frame   func()
}

func (s *sandbox) Update() error {
	s.backend.BeginFrame()
	s.frame()
	s.backend.EndFrame()
	return nil
}

func (s *sandbox) Draw(screen *ebiten.Image) {
	// playfield first, overlay last
	s.backend.Draw(screen)
}

func (s *sandbox) Layout(w, h int) (int, int) {
	s.backend.Layout(w, h)
	return w, h
}

func Example() {
	session := game.NewSession(bag.New(1), game.WithMode(game.Sandbox))
	session.Start()

	scheduler := loop.NewScheduler()
	overlay := &debugui.Overlay{}
	overlay.Add(
		debugui.NewSettingsPanel(settings.New(), "", session.Configure, nil).Render,
		debugui.NewSessionInspector("Sandbox", session).Render,
		debugui.NewPerformanceStats(scheduler, 120).Render,
	)
	scheduler.Register(session)
	scheduler.Register(overlay)

	s := &sandbox{
		backend: debugui_ebiten.NewImguiBackend("Sandbox", 960, 720),
		frame:   func() { scheduler.Once(time.Second / 60) },
	}
	if err := ebiten.RunGame(s); err != nil {
		panic(err)
	}
}
