// Package ebiten hosts the developer overlay inside the windowed game.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
)

// ImguiBackend draws the settings, inspector and performance panels over the
// playfield. Call BeginFrame before the scheduler runs the overlay system and
// EndFrame after, then Draw once the boards are drawn.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window, with the plot context
// the performance panel needs and no imgui.ini persistence.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	implot.CreateContext()
	return &ImguiBackend{EbitenBackend: backend}
}
