// Package debugui provides the Dear ImGui developer overlay: live settings,
// a session inspector and scheduler performance stats.
//
// Panels are plain values holding a Render function. The Overlay system
// collects them each frame and defers their rendering until every game system
// has run, so the panels always show the state the frame ended with.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Hosts check it before forwarding keys to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the loop.System that renders every registered item.
type Overlay struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Add registers render functions.
func (o *Overlay) Add(render ...func()) {
	for _, r := range render {
		o.Items = append(o.Items, ImguiItem{Render: r})
	}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() {
	o.Hidden = !o.Hidden
}

// Execute updates input state and queues all ImGui render functions for execution.
func (o *Overlay) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	o.InputState.WantCaptureMouse = io.WantCaptureMouse()
	o.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if o.Hidden {
		return
	}
	for _, item := range o.Items {
		frame.Commands.Defer(item.Render)
	}
}
