package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/game"
	"github.com/plus3/stacker/piece"
)

// SessionInspector shows the live state of one or more sessions and offers
// the sandbox controls: pause, restart, auto-fall and piece overrides.
type SessionInspector struct {
	Title    string
	Sessions []*game.Session

	// Restart replaces the per-session restart, e.g. to reset a match's
	// shared sequence first.
	Restart func()
}

func NewSessionInspector(title string, sessions ...*game.Session) *SessionInspector {
	return &SessionInspector{Title: title, Sessions: sessions}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 400), imgui.CondOnce)
	if !imgui.BeginV(si.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Restart") {
		if si.Restart != nil {
			si.Restart()
		} else {
			for _, s := range si.Sessions {
				s.Restart()
			}
		}
	}

	for i, s := range si.Sessions {
		label := fmt.Sprintf("Player %d (%s)##%d", i+1, s.Mode(), i)
		if !imgui.TreeNodeStr(label) {
			continue
		}
		si.renderSession(i, s)
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SessionInspector) renderSession(i int, s *game.Session) {
	if s.GameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else if s.Paused() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	}

	imgui.Text(fmt.Sprintf("ID: %s", s.ID()))
	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", s.Score(), s.Lines(), s.Level()))
	imgui.Text(fmt.Sprintf("Combo: %d  Back-to-back: %v", s.Combo(), s.BackToBack()))
	if last := s.LastClear(); last.Lines > 0 || last.TSpin {
		imgui.Text(fmt.Sprintf("Last clear: %s (+%d, sent %d)", last.Name(), last.Points, last.Sent))
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Active: %s rot %d at %v", s.Active().Shape, s.Active().Rotation, s.Active().Pivot()))
	if held, ok := s.Held(); ok {
		imgui.Text(fmt.Sprintf("Held: %s", held.Shape))
	}
	imgui.Text(fmt.Sprintf("Next: %v", s.Next()))

	imgui.Separator()
	interval := s.GravityInterval()
	progress := float32(0)
	if interval > 0 {
		progress = float32(min(s.GravityElapsed().Seconds()/interval.Seconds(), 1))
	}
	imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("gravity %s / %s", s.GravityElapsed().Round(time.Millisecond), interval))
	imgui.Text(fmt.Sprintf("Lock: %s  Max lock: %s", s.LockElapsed().Round(time.Millisecond), s.MaxLockElapsed().Round(time.Millisecond)))

	g := s.Garbage()
	imgui.Text(fmt.Sprintf("Garbage pending: %d  inbound: %d  outbound: %d", g.Pending(), g.Inbound(), g.Outbound()))
	for _, b := range g.Batches() {
		imgui.BulletText(fmt.Sprintf("%d lines in %s", b.Size, b.Remaining().Round(time.Millisecond)))
	}

	imgui.Separator()
	label := "Pause"
	if s.Paused() {
		label = "Resume"
	}
	if imgui.Button(fmt.Sprintf("%s##pause%d", label, i)) {
		s.TogglePause()
	}
	imgui.SameLine()
	fall := s.AutoFall()
	if imgui.Checkbox(fmt.Sprintf("Auto fall##%d", i), &fall) {
		s.SetAutoFall(fall)
	}

	imgui.Text("Spawn:")
	for _, shape := range piece.Shapes {
		imgui.SameLine()
		if imgui.Button(fmt.Sprintf("%s##spawn%d", shape, i)) {
			s.SpawnOverride(shape)
		}
	}
}
