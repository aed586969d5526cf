package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/settings"
	"go.uber.org/zap"
)

// SettingsPanel edits the option selectors. Every change is applied to the
// running game and saved when a path is set.
type SettingsPanel struct {
	settings *settings.Settings
	path     string
	apply    func(settings.Provider)
	log      *zap.Logger
	lastErr  error
}

func NewSettingsPanel(s *settings.Settings, path string, apply func(settings.Provider), log *zap.Logger) *SettingsPanel {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsPanel{settings: s, path: path, apply: apply, log: log}
}

// Step moves the selector for k by delta choices, wrapping at either end.
func (p *SettingsPanel) Step(k settings.Key, delta int) error {
	count := p.settings.Count(k)
	if count == 0 {
		return fmt.Errorf("%w: unknown key %d", settings.ErrOutOfRange, int(k))
	}
	idx := ((p.settings.Index(k)+delta)%count + count) % count
	if err := p.settings.Set(k, idx); err != nil {
		return err
	}
	return p.commit(zap.Stringer("key", k), zap.String("value", p.settings.Label(k, idx)))
}

// Reset restores every selector to its default.
func (p *SettingsPanel) Reset() error {
	p.settings.ResetDefaults()
	return p.commit(zap.Bool("defaults", true))
}

func (p *SettingsPanel) commit(fields ...zap.Field) error {
	if p.apply != nil {
		p.apply(p.settings)
	}
	p.log.Debug("setting changed", fields...)
	if p.path == "" {
		return nil
	}
	if err := p.settings.Save(p.path); err != nil {
		p.log.Warn("failed to save settings", zap.String("path", p.path), zap.Error(err))
		return err
	}
	return nil
}

func (p *SettingsPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 330), imgui.CondOnce)
	if !imgui.BeginV("Settings", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("SettingsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Option")
		imgui.TableSetupColumn("Value")
		imgui.TableSetupColumn("")
		imgui.TableHeadersRow()

		for _, k := range settings.Keys() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(k.String())
			imgui.TableNextColumn()
			imgui.Text(p.settings.Label(k, p.settings.Index(k)))
			imgui.TableNextColumn()
			if imgui.Button(fmt.Sprintf("-##%d", k)) {
				p.lastErr = p.Step(k, -1)
			}
			imgui.SameLine()
			if imgui.Button(fmt.Sprintf("+##%d", k)) {
				p.lastErr = p.Step(k, 1)
			}
		}
		imgui.EndTable()
	}

	if imgui.Button("Reset to defaults") {
		p.lastErr = p.Reset()
	}
	if p.lastErr != nil {
		imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.4, 1.0), p.lastErr.Error())
	}

	imgui.End()
}
