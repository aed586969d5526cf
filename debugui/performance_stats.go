package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/loop"
)

// PerformanceStats shows frame times and per-system latency from a scheduler.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	frames    *History
	systems   map[string]*History
	size      int
	timer     *FrameTimer
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		frames:    NewHistory(historyFrames),
		systems:   make(map[string]*History),
		size:      historyFrames,
		timer:     NewFrameTimer(clock.System{}),
	}
}

// Sample records the current frame. Render calls it; hosts without an
// overlay can call it directly to keep the history.
func (ps *PerformanceStats) Sample(delta time.Duration) {
	ps.frames.Push(float32(delta.Seconds() * 1000))
	for _, sys := range ps.scheduler.GetStats().Systems {
		h, ok := ps.systems[sys.Name]
		if !ok {
			h = NewHistory(ps.size)
			ps.systems[sys.Name] = h
		}
		h.Push(float32(sys.LastDuration.Seconds() * 1000))
	}
}

// AverageFrameTime returns the mean frame time in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	return ps.frames.Average()
}

func (ps *PerformanceStats) Render() {
	ps.Sample(ps.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 420), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()
	avg := ps.AverageFrameTime()
	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.frames.Ordered()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Latency") {
		names := make([]string, 0, len(ps.systems))
		for name := range ps.systems {
			names = append(names, name)
		}
		sort.Strings(names)

		if implot.BeginPlotV("##latency", imgui.NewVec2(-1, 180), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, name := range names {
				data := ps.systems[name].Ordered()
				implot.PlotLineFloatPtrInt(name, &data[0], int32(len(data)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	src           clock.Source
	lastFrameTime time.Time
}

func NewFrameTimer(src clock.Source) *FrameTimer {
	return &FrameTimer{
		src:           src,
		lastFrameTime: src.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() time.Duration {
	now := ft.src.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
