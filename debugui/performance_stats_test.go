package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/debugui"
	"github.com/plus3/stacker/loop"
	"github.com/stretchr/testify/assert"
)

func TestFrameTimer(t *testing.T) {
	src := clock.NewManual(time.Unix(0, 0))
	ft := debugui.NewFrameTimer(src)

	src.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, ft.GetDeltaTime())
	assert.Zero(t, ft.GetDeltaTime())

	src.Advance(time.Second)
	assert.Equal(t, time.Second, ft.GetDeltaTime())
}

func TestPerformanceStatsSample(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) {}))
	scheduler.Once(time.Second / 60)

	ps := debugui.NewPerformanceStats(scheduler, 4)
	ps.Sample(10 * time.Millisecond)
	ps.Sample(20 * time.Millisecond)
	assert.InDelta(t, 15, ps.AverageFrameTime(), 0.001)
}
