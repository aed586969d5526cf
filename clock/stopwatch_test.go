package clock_test

import (
	"testing"
	"time"

	"github.com/plus3/stacker/clock"
	"github.com/stretchr/testify/assert"
)

func newSource() *clock.Manual {
	return clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestStopwatch(t *testing.T) {
	t.Run("starts stopped at zero", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		src.Advance(time.Second)
		assert.False(t, w.Running())
		assert.Equal(t, time.Duration(0), w.Elapsed())
	})

	t.Run("accumulates across stop and start", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		w.Start()
		src.Advance(300 * time.Millisecond)
		w.Stop()
		src.Advance(10 * time.Second)
		assert.Equal(t, 300*time.Millisecond, w.Elapsed())

		w.Start()
		src.Advance(200 * time.Millisecond)
		assert.Equal(t, 500*time.Millisecond, w.Elapsed())
	})

	t.Run("double start does not reset the origin", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		w.Start()
		src.Advance(time.Second)
		w.Start()
		src.Advance(time.Second)
		assert.Equal(t, 2*time.Second, w.Elapsed())
	})

	t.Run("credit adds to elapsed", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		w.Restart()
		w.Credit(5 * time.Millisecond)
		src.Advance(10 * time.Millisecond)
		assert.Equal(t, 15*time.Millisecond, w.Elapsed())
		assert.True(t, w.Running())
	})

	t.Run("restart and reset", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		w.Start()
		src.Advance(time.Second)
		w.Restart()
		assert.Equal(t, time.Duration(0), w.Elapsed())
		assert.True(t, w.Running())

		src.Advance(time.Second)
		w.Reset()
		assert.Equal(t, time.Duration(0), w.Elapsed())
		assert.False(t, w.Running())
	})
}

func TestManualIgnoresNegativeAdvance(t *testing.T) {
	src := newSource()
	start := src.Now()

	src.Advance(-time.Second)
	assert.Equal(t, start, src.Now())
}

func TestGroup(t *testing.T) {
	t.Run("pause freezes only running members", func(t *testing.T) {
		src := newSource()
		running := clock.NewStopwatch(src)
		idle := clock.NewStopwatch(src)

		var g clock.Group
		g.Add(running, idle)

		running.Start()
		src.Advance(300 * time.Millisecond)

		g.Pause()
		assert.True(t, g.Paused())
		src.Advance(10 * time.Second)
		assert.Equal(t, 300*time.Millisecond, running.Elapsed())

		g.Resume()
		assert.True(t, running.Running())
		assert.False(t, idle.Running())

		src.Advance(100 * time.Millisecond)
		assert.Equal(t, 400*time.Millisecond, running.Elapsed())
		assert.Equal(t, time.Duration(0), idle.Elapsed())
	})

	t.Run("pause and resume are idempotent", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		var g clock.Group
		g.Add(w)
		w.Start()

		g.Pause()
		g.Pause()
		g.Resume()
		g.Resume()
		assert.True(t, w.Running())
	})

	t.Run("removed members are not resumed", func(t *testing.T) {
		src := newSource()
		w := clock.NewStopwatch(src)

		var g clock.Group
		g.Add(w)
		w.Start()

		g.Pause()
		g.Remove(w)
		g.Resume()
		assert.False(t, w.Running())
	})
}
