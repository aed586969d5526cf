package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/stacker/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	Elapsed      time.Duration
	LastTick     uint64
}

func (s *countingSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	s.Elapsed += frame.Delta
	s.LastTick = frame.Tick
}

type namedSystem struct{}

func (namedSystem) Execute(*loop.UpdateFrame) {}

func (namedSystem) Name() string { return "player-1" }

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var order []string
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "a") }))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "b") }))

		scheduler.Once(time.Millisecond)
		scheduler.Once(time.Millisecond)

		assert.Equal(t, []string{"a", "b", "a", "b"}, order)
	})

	t.Run("delta and tick reach every system", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(16 * time.Millisecond)
		scheduler.Once(17 * time.Millisecond)

		assert.Equal(t, 2, counter.ExecuteCount)
		assert.Equal(t, 33*time.Millisecond, counter.Elapsed)
		assert.Equal(t, uint64(2), counter.LastTick)
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var order []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
			order = append(order, "first")
		}))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "second") }))

		scheduler.Once(time.Millisecond)

		assert.Equal(t, []string{"first", "second", "deferred"}, order)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotZero(t, counter.ExecuteCount, "expected system to execute at least once")
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(namedSystem{})
	scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { time.Sleep(time.Millisecond) }))

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 3)
	assert.Zero(t, stats.Systems[0].MinDuration, "no executions reports zero min")

	for range 5 {
		scheduler.Once(time.Millisecond)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, int64(15), stats.TotalExecutions)
	assert.Equal(t, uint64(5), stats.Frames)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "player-1", stats.Systems[1].Name)

	sleeper := stats.Systems[2]
	assert.Equal(t, int64(5), sleeper.ExecutionCount)
	assert.GreaterOrEqual(t, sleeper.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, sleeper.MaxDuration, sleeper.MinDuration)
	assert.GreaterOrEqual(t, sleeper.TotalDuration, 5*time.Millisecond)
}
