package loop_test

import (
	"fmt"
	"time"

	"github.com/plus3/stacker/loop"
)

// ExampleScheduler runs two systems for two frames. Systems execute in
// registration order and deferred commands run after the last system of the
// frame, so the report sees the state the frame ended with.
func ExampleScheduler() {
	var elapsed time.Duration

	scheduler := loop.NewScheduler()
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			fmt.Printf("frame %d: %v\n", frame.Tick, elapsed)
		})
	}))
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		elapsed += frame.Delta
	}))

	scheduler.Once(500 * time.Millisecond)
	scheduler.Once(500 * time.Millisecond)

	stats := scheduler.GetStats()
	fmt.Println(stats.Frames, stats.SystemCount)
	// Output:
	// frame 1: 500ms
	// frame 2: 1s
	// 2 2
}
