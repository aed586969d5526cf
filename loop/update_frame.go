package loop

import "time"

type UpdateFrame struct {
	Tick     uint64
	Delta    time.Duration
	Commands *Commands
}

func newUpdateFrame(tick uint64, dt time.Duration) *UpdateFrame {
	return &UpdateFrame{
		Tick:     tick,
		Delta:    dt,
		Commands: newCommands(),
	}
}

// DeltaTime returns the frame delta in seconds.
func (f *UpdateFrame) DeltaTime() float64 {
	return f.Delta.Seconds()
}
