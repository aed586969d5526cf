package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/stacker/clock"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// entry is a registered system and its running timings.
type entry struct {
	system System
	name   string
	runs   int64
	min    time.Duration
	max    time.Duration
	total  time.Duration
	last   time.Duration
}

func (e *entry) record(d time.Duration) {
	if e.runs == 0 || d < e.min {
		e.min = d
	}
	e.max = max(e.max, d)
	e.total += d
	e.last = d
	e.runs++
}

func (e *entry) stats() SystemStats {
	st := SystemStats{
		Name:           e.name,
		ExecutionCount: e.runs,
		MinDuration:    e.min,
		MaxDuration:    e.max,
		LastDuration:   e.last,
		TotalDuration:  e.total,
	}
	if e.runs > 0 {
		st.AvgDuration = e.total / time.Duration(e.runs)
	}
	return st
}

// Scheduler executes systems in registration order once per frame.
type Scheduler struct {
	entries []*entry
	frames  uint64
	src     clock.Source
}

// NewScheduler creates an empty scheduler that times systems on the wall
// clock.
func NewScheduler() *Scheduler {
	return &Scheduler{src: clock.System{}}
}

// Register appends a system. Systems run in the order they were registered.
func (s *Scheduler) Register(system System) {
	s.entries = append(s.entries, &entry{system: system, name: systemName(system)})
}

func systemName(system System) string {
	if n, ok := system.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// Once executes all registered systems once with the given delta time, then
// flushes the commands they deferred.
func (s *Scheduler) Once(dt time.Duration) {
	s.frames++
	frame := newUpdateFrame(s.frames, dt)

	for _, e := range s.entries {
		start := s.src.Now()
		e.system.Execute(frame)
		e.record(s.src.Now().Sub(start))
	}

	frame.Commands.Flush()
}

// Run steps the systems on a ticker, passing the measured time between ticks,
// until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last))
			last = now
		}
	}
}

// GetStats returns a snapshot of the execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.entries),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.entries)),
	}
	for i, e := range s.entries {
		stats.Systems[i] = e.stats()
		stats.TotalExecutions += e.runs
	}
	return stats
}
