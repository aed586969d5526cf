package clock

import "time"

// Stopwatch accumulates running time across any number of stop/start cycles.
type Stopwatch struct {
	src     Source
	started time.Time
	acc     time.Duration
	running bool
}

// NewStopwatch creates a stopped stopwatch with zero elapsed time.
func NewStopwatch(src Source) *Stopwatch {
	return &Stopwatch{src: src}
}

// Start resumes accumulation. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = s.src.Now()
	s.running = true
}

// Stop freezes the elapsed time. Stopping a stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.acc += s.src.Now().Sub(s.started)
	s.running = false
}

// Reset zeroes the elapsed time and stops the stopwatch.
func (s *Stopwatch) Reset() {
	s.acc = 0
	s.running = false
}

// Restart zeroes the elapsed time and starts the stopwatch.
func (s *Stopwatch) Restart() {
	s.acc = 0
	s.started = s.src.Now()
	s.running = true
}

// Credit adds d to the elapsed time without touching the running state.
func (s *Stopwatch) Credit(d time.Duration) {
	s.acc += d
}

// Elapsed returns the accumulated running time.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.acc
	}
	return s.acc + s.src.Now().Sub(s.started)
}

// Running reports whether the stopwatch is accumulating.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Group pauses and resumes a set of stopwatches together.
// Only the members that were running at Pause are restarted by Resume.
type Group struct {
	members []*Stopwatch
	held    []*Stopwatch
	paused  bool
}

// Add registers stopwatches with the group.
func (g *Group) Add(watches ...*Stopwatch) {
	g.members = append(g.members, watches...)
}

// Remove unregisters a stopwatch. It is also dropped from the held set.
func (g *Group) Remove(w *Stopwatch) {
	for i, m := range g.members {
		if m == w {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	for i, m := range g.held {
		if m == w {
			g.held = append(g.held[:i], g.held[i+1:]...)
			break
		}
	}
}

// Pause stops every running member.
func (g *Group) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.held = g.held[:0]
	for _, w := range g.members {
		if w.Running() {
			w.Stop()
			g.held = append(g.held, w)
		}
	}
}

// Resume restarts the members stopped by the last Pause.
func (g *Group) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	for _, w := range g.held {
		w.Start()
	}
	g.held = g.held[:0]
}

// Paused reports whether the group is currently paused.
func (g *Group) Paused() bool {
	return g.paused
}
