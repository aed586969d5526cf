// Package loop drives frame-stepped systems at a fixed interval and keeps
// per-system timing statistics for the debug overlay.
package loop

// System is anything advanced once per frame. Game sessions and matches
// implement it directly; overlays implement it to queue their drawing.
type System interface {
	Execute(frame *UpdateFrame)
}

// Named lets a system report its own name in the scheduler statistics.
// Systems without it are listed under their type name.
type Named interface {
	Name() string
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
