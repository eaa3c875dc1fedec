package reload

import "unsafe"

// Status is what one frame of the module asks the host to do next.
type Status int

const (
	StatusContinue Status = iota
	StatusQuit
	StatusReload
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusQuit:
		return "quit"
	case StatusReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Module is the set of entry points the host drives. E is the environment
// the host owns and lends to the module every call; it must live in a
// package both sides link against unchanged.
type Module[E any] struct {
	// Init builds the state record for a cold start.
	Init func(env *E) unsafe.Pointer
	// PreReload detaches the state record from the outgoing code.
	PreReload func() unsafe.Pointer
	// PostReload adopts a record detached by the previous generation.
	PostReload func(state unsafe.Pointer, env *E)
	// Update runs one frame.
	Update func(env *E) Status
	// Shutdown releases resources on exit.
	Shutdown func()
}

func (m *Module[E]) complete() bool {
	return m != nil && m.Init != nil && m.PreReload != nil &&
		m.PostReload != nil && m.Update != nil && m.Shutdown != nil
}

// Loader produces a module. Every call to Load yields the newest code
// available.
type Loader[E any] interface {
	Load() (*Module[E], error)
}

// Static is a Loader for code linked into the host binary. Reloading it
// still runs the detach and adopt steps against the same code.
type Static[E any] struct {
	Module Module[E]
}

func (s *Static[E]) Load() (*Module[E], error) {
	m := s.Module
	if !m.complete() {
		return nil, ErrIncomplete
	}
	return &m, nil
}
