package core

import "fmt"

// State tags a Signal with its position in the pass lifecycle.
type State uint8

const (
	// StateStart marks the beginning of a pass. Stateful stages reset on it.
	StateStart State = iota
	// StateProduced carries a value that survived the stage.
	StateProduced
	// StateSuppressed means the element yields no output at this stage.
	StateSuppressed
	// StateStop halts the enumeration; no further elements are visited.
	StateStop
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateProduced:
		return "produced"
	case StateSuppressed:
		return "suppressed"
	case StateStop:
		return "stop"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Signal is the value passed between pipeline stages. It exists in exactly
// one of four states:
//   - Start: a pass begins (IsStart() returns true)
//   - Produced: a value flows downstream (IsProduced() returns true)
//   - Suppressed: the element was dropped by a stage (IsSuppressed() returns true)
//   - Stop: the whole pipeline must halt (IsStop() returns true)
//
// Signal replaces early returns and panics as the control channel between
// stages: a stage communicates filtering and short-circuiting only through
// the Signal it returns.
type Signal[T any] struct {
	value T
	state State
}

// Start creates the signal sent once at the beginning of every pass.
func Start[T any]() Signal[T] {
	return Signal[T]{state: StateStart}
}

// Produced creates a signal carrying value.
func Produced[T any](value T) Signal[T] {
	return Signal[T]{value: value, state: StateProduced}
}

// Suppressed creates a signal for an element that yields no output.
func Suppressed[T any]() Signal[T] {
	return Signal[T]{state: StateSuppressed}
}

// Stop creates a signal that halts the pipeline.
func Stop[T any]() Signal[T] {
	return Signal[T]{state: StateStop}
}

// State returns the signal's tag.
func (s Signal[T]) State() State {
	return s.state
}

// IsStart returns true for the start-of-pass signal.
func (s Signal[T]) IsStart() bool {
	return s.state == StateStart
}

// IsProduced returns true if the signal carries a value.
func (s Signal[T]) IsProduced() bool {
	return s.state == StateProduced
}

// IsSuppressed returns true if the element was dropped.
func (s Signal[T]) IsSuppressed() bool {
	return s.state == StateSuppressed
}

// IsStop returns true if the pipeline must halt.
func (s Signal[T]) IsStop() bool {
	return s.state == StateStop
}

// Value returns the payload. Only meaningful when IsProduced() is true;
// returns the zero value otherwise.
func (s Signal[T]) Value() T {
	return s.value
}

// Unwrap returns the payload and whether the signal is produced.
func (s Signal[T]) Unwrap() (T, bool) {
	return s.value, s.state == StateProduced
}

func (s Signal[T]) String() string {
	if s.state == StateProduced {
		return fmt.Sprintf("produced(%v)", s.value)
	}
	return s.state.String()
}

// relay re-types a signal that carries no payload. It must not be called
// with a produced signal.
func relay[U, T any](s Signal[T]) Signal[U] {
	return Signal[U]{state: s.state}
}
