package core

import (
	"errors"
	"fmt"
)

// ErrCursorRewind is returned by a cursor that cannot restart from its first
// record, such as a forward-only database result set on its second pass.
var ErrCursorRewind = errors.New("cursor cannot be rewound")

// UnknownStateError is the panic value raised when a sink receives a Signal
// whose state is none of Start, Produced, Suppressed or Stop. It indicates a
// broken stage, never a data problem, so it is not returned as an error.
type UnknownStateError struct {
	State State
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("linq: unknown signal state %s", e.State)
}

func unknownState(s State) {
	panic(&UnknownStateError{State: s})
}
