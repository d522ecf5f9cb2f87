package core

// Driver enumerates the raw elements of a source. Iterate calls stop once per
// element in a fixed order and returns as soon as stop reports true. The
// returned error is non-nil only when the source itself fails.
//
// A driver is invoked once per terminal evaluation. Sources that cannot be
// walked twice (forward-only cursors, readers) return an error or yield
// nothing on the second pass; callers must not rely on them being repeatable.
type Driver[S any] interface {
	Iterate(stop func(S) bool) error
}

// DriverFunc adapts a function to the Driver interface.
type DriverFunc[S any] func(stop func(S) bool) error

// Iterate implements Driver.
func (f DriverFunc[S]) Iterate(stop func(S) bool) error {
	return f(stop)
}

// Cursor is a record source navigated with first/next primitives.
// Current is only valid while EOF reports false.
type Cursor[T any] interface {
	First() error
	Next() error
	EOF() bool
	Current() T
}

// CursorDriver drives a Cursor. Each pass starts with First, so a cursor
// that cannot rewind should return ErrCursorRewind from its second First.
func CursorDriver[T any](c Cursor[T]) Driver[T] {
	return DriverFunc[T](func(stop func(T) bool) error {
		if err := c.First(); err != nil {
			return err
		}
		for !c.EOF() {
			if stop(c.Current()) {
				return nil
			}
			if err := c.Next(); err != nil {
				return err
			}
		}
		return nil
	})
}
