// Package combine joins whole pipelines into new sources. Each part keeps its
// own stages. A part that stops ends only that part, while a Stop raised
// downstream of the combination ends every remaining part.
package combine

import "github.com/lguimbarda/min-linq/linq/core"

// feed runs one pass of p, offering each value it yields to stop.
// It reports whether stop asked to halt.
func feed[S, T any](p core.Pipeline[S, T], stop func(T) bool) (bool, error) {
	halted := false
	_, err := core.Drive(p, func(v T) bool {
		halted = stop(v)
		return halted
	})
	return halted, err
}

// Concat yields the values of every part in turn.
// The second part only starts after the first is exhausted or stops.
func Concat[S, T any](parts ...core.Pipeline[S, T]) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for _, part := range parts {
			halted, err := feed(part, stop)
			if err != nil || halted {
				return err
			}
		}
		return nil
	}))
}

// IfEmpty yields the values of source, or those of alternative if a pass of
// source produced nothing.
func IfEmpty[S, T any](source, alternative core.Pipeline[S, T]) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		emitted := false
		_, err := feed(source, func(v T) bool {
			emitted = true
			return stop(v)
		})
		if err != nil || emitted {
			return err
		}
		_, err = feed(alternative, stop)
		return err
	}))
}

// SelectMany expands every value of p into a pipeline and yields the values
// of the expansions in order. An error from an expansion ends the pass.
func SelectMany[S, T, R, U any](p core.Pipeline[S, T], expand func(T) core.Pipeline[R, U]) core.Pipeline[U, U] {
	return core.New[U](core.DriverFunc[U](func(stop func(U) bool) error {
		var expandErr error
		_, err := feed(p, func(v T) bool {
			halted, err := feed(expand(v), stop)
			if err != nil {
				expandErr = err
				return true
			}
			return halted
		})
		if expandErr != nil {
			return expandErr
		}
		return err
	}))
}

// emitAll offers values to stop in order and reports whether stop asked to halt.
func emitAll[T any](values []T, stop func(T) bool) bool {
	for _, v := range values {
		if stop(v) {
			return true
		}
	}
	return false
}

// StartWith yields values, then the values of p.
func StartWith[S, T any](p core.Pipeline[S, T], values ...T) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		if emitAll(values, stop) {
			return nil
		}
		_, err := feed(p, stop)
		return err
	}))
}

// EndWith yields the values of p, then values. Nothing is appended if the
// pass of p fails or is stopped downstream.
func EndWith[S, T any](p core.Pipeline[S, T], values ...T) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		halted, err := feed(p, stop)
		if err != nil || halted {
			return err
		}
		emitAll(values, stop)
		return nil
	}))
}

// DefaultIfEmpty yields the values of p, or fallback alone if a pass of p
// produced nothing.
func DefaultIfEmpty[S, T any](p core.Pipeline[S, T], fallback T) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		emitted := false
		_, err := feed(p, func(v T) bool {
			emitted = true
			return stop(v)
		})
		if err != nil || emitted {
			return err
		}
		stop(fallback)
		return nil
	}))
}
