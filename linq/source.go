package linq

import (
	"errors"
	"io"
	"iter"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Enumerable is a collection that can hand out an iterator over its elements.
type Enumerable[T any] interface {
	All() iter.Seq[T]
}

// FromSlice creates a Pipeline over the elements of items.
// The slice is read, never copied, on every terminal call.
func FromSlice[T any](items []T) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for _, item := range items {
			if stop(item) {
				break
			}
		}
		return nil
	}))
}

// FromArray is a synonym for FromSlice, for fixed-size arrays sliced with a[:].
func FromArray[T any](items []T) Pipeline[T, T] {
	return FromSlice(items)
}

// FromValues creates a Pipeline over its arguments.
func FromValues[T any](items ...T) Pipeline[T, T] {
	return FromSlice(items)
}

// FromIter creates a Pipeline from a Go 1.23+ iterator sequence.
// The pipeline is repeatable only if seq is.
func FromIter[T any](seq iter.Seq[T]) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for item := range seq {
			if stop(item) {
				break
			}
		}
		return nil
	}))
}

// FromCollection creates a Pipeline over an Enumerable. All is called once
// per terminal evaluation.
func FromCollection[T any](c Enumerable[T]) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for item := range c.All() {
			if stop(item) {
				break
			}
		}
		return nil
	}))
}

// FromString creates a Pipeline over the runes of s. Invalid UTF-8 bytes
// yield utf8.RuneError, as in a range loop.
func FromString(s string) Pipeline[rune, rune] {
	return core.New[rune](core.DriverFunc[rune](func(stop func(rune) bool) error {
		for _, r := range s {
			if stop(r) {
				break
			}
		}
		return nil
	}))
}

// FromStrings creates a Pipeline over a list of strings.
func FromStrings(items []string) Pipeline[string, string] {
	return FromSlice(items)
}

// FromCursor creates a Pipeline over a record cursor. Every terminal call
// starts with c.First(); a forward-only cursor should fail that second call
// with ErrCursorRewind, and the error is returned by the terminal.
func FromCursor[T any](c Cursor[T]) Pipeline[T, T] {
	return core.New(core.CursorDriver(c))
}

// FromDriver creates a Pipeline over a custom source.
func FromDriver[S any](d Driver[S]) Pipeline[S, S] {
	return core.New(d)
}

// Range creates a Pipeline over the integers from start to finish, both
// inclusive. If start > finish, the pipeline is empty.
func Range(start, finish int) Pipeline[int, int] {
	return core.New[int](core.DriverFunc[int](func(stop func(int) bool) error {
		if start > finish {
			return nil
		}
		for i := start; ; i++ {
			if stop(i) || i == finish {
				return nil
			}
		}
	}))
}

// RangeStep creates a Pipeline over start, start+step, ... up to finish,
// inclusive when the steps land on it. A negative step counts down. The
// pipeline is empty if step is zero or points away from finish.
func RangeStep(start, finish, step int) Pipeline[int, int] {
	return core.New[int](core.DriverFunc[int](func(stop func(int) bool) error {
		if step == 0 || (step > 0 && start > finish) || (step < 0 && start < finish) {
			return nil
		}
		for i := start; ; i += step {
			if stop(i) {
				return nil
			}
			// distances are taken as uint so the last step never overflows
			if step > 0 && uint(finish)-uint(i) < uint(step) {
				return nil
			}
			if step < 0 && uint(i)-uint(finish) < -uint(step) {
				return nil
			}
		}
	}))
}

// Empty creates a Pipeline with no elements.
func Empty[T any]() Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(func(T) bool) error {
		return nil
	}))
}

// Once creates a Pipeline with a single element.
func Once[T any](value T) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		stop(value)
		return nil
	}))
}

// Repeat creates a Pipeline that yields value n times.
// If n is negative, it repeats until a stage stops the pipeline.
func Repeat[T any](value T, n int) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for count := 0; n < 0 || count < n; count++ {
			if stop(value) {
				break
			}
		}
		return nil
	}))
}

// Generate creates a Pipeline that calls fn for each element. fn returns the
// next value and true to continue, or false to end the source. A generator
// that never returns false must be bounded with Take or TakeWhile.
func Generate[T any](fn func() (T, bool)) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for {
			value, ok := fn()
			if !ok || stop(value) {
				return nil
			}
		}
	}))
}

// KeyValue is one entry of a map source.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates a Pipeline over the entries of m. Like a range loop over
// the map, the order is unspecified and may differ between passes.
func FromMap[K comparable, V any](m map[K]V) Pipeline[KeyValue[K, V], KeyValue[K, V]] {
	return core.New[KeyValue[K, V]](core.DriverFunc[KeyValue[K, V]](func(stop func(KeyValue[K, V]) bool) error {
		for k, v := range m {
			if stop(KeyValue[K, V]{Key: k, Value: v}) {
				break
			}
		}
		return nil
	}))
}

// Unfold creates a Pipeline from a seed and a step function. fn receives the
// current state and returns a value, the next state and true, or false to end
// the source. Every pass starts again from seed.
func Unfold[T, St any](seed St, fn func(St) (T, St, bool)) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		state := seed
		for {
			value, next, ok := fn(state)
			if !ok || stop(value) {
				return nil
			}
			state = next
		}
	}))
}

// Iterate creates an infinite Pipeline over seed, fn(seed), fn(fn(seed)), ...
// A stage such as Take must stop it.
func Iterate[T any](seed T, fn func(T) T) Pipeline[T, T] {
	return Unfold(seed, func(v T) (T, T, bool) { return v, fn(v), true })
}

// IterateN is Iterate limited to n values. fn is not called past the n-th.
func IterateN[T any](seed T, fn func(T) T, n int) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		v := seed
		for i := 0; i < n; i++ {
			if stop(v) || i == n-1 {
				return nil
			}
			v = fn(v)
		}
		return nil
	}))
}

// FromError creates a Pipeline whose every pass fails with err before
// yielding anything.
func FromError[T any](err error) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(func(T) bool) error {
		return err
	}))
}

// FromFunc creates a Pipeline that calls fn for each element. io.EOF ends
// the source; any other error fails the pass.
func FromFunc[T any](fn func() (T, error)) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for {
			value, err := fn()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if stop(value) {
				return nil
			}
		}
	}))
}

// Defer creates a Pipeline that calls factory at the start of every pass
// and yields the values of the pipeline it returns.
func Defer[S, T any](factory func() Pipeline[S, T]) Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		_, err := core.Drive(factory(), stop)
		return err
	}))
}
