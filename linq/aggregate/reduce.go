// Package aggregate provides terminal reductions built on Fold. Reductions
// that can decide early (Any, All, First, ElementAt, Contains) stop the
// source instead of draining it.
package aggregate

import (
	"github.com/lguimbarda/min-linq/linq/core"
)

// Numeric is a constraint for numeric types that support arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type reduction[T any] struct {
	value T
	seen  bool
}

type running struct {
	sum   float64
	count int
}

// Reduce combines the values pairwise using the first value as the seed.
// Unlike Fold, the reducer takes the accumulator first. The boolean is false
// when the pipeline yields nothing.
func Reduce[S, T any](p core.Pipeline[S, T], reducer func(acc, item T) T) (T, bool, error) {
	st, err := core.FoldTo(p, func(item T, acc reduction[T]) reduction[T] {
		if !acc.seen {
			return reduction[T]{value: item, seen: true}
		}
		return reduction[T]{value: reducer(acc.value, item), seen: true}
	}, reduction[T]{})
	return st.value, st.seen, err
}

// Count returns the number of values the pipeline yields.
func Count[S, T any](p core.Pipeline[S, T]) (int, error) {
	return core.FoldTo(p, func(_ T, acc int) int {
		return acc + 1
	}, 0)
}

// Sum adds up the values. An empty pipeline sums to zero.
func Sum[S any, T Numeric](p core.Pipeline[S, T]) (T, error) {
	var zero T
	return p.Fold(func(v, acc T) T { return acc + v }, zero)
}

// Average returns the arithmetic mean of the values as float64.
// If the pipeline is empty, returns 0.
func Average[S any, T Numeric](p core.Pipeline[S, T]) (float64, error) {
	r, err := core.FoldTo(p, func(v T, acc running) running {
		return running{sum: acc.sum + float64(v), count: acc.count + 1}
	}, running{})
	if r.count == 0 {
		return 0, err
	}
	return r.sum / float64(r.count), err
}

// Min finds the smallest value according to less. The boolean is false
// when the pipeline yields nothing.
func Min[S, T any](p core.Pipeline[S, T], less func(a, b T) bool) (T, bool, error) {
	return Reduce(p, func(acc, item T) T {
		if less(item, acc) {
			return item
		}
		return acc
	})
}

// Max finds the largest value according to less. The boolean is false
// when the pipeline yields nothing.
func Max[S, T any](p core.Pipeline[S, T], less func(a, b T) bool) (T, bool, error) {
	return Reduce(p, func(acc, item T) T {
		if less(acc, item) {
			return item
		}
		return acc
	})
}

// Any reports whether at least one value satisfies predicate.
// Short-circuits on the first matching value.
func Any[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (bool, error) {
	n, err := Count(p.Filter(predicate).Take(1))
	return n > 0, err
}

// All reports whether every value satisfies predicate (true for an empty
// pipeline). Short-circuits on the first non-matching value.
func All[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (bool, error) {
	failed, err := Any(p, func(v T) bool { return !predicate(v) })
	return !failed, err
}

// None reports whether no value satisfies predicate (true for an empty
// pipeline). Short-circuits on the first matching value.
func None[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (bool, error) {
	found, err := Any(p, predicate)
	return !found, err
}
