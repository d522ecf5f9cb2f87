// Package transform provides stateful stages beyond the core combinators.
// Each stage is appended with core.Extend, so its state is created for every
// pass and never shared between pipelines derived from the same value.
package transform

import (
	"github.com/lguimbarda/min-linq/linq/core"
)

// Indexed pairs a value with its 0-based position among the values that
// reached the stage.
type Indexed[T any] struct {
	Index int
	Value T
}

// WithIndex wraps each value with its 0-based index.
func WithIndex[S, T any](p core.Pipeline[S, T]) core.Pipeline[S, Indexed[T]] {
	return core.Extend(p, func() core.Step[T, Indexed[T]] {
		index := 0
		return core.Lift(func() { index = 0 }, func(v T) core.Signal[Indexed[T]] {
			indexed := Indexed[T]{Index: index, Value: v}
			index++
			return core.Produced(indexed)
		})
	})
}

// Distinct only yields values that have not been seen before in the pass.
func Distinct[S any, T comparable](p core.Pipeline[S, T]) core.Pipeline[S, T] {
	return DistinctBy(p, func(v T) T { return v })
}

// DistinctBy only yields values whose key, derived by keyFn, has not been
// seen before in the pass.
func DistinctBy[S, T any, K comparable](p core.Pipeline[S, T], keyFn func(T) K) core.Pipeline[S, T] {
	return core.Extend(p, func() core.Step[T, T] {
		seen := make(map[K]struct{})
		return core.Lift(func() { clear(seen) }, func(v T) core.Signal[T] {
			key := keyFn(v)
			if _, exists := seen[key]; exists {
				return core.Suppressed[T]()
			}
			seen[key] = struct{}{}
			return core.Produced(v)
		})
	})
}

// Pairwise yields each value paired with the one before it. The first value
// of a pass is suppressed.
func Pairwise[S, T any](p core.Pipeline[S, T]) core.Pipeline[S, [2]T] {
	return core.Extend(p, func() core.Step[T, [2]T] {
		var prev T
		hasPrev := false
		reset := func() {
			var zero T
			prev, hasPrev = zero, false
		}
		return core.Lift(reset, func(curr T) core.Signal[[2]T] {
			out := core.Suppressed[[2]T]()
			if hasPrev {
				out = core.Produced([2]T{prev, curr})
			}
			prev, hasPrev = curr, true
			return out
		})
	})
}

// Scan yields the running accumulation after each value. The accumulator
// starts from initial on every pass.
func Scan[S, T, R any](p core.Pipeline[S, T], initial R, scanner func(acc R, item T) R) core.Pipeline[S, R] {
	return core.Extend(p, func() core.Step[T, R] {
		acc := initial
		return core.Lift(func() { acc = initial }, func(v T) core.Signal[R] {
			acc = scanner(acc, v)
			return core.Produced(acc)
		})
	})
}

// Peek calls fn for every value that reaches the stage.
func Peek[S, T any](p core.Pipeline[S, T], fn func(T)) core.Pipeline[S, T] {
	return p.Tap(core.Hooks[T]{OnValue: fn})
}
