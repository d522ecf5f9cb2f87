package transform

import (
	"github.com/lguimbarda/min-linq/linq/core"
)

// MapWhere filters and maps in a single stage. fn returns (value, true) to
// yield the mapped value, or (_, false) to suppress the input.
func MapWhere[S, IN, OUT any](p core.Pipeline[S, IN], fn func(IN) (OUT, bool)) core.Pipeline[S, OUT] {
	return core.Then(p, core.Lift(nil, func(v IN) core.Signal[OUT] {
		if mapped, ok := fn(v); ok {
			return core.Produced(mapped)
		}
		return core.Suppressed[OUT]()
	}))
}

// Exclude drops the values for which predicate returns true.
// It is the inverse of Filter.
func Exclude[S, T any](p core.Pipeline[S, T], predicate func(T) bool) core.Pipeline[S, T] {
	return p.Filter(func(v T) bool { return !predicate(v) })
}

// StopAt yields values up to and including the first one satisfying
// predicate, then halts the source.
func StopAt[S, T any](p core.Pipeline[S, T], predicate func(T) bool) core.Pipeline[S, T] {
	return core.Extend(p, func() core.Step[T, T] {
		stopped := false
		return core.Lift(func() { stopped = false }, func(v T) core.Signal[T] {
			if stopped {
				return core.Stop[T]()
			}
			stopped = predicate(v)
			return core.Produced(v)
		})
	})
}

// TakeWhileWithIndex is TakeWhile with a predicate that also receives the
// 0-based position of the value.
func TakeWhileWithIndex[S, T any](p core.Pipeline[S, T], predicate func(T, int) bool) core.Pipeline[S, T] {
	return core.Extend(p, func() core.Step[T, T] {
		index := 0
		return core.Lift(func() { index = 0 }, func(v T) core.Signal[T] {
			if !predicate(v, index) {
				return core.Stop[T]()
			}
			index++
			return core.Produced(v)
		})
	})
}

// SkipWhileWithIndex is SkipWhile with a predicate that also receives the
// 0-based position of the value.
func SkipWhileWithIndex[S, T any](p core.Pipeline[S, T], predicate func(T, int) bool) core.Pipeline[S, T] {
	return core.Extend(p, func() core.Step[T, T] {
		index, skipping := 0, true
		reset := func() { index, skipping = 0, true }
		return core.Lift(reset, func(v T) core.Signal[T] {
			if skipping && predicate(v, index) {
				index++
				return core.Suppressed[T]()
			}
			skipping = false
			return core.Produced(v)
		})
	})
}

// IgnoreElements suppresses every value. The source is still walked, so
// upstream side effects and source errors remain visible.
func IgnoreElements[S, T any](p core.Pipeline[S, T]) core.Pipeline[S, T] {
	return core.Then(p, core.Lift(nil, func(T) core.Signal[T] {
		return core.Suppressed[T]()
	}))
}
