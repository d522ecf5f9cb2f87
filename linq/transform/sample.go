package transform

import "github.com/lguimbarda/min-linq/linq/core"

// DistinctUntilChanged suppresses values equal to the one yielded just
// before them. Unlike Distinct it only remembers the latest value.
func DistinctUntilChanged[S any, T comparable](p core.Pipeline[S, T]) core.Pipeline[S, T] {
	return DistinctUntilChangedBy(p, func(v T) T { return v })
}

// DistinctUntilChangedBy suppresses values whose key equals the key of the
// value yielded just before them.
func DistinctUntilChangedBy[S, T any, K comparable](p core.Pipeline[S, T], keyFn func(T) K) core.Pipeline[S, T] {
	return core.Extend(p, func() core.Step[T, T] {
		var last K
		hasLast := false
		reset := func() {
			var zero K
			last, hasLast = zero, false
		}
		return core.Lift(reset, func(v T) core.Signal[T] {
			key := keyFn(v)
			if hasLast && key == last {
				return core.Suppressed[T]()
			}
			last, hasLast = key, true
			return core.Produced(v)
		})
	})
}

// EveryNth yields every n-th value: the n-th, the 2n-th and so on.
// A non-positive n yields every value.
func EveryNth[S, T any](p core.Pipeline[S, T], n int) core.Pipeline[S, T] {
	if n <= 0 {
		n = 1
	}
	return core.Extend(p, func() core.Step[T, T] {
		count := 0
		return core.Lift(func() { count = 0 }, func(v T) core.Signal[T] {
			count++
			if count < n {
				return core.Suppressed[T]()
			}
			count = 0
			return core.Produced(v)
		})
	})
}

// TakeEvery is a synonym for EveryNth.
func TakeEvery[S, T any](p core.Pipeline[S, T], n int) core.Pipeline[S, T] {
	return EveryNth(p, n)
}
