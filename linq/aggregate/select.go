package aggregate

import (
	"github.com/lguimbarda/min-linq/linq/core"
)

// First returns the first value and halts the source right after it.
func First[S, T any](p core.Pipeline[S, T]) (T, bool, error) {
	return Reduce(p.Take(1), func(acc, _ T) T { return acc })
}

// Last returns the last value. It walks the whole source.
func Last[S, T any](p core.Pipeline[S, T]) (T, bool, error) {
	return Reduce(p, func(_, item T) T { return item })
}

// ElementAt returns the value at zero-based index. The boolean is false if
// the pipeline yields fewer values or index is negative.
func ElementAt[S, T any](p core.Pipeline[S, T], index int) (T, bool, error) {
	if index < 0 {
		var zero T
		return zero, false, nil
	}
	return First(p.Skip(index))
}

// Contains reports whether the pipeline yields target.
// Short-circuits on the first match.
func Contains[S any, T comparable](p core.Pipeline[S, T], target T) (bool, error) {
	return Any(p, func(v T) bool { return v == target })
}
