package aggregate

import (
	"errors"

	"github.com/lguimbarda/min-linq/linq/core"
)

var (
	// ErrNoMatch is returned by Single when no value matches.
	ErrNoMatch = errors.New("no matching element found")
	// ErrMultipleMatches is returned by Single and SingleOrDefault when more
	// than one value matches.
	ErrMultipleMatches = errors.New("multiple matching elements found")
)

func matching[S, T any](p core.Pipeline[S, T], predicate func(T) bool) core.Pipeline[S, T] {
	if predicate == nil {
		return p
	}
	return p.Filter(predicate)
}

// Single returns the only value matching predicate. A nil predicate matches
// every value. The source is halted as soon as a second match is seen.
func Single[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (T, error) {
	var zero T
	matches, err := matching(p, predicate).Take(2).ToList()
	switch {
	case err != nil:
		return zero, err
	case len(matches) == 0:
		return zero, ErrNoMatch
	case len(matches) > 1:
		return zero, ErrMultipleMatches
	}
	return matches[0], nil
}

// SingleOrDefault is Single returning defaultValue instead of ErrNoMatch.
func SingleOrDefault[S, T any](p core.Pipeline[S, T], predicate func(T) bool, defaultValue T) (T, error) {
	v, err := Single(p, predicate)
	if errors.Is(err, ErrNoMatch) {
		return defaultValue, nil
	}
	return v, err
}

// FirstOrDefault returns the first value matching predicate, or defaultValue
// if there is none. A nil predicate matches every value.
func FirstOrDefault[S, T any](p core.Pipeline[S, T], predicate func(T) bool, defaultValue T) (T, error) {
	v, ok, err := First(matching(p, predicate))
	if !ok {
		return defaultValue, err
	}
	return v, err
}

// LastOrDefault returns the last value matching predicate, or defaultValue
// if there is none.
func LastOrDefault[S, T any](p core.Pipeline[S, T], predicate func(T) bool, defaultValue T) (T, error) {
	v, ok, err := Last(matching(p, predicate))
	if !ok {
		return defaultValue, err
	}
	return v, err
}

// Find returns the first value satisfying predicate. The boolean is false if
// there is none.
func Find[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (T, bool, error) {
	return First(p.Filter(predicate))
}

// FindLast returns the last value satisfying predicate. It walks the whole
// source.
func FindLast[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (T, bool, error) {
	return Last(p.Filter(predicate))
}

// ContainsBy is a synonym for Any.
func ContainsBy[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (bool, error) {
	return Any(p, predicate)
}

// ElementAtOrDefault is ElementAt returning defaultValue when there is no
// value at index.
func ElementAtOrDefault[S, T any](p core.Pipeline[S, T], index int, defaultValue T) (T, error) {
	v, ok, err := ElementAt(p, index)
	if !ok {
		return defaultValue, err
	}
	return v, err
}

// FindIndex returns the zero-based position of the first value satisfying
// predicate, or -1.
func FindIndex[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (int, error) {
	index, found := 0, false
	_, err := p.TakeWhile(func(v T) bool {
		if predicate(v) {
			found = true
			return false
		}
		index++
		return true
	}).Run()
	if !found {
		return -1, err
	}
	return index, err
}

// FindLastIndex returns the zero-based position of the last value
// satisfying predicate, or -1. It walks the whole source.
func FindLastIndex[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (int, error) {
	last, index := -1, 0
	err := p.ForEach(func(v T) {
		if predicate(v) {
			last = index
		}
		index++
	})
	return last, err
}

// LastIndexOf returns the zero-based position of the last occurrence of
// value, or -1.
func LastIndexOf[S any, T comparable](p core.Pipeline[S, T], value T) (int, error) {
	return FindLastIndex(p, func(v T) bool { return v == value })
}

// IndexOf returns the zero-based position of the first occurrence of value,
// or -1.
func IndexOf[S any, T comparable](p core.Pipeline[S, T], value T) (int, error) {
	return FindIndex(p, func(v T) bool { return v == value })
}

// CountIf returns the number of values satisfying predicate. A nil predicate
// counts every value.
func CountIf[S, T any](p core.Pipeline[S, T], predicate func(T) bool) (int, error) {
	return Count(matching(p, predicate))
}

// IsEmpty reports whether the pipeline yields no value. It stops at the
// first one.
func IsEmpty[S, T any](p core.Pipeline[S, T]) (bool, error) {
	_, ok, err := First(p)
	return !ok, err
}

// IsNotEmpty reports whether the pipeline yields at least one value.
func IsNotEmpty[S, T any](p core.Pipeline[S, T]) (bool, error) {
	empty, err := IsEmpty(p)
	return !empty, err
}

// SequenceEqual reports whether p and other yield equal values in the same
// order.
func SequenceEqual[S, R any, T comparable](p core.Pipeline[S, T], other core.Pipeline[R, T]) (bool, error) {
	return SequenceEqualBy(p, other, func(a, b T) bool { return a == b })
}

// SequenceEqualBy compares with equals. other is collected first; p is then
// walked and halted at the first difference.
func SequenceEqualBy[S, R, T any](p core.Pipeline[S, T], other core.Pipeline[R, T], equals func(a, b T) bool) (bool, error) {
	want, err := other.ToList()
	if err != nil {
		return false, err
	}
	index, same := 0, true
	_, err = p.TakeWhile(func(v T) bool {
		if index >= len(want) || !equals(v, want[index]) {
			same = false
			return false
		}
		index++
		return true
	}).Run()
	if err != nil {
		return false, err
	}
	return same && index == len(want), nil
}

// ToMap collects the values keyed by keyFn. A later value replaces an
// earlier one with the same key.
func ToMap[S, T any, K comparable](p core.Pipeline[S, T], keyFn func(T) K) (map[K]T, error) {
	return core.FoldTo(p, func(v T, acc map[K]T) map[K]T {
		acc[keyFn(v)] = v
		return acc
	}, map[K]T{})
}

// ToSet collects the distinct values.
func ToSet[S any, T comparable](p core.Pipeline[S, T]) (map[T]struct{}, error) {
	return core.FoldTo(p, func(v T, acc map[T]struct{}) map[T]struct{} {
		acc[v] = struct{}{}
		return acc
	}, map[T]struct{}{})
}
