package core

// Step is one fused transform of a pipeline. The first step of a pipeline
// receives raw source elements wrapped as Produced signals; every composed
// step receives the output of the step before it.
type Step[T, U any] func(Signal[T]) Signal[U]

// Identity returns a step that passes every signal through unchanged.
func Identity[T any]() Step[T, T] {
	return func(in Signal[T]) Signal[T] {
		return in
	}
}

// Fuse composes two steps into one without any buffering in between.
// Start reaches both steps, so each stage sees the reset.
func Fuse[S, T, U any](first Step[S, T], second Step[T, U]) Step[S, U] {
	return func(in Signal[S]) Signal[U] {
		return second(first(in))
	}
}

// Lift builds a step from a per-value operation. The returned step passes
// Start through after calling reset (which may be nil), propagates Stop and
// Suppressed without calling apply, and calls apply for Produced values.
func Lift[T, U any](reset func(), apply func(T) Signal[U]) Step[T, U] {
	return func(in Signal[T]) Signal[U] {
		switch in.state {
		case StateProduced:
			return apply(in.value)
		case StateStart:
			if reset != nil {
				reset()
			}
			return Start[U]()
		case StateSuppressed, StateStop:
			return relay[U](in)
		}
		unknownState(in.state)
		return Stop[U]()
	}
}

func filterStep[T any](pred func(T) bool) Step[T, T] {
	return Lift(nil, func(v T) Signal[T] {
		if !pred(v) {
			return Suppressed[T]()
		}
		return Produced(v)
	})
}

func mapStep[T, U any](mapper func(T) U) Step[T, U] {
	return Lift(nil, func(v T) Signal[U] {
		return Produced(mapper(v))
	})
}

func skipStep[T any](n int) Step[T, T] {
	skipped := 0
	return Lift(func() { skipped = 0 }, func(v T) Signal[T] {
		if skipped < n {
			skipped++
			return Suppressed[T]()
		}
		return Produced(v)
	})
}

func takeWhileStep[T any](pred func(T) bool) Step[T, T] {
	return Lift(nil, func(v T) Signal[T] {
		if !pred(v) {
			return Stop[T]()
		}
		return Produced(v)
	})
}

func skipWhileStep[T any](pred func(T) bool) Step[T, T] {
	skipping := true
	return Lift(func() { skipping = true }, func(v T) Signal[T] {
		if skipping {
			if pred(v) {
				return Suppressed[T]()
			}
			skipping = false
		}
		return Produced(v)
	})
}

// take wraps upstream rather than following it. Once n values have been
// produced the next element is answered with Stop before upstream runs, so
// no stage evaluates an element past the boundary.
func take[S, T any](upstream Step[S, T], n int) Step[S, T] {
	taken := 0
	return func(in Signal[S]) Signal[T] {
		if in.state == StateStart {
			taken = 0
			return upstream(in)
		}
		if taken >= n {
			return Stop[T]()
		}
		out := upstream(in)
		if out.state == StateProduced {
			taken++
		}
		return out
	}
}

func tapStep[T any](h Hooks[T]) Step[T, T] {
	return func(in Signal[T]) Signal[T] {
		h.observe(in)
		return in
	}
}
