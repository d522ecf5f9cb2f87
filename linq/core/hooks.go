package core

// Hooks holds typed observation callbacks for one point of a pipeline.
// All fields are optional - nil means no observation for that signal.
// Hooks run synchronously inside the pass, so they should be fast.
type Hooks[T any] struct {
	OnStart      func()  // A pass begins
	OnValue      func(T) // A value reached this point
	OnSuppressed func()  // An element was dropped upstream
	OnStop       func()  // Upstream asked the pipeline to halt
}

// MergeHooks combines hook sets. Callbacks for the same signal are invoked
// in FIFO order - hooks from earlier sets run before hooks from later ones.
func MergeHooks[T any](sets ...Hooks[T]) Hooks[T] {
	var merged Hooks[T]
	for _, h := range sets {
		merged.OnStart = chain(merged.OnStart, h.OnStart)
		merged.OnSuppressed = chain(merged.OnSuppressed, h.OnSuppressed)
		merged.OnStop = chain(merged.OnStop, h.OnStop)
		merged.OnValue = chainValue(merged.OnValue, h.OnValue)
	}
	return merged
}

func chain(first, second func()) func() {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func() {
		first()
		second()
	}
}

func chainValue[T any](first, second func(T)) func(T) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(v T) {
		first(v)
		second(v)
	}
}

func (h Hooks[T]) observe(in Signal[T]) {
	switch in.state {
	case StateStart:
		if h.OnStart != nil {
			h.OnStart()
		}
	case StateProduced:
		if h.OnValue != nil {
			h.OnValue(in.value)
		}
	case StateSuppressed:
		if h.OnSuppressed != nil {
			h.OnSuppressed()
		}
	case StateStop:
		if h.OnStop != nil {
			h.OnStop()
		}
	}
}
