package core

// Terminal functions are sinks that walk the source exactly once: they build
// the composed step for the pass, send Start through it, then hand the driver a stop predicate that
// runs every raw element through the step and reacts to the resulting signal.

// Outcome reports how a pass ended.
type Outcome uint8

const (
	// Exhausted means the driver ran out of elements.
	Exhausted Outcome = iota
	// Halted means a stage emitted Stop before the source was exhausted.
	Halted
)

func (o Outcome) String() string {
	if o == Halted {
		return "halted"
	}
	return "exhausted"
}

// sink builds the driver's stop predicate. It reports true when the step
// emits Stop or when emit asks to stop; only the former marks the pass halted.
func sink[S, T any](step Step[S, T], emit func(T) bool, halted *bool) func(S) bool {
	return func(raw S) bool {
		out := step(Produced(raw))
		switch out.state {
		case StateProduced:
			return emit(out.value)
		case StateSuppressed, StateStart:
			return false
		case StateStop:
			*halted = true
			return true
		}
		unknownState(out.state)
		return true
	}
}

// Drive runs one pass of p and hands every yielded value to emit. The pass
// ends early, without being reported as Halted, once emit returns true.
// Combinators that feed one pipeline into another build on it.
func Drive[S, T any](p Pipeline[S, T], emit func(T) bool) (Outcome, error) {
	step := p.build()
	step(Start[S]())
	halted := false
	err := p.driver.Iterate(sink(step, emit, &halted))
	if halted {
		return Halted, err
	}
	return Exhausted, err
}

func (p Pipeline[S, T]) drive(emit func(T)) (Outcome, error) {
	return Drive(p, func(v T) bool {
		emit(v)
		return false
	})
}

// ForEach calls action for every value the pipeline yields.
// The error, if any, comes from the source.
func (p Pipeline[S, T]) ForEach(action func(T)) error {
	_, err := p.drive(action)
	return err
}

// ToList collects every value into a new slice in encounter order.
// If the source fails, ToList returns nil and the error.
func (p Pipeline[S, T]) ToList() ([]T, error) {
	result := []T{}
	if _, err := p.drive(func(v T) {
		result = append(result, v)
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Fold combines every value into an accumulator starting from initial.
// combine receives the new value first and the running accumulator second.
// If the source fails, Fold returns the accumulator reached so far and the error.
func (p Pipeline[S, T]) Fold(combine func(v, acc T) T, initial T) (T, error) {
	return FoldTo(p, combine, initial)
}

// FoldTo is Fold with an accumulator of a different type than the values.
func FoldTo[S, T, A any](p Pipeline[S, T], combine func(v T, acc A) A, initial A) (A, error) {
	acc := initial
	_, err := p.drive(func(v T) {
		acc = combine(v, acc)
	})
	return acc, err
}

// Run walks the pipeline for the side effects of its stages and reports
// whether the pass was halted by a stage or exhausted the source.
func (p Pipeline[S, T]) Run() (Outcome, error) {
	return p.drive(func(T) {})
}
