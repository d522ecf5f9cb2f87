// Package core defines the lazy pipeline: the Signal protocol between stages,
// the step composer that fuses stages into one function, the Pipeline value
// and the terminal evaluators that walk the source.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other linq packages.
package core

// Pipeline pairs a composed step with the driver of the source it was built
// from. S is the raw source element type, T the current output type.
//
// Pipeline has value semantics. Every combinator returns a new Pipeline and
// leaves the receiver untouched; the driver is shared, never re-created.
// Nothing touches the source until a terminal evaluator runs.
//
// A Pipeline holds a step builder rather than a step. Every terminal call
// builds the chain afresh, so the counters of Take, Skip and SkipWhile are
// owned by a single pass and derived pipelines never share them, even when a
// pass of one runs inside a pass of another.
type Pipeline[S, T any] struct {
	build  func() Step[S, T]
	driver Driver[S]
}

// New creates a pipeline that yields the driver's elements unchanged.
func New[S any](driver Driver[S]) Pipeline[S, S] {
	return Pipeline[S, S]{build: Identity[S], driver: driver}
}

// Compose builds a pipeline from a driver and an already composed step.
// The step is shared by every pass.
func Compose[S, T any](driver Driver[S], step Step[S, T]) Pipeline[S, T] {
	return Pipeline[S, T]{build: func() Step[S, T] { return step }, driver: driver}
}

// Then appends a user-supplied stage. The stage must honor the Signal
// protocol: pass Start through (resetting any captured state), propagate
// Stop and Suppressed, and only act on Produced values. Lift builds such a
// stage from a per-value function.
//
// The same next is used by every pass. Stages with captured state should be
// appended with Extend instead.
func Then[S, T, U any](p Pipeline[S, T], next Step[T, U]) Pipeline[S, U] {
	return Extend(p, func() Step[T, U] { return next })
}

// Extend appends a stage created by build. build runs once per pass, so the
// state it captures belongs to that pass alone.
func Extend[S, T, U any](p Pipeline[S, T], build func() Step[T, U]) Pipeline[S, U] {
	prev := p.build
	return Pipeline[S, U]{
		build:  func() Step[S, U] { return Fuse(prev(), build()) },
		driver: p.driver,
	}
}

// MapTo applies mapper to every value, changing the element type.
func MapTo[S, T, U any](p Pipeline[S, T], mapper func(T) U) Pipeline[S, U] {
	return Then(p, mapStep(mapper))
}

// SelectTo is a synonym for MapTo.
func SelectTo[S, T, U any](p Pipeline[S, T], mapper func(T) U) Pipeline[S, U] {
	return MapTo(p, mapper)
}

// Step builds a fresh composed step with its own stage state.
func (p Pipeline[S, T]) Step() Step[S, T] {
	return p.build()
}

// Driver returns the source driver.
func (p Pipeline[S, T]) Driver() Driver[S] {
	return p.driver
}

// Instrument returns a pipeline with the same step whose driver is wrap's
// result. It is meant for decorators that observe the raw enumeration.
func (p Pipeline[S, T]) Instrument(wrap func(Driver[S]) Driver[S]) Pipeline[S, T] {
	return Pipeline[S, T]{build: p.build, driver: wrap(p.driver)}
}

// Filter keeps the values for which pred returns true.
func (p Pipeline[S, T]) Filter(pred func(T) bool) Pipeline[S, T] {
	return Then(p, filterStep(pred))
}

// Where is a synonym for Filter.
func (p Pipeline[S, T]) Where(pred func(T) bool) Pipeline[S, T] {
	return p.Filter(pred)
}

// Map applies mapper to every value. Use MapTo to change the element type.
func (p Pipeline[S, T]) Map(mapper func(T) T) Pipeline[S, T] {
	return Then(p, mapStep(mapper))
}

// Select is a synonym for Map.
func (p Pipeline[S, T]) Select(mapper func(T) T) Pipeline[S, T] {
	return p.Map(mapper)
}

// Take yields at most n values and halts the source right after the n-th.
// A non-positive n halts on the first element without evaluating it.
func (p Pipeline[S, T]) Take(n int) Pipeline[S, T] {
	prev := p.build
	return Pipeline[S, T]{
		build:  func() Step[S, T] { return take(prev(), n) },
		driver: p.driver,
	}
}

// Skip drops the first n values. A non-positive n drops nothing.
func (p Pipeline[S, T]) Skip(n int) Pipeline[S, T] {
	return Extend(p, func() Step[T, T] { return skipStep[T](n) })
}

// TakeWhile yields values while pred holds and halts the source at the first
// value that fails it. The failing value is not yielded.
func (p Pipeline[S, T]) TakeWhile(pred func(T) bool) Pipeline[S, T] {
	return Then(p, takeWhileStep(pred))
}

// SkipWhile drops values while pred holds, then yields every value starting
// with the first one that fails it.
func (p Pipeline[S, T]) SkipWhile(pred func(T) bool) Pipeline[S, T] {
	return Extend(p, func() Step[T, T] { return skipWhileStep(pred) })
}

// Tap observes the signals at this point of the chain without altering them.
func (p Pipeline[S, T]) Tap(hooks Hooks[T]) Pipeline[S, T] {
	return Then(p, tapStep(hooks))
}
