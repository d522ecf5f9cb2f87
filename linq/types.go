// Package linq provides lazy, composable pipelines over arbitrary sources:
// filter, map, take, skip, take-while and skip-while chained without touching
// the source until a terminal operation (ForEach, ToList, Fold, Run) walks it
// exactly once.
//
// This package is the primary user-facing API. Most users should only need
// to import this package. The linq/core subpackage contains the Signal
// protocol and step composer, needed directly only to write custom stages.
package linq

import (
	"github.com/lguimbarda/min-linq/linq/core"
)

// Type aliases for core abstractions.
// These allow users to work with pipelines without importing core directly.
type (
	// Pipeline is a lazy chain of stages over a source of S elements
	// yielding T values.
	Pipeline[S, T any] = core.Pipeline[S, T]

	// Signal is the value passed between stages: Start, Produced,
	// Suppressed or Stop.
	Signal[T any] = core.Signal[T]

	// Step is one fused stage function.
	Step[T, U any] = core.Step[T, U]

	// Driver enumerates a source with early stop.
	Driver[S any] = core.Driver[S]

	// DriverFunc adapts a function to Driver.
	DriverFunc[S any] = core.DriverFunc[S]

	// Cursor is a record source navigated with first/next primitives.
	Cursor[T any] = core.Cursor[T]

	// Hooks observes the signals at one point of a pipeline.
	Hooks[T any] = core.Hooks[T]

	// Outcome reports whether a pass was halted or exhausted the source.
	Outcome = core.Outcome
)

const (
	Exhausted = core.Exhausted
	Halted    = core.Halted
)

// ErrCursorRewind is returned when a forward-only cursor is walked twice.
var ErrCursorRewind = core.ErrCursorRewind

// Map applies mapper to every value, possibly changing the element type.
func Map[S, T, U any](p Pipeline[S, T], mapper func(T) U) Pipeline[S, U] {
	return core.MapTo(p, mapper)
}

// Select is a synonym for Map.
func Select[S, T, U any](p Pipeline[S, T], mapper func(T) U) Pipeline[S, U] {
	return core.SelectTo(p, mapper)
}

// Fold combines every value into an accumulator of any type.
// combine receives the new value first and the running accumulator second.
func Fold[S, T, A any](p Pipeline[S, T], combine func(v T, acc A) A, initial A) (A, error) {
	return core.FoldTo(p, combine, initial)
}

// Then appends a custom stage built with core.Lift or by hand.
// The stage is shared by every pass.
func Then[S, T, U any](p Pipeline[S, T], next Step[T, U]) Pipeline[S, U] {
	return core.Then(p, next)
}

// Extend appends a custom stage that build creates afresh for every pass.
// Use it for stages with captured state.
func Extend[S, T, U any](p Pipeline[S, T], build func() Step[T, U]) Pipeline[S, U] {
	return core.Extend(p, build)
}
