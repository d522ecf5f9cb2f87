package linq

// Stage is a type-preserving pipeline rewrite, such as a method value
// wrapped in a closure or a function from linq/transform.
type Stage[S, T any] func(Pipeline[S, T]) Pipeline[S, T]

// Chain composes stages into one. Stages are applied in order from left to
// right. If no stages are provided, returns the identity.
func Chain[S, T any](stages ...Stage[S, T]) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] {
		for _, stage := range stages {
			p = stage(p)
		}
		return p
	}
}

// Pipe applies stages to p, returning the final pipeline.
func Pipe[S, T any](p Pipeline[S, T], stages ...Stage[S, T]) Pipeline[S, T] {
	return Chain(stages...)(p)
}

// Filter returns a stage keeping the values for which pred holds.
func Filter[S, T any](pred func(T) bool) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] { return p.Filter(pred) }
}

// Where is a synonym for Filter.
func Where[S, T any](pred func(T) bool) Stage[S, T] {
	return Filter[S](pred)
}

// MapStage returns a stage applying mapper to every value.
// The element type is kept; use Map on a pipeline to change it.
func MapStage[S, T any](mapper func(T) T) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] { return p.Map(mapper) }
}

// SelectStage is a synonym for MapStage.
func SelectStage[S, T any](mapper func(T) T) Stage[S, T] {
	return MapStage[S](mapper)
}

// Take returns a stage yielding at most n values.
func Take[S, T any](n int) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] { return p.Take(n) }
}

// Skip returns a stage dropping the first n values.
func Skip[S, T any](n int) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] { return p.Skip(n) }
}

// TakeWhile returns a stage yielding values while pred holds.
func TakeWhile[S, T any](pred func(T) bool) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] { return p.TakeWhile(pred) }
}

// SkipWhile returns a stage dropping values while pred holds.
func SkipWhile[S, T any](pred func(T) bool) Stage[S, T] {
	return func(p Pipeline[S, T]) Pipeline[S, T] { return p.SkipWhile(pred) }
}
