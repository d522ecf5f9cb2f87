package core

// sliceDriver walks items and records how many elements it handed out.
type sliceDriver[T any] struct {
	items  []T
	visits int
	passes int
}

func newSliceDriver[T any](items ...T) *sliceDriver[T] {
	return &sliceDriver[T]{items: items}
}

func (d *sliceDriver[T]) Iterate(stop func(T) bool) error {
	d.passes++
	for _, item := range d.items {
		d.visits++
		if stop(item) {
			return nil
		}
	}
	return nil
}

func ints(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
