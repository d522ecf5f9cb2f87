package linq_test

import (
	"errors"
	"io"
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-linq/linq"
)

// bag is an Enumerable backed by a sorted key set.
type bag map[string]int

func (b bag) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range slices.Sorted(maps.Keys(b)) {
			if !yield(k) {
				return
			}
		}
	}
}

type recordCursor struct {
	rows []string
	pos  int
}

func (c *recordCursor) First() error    { c.pos = 0; return nil }
func (c *recordCursor) Next() error     { c.pos++; return nil }
func (c *recordCursor) EOF() bool       { return c.pos >= len(c.rows) }
func (c *recordCursor) Current() string { return c.rows[c.pos] }

// driverContract checks the properties every source must satisfy: fixed
// order, repeatable passes, and no visits after the pipeline stops.
func driverContract[T any](t *testing.T, p linq.Pipeline[T, T], want []T) {
	t.Helper()

	got, err := p.ToList()
	require.NoError(t, err)
	assert.Equal(t, want, got, "full pass")

	again, err := p.ToList()
	require.NoError(t, err)
	assert.Equal(t, got, again, "second pass")

	if len(want) == 0 {
		return
	}
	visits := 0
	counted := p.Instrument(func(d linq.Driver[T]) linq.Driver[T] {
		return linq.DriverFunc[T](func(stop func(T) bool) error {
			return d.Iterate(func(v T) bool {
				visits++
				return stop(v)
			})
		})
	})
	first, err := counted.Take(1).ToList()
	require.NoError(t, err)
	assert.Equal(t, want[:1], first)
	assert.LessOrEqual(t, visits, 2, "source kept going after stop")
}

func TestSourcesContract(t *testing.T) {
	t.Run("slice", func(t *testing.T) {
		driverContract(t, linq.FromSlice([]int{5, 3, 8}), []int{5, 3, 8})
	})
	t.Run("array", func(t *testing.T) {
		arr := [4]int{1, 2, 3, 4}
		driverContract(t, linq.FromArray(arr[:]), []int{1, 2, 3, 4})
	})
	t.Run("values", func(t *testing.T) {
		driverContract(t, linq.FromValues("x", "y"), []string{"x", "y"})
	})
	t.Run("iter", func(t *testing.T) {
		driverContract(t, linq.FromIter(slices.Values([]int{7, 9})), []int{7, 9})
	})
	t.Run("collection", func(t *testing.T) {
		driverContract(t, linq.FromCollection[string](bag{"b": 1, "a": 2, "c": 3}), []string{"a", "b", "c"})
	})
	t.Run("string", func(t *testing.T) {
		driverContract(t, linq.FromString("héllo"), []rune{'h', 'é', 'l', 'l', 'o'})
	})
	t.Run("strings", func(t *testing.T) {
		driverContract(t, linq.FromStrings([]string{"alpha", "beta"}), []string{"alpha", "beta"})
	})
	t.Run("cursor", func(t *testing.T) {
		driverContract(t, linq.FromCursor[string](&recordCursor{rows: []string{"r1", "r2", "r3"}}), []string{"r1", "r2", "r3"})
	})
	t.Run("range", func(t *testing.T) {
		driverContract(t, linq.Range(-1, 3), []int{-1, 0, 1, 2, 3})
	})
	t.Run("range single", func(t *testing.T) {
		driverContract(t, linq.Range(4, 4), []int{4})
	})
	t.Run("range reversed is empty", func(t *testing.T) {
		driverContract(t, linq.Range(5, 1), []int{})
	})
	t.Run("empty", func(t *testing.T) {
		driverContract(t, linq.Empty[int](), []int{})
	})
	t.Run("once", func(t *testing.T) {
		driverContract(t, linq.Once(42), []int{42})
	})
	t.Run("repeat", func(t *testing.T) {
		driverContract(t, linq.Repeat("z", 3), []string{"z", "z", "z"})
	})
}

func TestRepeatForeverIsBoundedByTake(t *testing.T) {
	got, err := linq.Repeat(1, -1).Take(4).ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, got)
}

func TestGenerate(t *testing.T) {
	a, b := 0, 1
	fib := linq.Generate(func() (int, bool) {
		v := a
		a, b = b, a+b
		return v, true
	})

	got, err := fib.TakeWhile(func(v int) bool { return v < 30 }).ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21}, got)

	n := 0
	finite := linq.Generate(func() (int, bool) {
		n++
		return n, n <= 3
	})
	got, err = finite.ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestRangeAtMaxInt(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)
	got, err := linq.Range(maxInt-1, maxInt).ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{maxInt - 1, maxInt}, got)
}

func TestRangeStep(t *testing.T) {
	const maxInt = int(^uint(0) >> 1)
	const minInt = -maxInt - 1

	tests := []struct {
		name                string
		start, finish, step int
		want                []int
	}{
		{"up landing on finish", 0, 10, 5, []int{0, 5, 10}},
		{"up past finish", 1, 10, 4, []int{1, 5, 9}},
		{"down", 10, 1, -3, []int{10, 7, 4, 1}},
		{"single", 3, 3, 7, []int{3}},
		{"zero step", 1, 5, 0, []int{}},
		{"wrong direction up", 5, 1, 1, []int{}},
		{"wrong direction down", 1, 5, -1, []int{}},
		{"near max int", maxInt - 5, maxInt, 4, []int{maxInt - 5, maxInt - 1}},
		{"near min int", minInt + 5, minInt, -4, []int{minInt + 5, minInt + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverContract(t, linq.RangeStep(tt.start, tt.finish, tt.step), tt.want)
		})
	}
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	entries, err := linq.FromMap(m).ToList()
	require.NoError(t, err)
	got := map[string]int{}
	for _, kv := range entries {
		got[kv.Key] = kv.Value
	}
	assert.Equal(t, m, got)

	first, err := linq.FromMap(m).Take(1).ToList()
	require.NoError(t, err)
	assert.Len(t, first, 1)
}

func TestUnfold(t *testing.T) {
	// digits of n, least significant first
	digits := linq.Unfold(1207, func(n int) (int, int, bool) {
		if n == 0 {
			return 0, 0, false
		}
		return n % 10, n / 10, true
	})
	driverContract(t, digits, []int{7, 0, 2, 1})
}

func TestIterate(t *testing.T) {
	got, err := linq.Iterate(1, func(v int) int { return v * 2 }).Take(5).ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, got)

	calls := 0
	double := func(v int) int { calls++; return v * 2 }
	driverContract(t, linq.IterateN(3, double, 3), []int{3, 6, 12})

	calls = 0
	_, err = linq.IterateN(3, double, 3).ToList()
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "fn called past the last value")

	empty, err := linq.IterateN(3, double, 0).ToList()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFromError(t *testing.T) {
	boom := errors.New("boom")
	got, err := linq.FromError[int](boom).ToList()
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestFromFunc(t *testing.T) {
	countdown := func() func() (int, error) {
		n := 3
		return func() (int, error) {
			if n == 0 {
				return 0, io.EOF
			}
			n--
			return n, nil
		}
	}

	got, err := linq.FromFunc(countdown()).ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, got)

	boom := errors.New("boom")
	calls := 0
	_, err = linq.FromFunc(func() (int, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return calls, nil
	}).ToList()
	assert.ErrorIs(t, err, boom)
}

func TestDefer(t *testing.T) {
	built := 0
	p := linq.Defer(func() linq.Pipeline[int, int] {
		built++
		return linq.Range(1, built)
	})
	assert.Equal(t, 0, built, "factory called before a terminal")

	for pass := 1; pass <= 3; pass++ {
		got, err := p.ToList()
		require.NoError(t, err)
		assert.Len(t, got, pass)
	}

	first, err := p.Take(1).ToList()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, first)
}
