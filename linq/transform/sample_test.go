package transform_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/lguimbarda/min-linq/linq"
	"github.com/lguimbarda/min-linq/linq/transform"
)

func TestDistinctUntilChanged(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"runs collapse", []int{1, 1, 2, 2, 2, 1, 3, 3}, []int{1, 2, 1, 3}},
		{"no runs", []int{1, 2, 3}, []int{1, 2, 3}},
		{"zero first", []int{0, 0, 1}, []int{0, 1}},
		{"empty", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := transform.DistinctUntilChanged(linq.FromSlice(tt.input))
			for pass := 0; pass < 2; pass++ {
				if got := list(t, p); !slices.Equal(got, tt.want) {
					t.Errorf("pass %d: got %v, want %v", pass, got, tt.want)
				}
			}
		})
	}
}

func TestDistinctUntilChangedBy(t *testing.T) {
	words := linq.FromValues("Go", "GO", "rust", "Go", "go")
	got := list(t, transform.DistinctUntilChangedBy(words, strings.ToLower))
	if want := []string{"Go", "rust", "Go"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEveryNth(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"every third", 3, []int{3, 6, 9}},
		{"every one", 1, ints(1, 10)},
		{"zero means every one", 0, ints(1, 10)},
		{"negative means every one", -2, ints(1, 10)},
		{"larger than source", 11, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := transform.EveryNth(linq.Range(1, 10), tt.n)
			for pass := 0; pass < 2; pass++ {
				if got := list(t, p); !slices.Equal(got, tt.want) {
					t.Errorf("pass %d: got %v, want %v", pass, got, tt.want)
				}
			}
		})
	}

	if got := list(t, transform.TakeEvery(linq.Range(1, 10), 4)); !slices.Equal(got, []int{4, 8}) {
		t.Errorf("TakeEvery: got %v", got)
	}
}

func ints(from, to int) []int {
	out := []int{}
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
