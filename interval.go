package aoc

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Interval is the closed integer range [Lo, Hi].
type Interval[T constraints.Integer] struct {
	Lo, Hi T
}

func (iv Interval[T]) String() string { return fmt.Sprintf("[%v, %v]", iv.Lo, iv.Hi) }

// Len returns the number of integers in iv.
func (iv Interval[T]) Len() T { return iv.Hi - iv.Lo + 1 }

func (iv Interval[T]) Contains(v T) bool { return iv.Lo <= v && v <= iv.Hi }

// Overlaps reports whether iv and o share at least one integer.
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	return iv.Lo <= o.Hi && o.Lo <= iv.Hi
}

// MergeIntervals returns the smallest sorted list of disjoint intervals
// covering the same integers as in. Intervals that overlap or touch,
// like [1,3] and [4,6], are joined. in is not modified.
func MergeIntervals[T constraints.Integer](in []Interval[T]) ([]Interval[T], error) {
	for _, iv := range in {
		if iv.Lo > iv.Hi {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, iv)
		}
	}
	if len(in) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(in)
	slices.SortFunc(sorted, func(a, b Interval[T]) int {
		return cmp.Compare(a.Lo, b.Lo)
	})

	out := make([]Interval[T], 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		// iv.Lo > cur.Hi in the second clause, so iv.Lo-1 can't underflow.
		if iv.Lo <= cur.Hi || iv.Lo-1 == cur.Hi {
			cur.Hi = max(cur.Hi, iv.Hi)
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	return append(out, cur), nil
}

// TotalLen returns the number of integers covered by a merged,
// disjoint list of intervals.
func TotalLen[T constraints.Integer](merged []Interval[T]) T {
	var n T
	for _, iv := range merged {
		n += iv.Len()
	}
	return n
}
