package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BinarySearch looks for an i in [lo, hi] with f(i) == target. f must
// be non-decreasing over the range, or non-increasing if reverse is
// set. It reports false if no such i exists, and errors only if lo > hi.
func BinarySearch[V constraints.Ordered](target V, lo, hi int, f func(int) V, reverse bool) (int, bool, error) {
	return BinarySearchErr(target, lo, hi, func(i int) (V, error) {
		return f(i), nil
	}, reverse)
}

// BinarySearchErr is like BinarySearch but stops at the first error
// from f and returns it as is.
func BinarySearchErr[V constraints.Ordered](target V, lo, hi int, f func(int) (V, error), reverse bool) (int, bool, error) {
	if lo > hi {
		return 0, false, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	for lo <= hi {
		mid := midpoint(lo, hi)
		v, err := f(mid)
		if err != nil {
			return 0, false, err
		}
		if v == target {
			return mid, true, nil
		}
		if (v < target) != reverse {
			if mid == hi {
				break
			}
			lo = mid + 1
		} else {
			if mid == lo {
				break
			}
			hi = mid - 1
		}
	}
	return 0, false, nil
}

// Bisect returns the smallest i in [lo, hi] for which pred is true,
// assuming pred is false then true across the range. It returns hi+1
// if pred is never true.
func Bisect(lo, hi int, pred func(int) bool) int {
	n := hi + 1
	for lo <= hi {
		mid := midpoint(lo, hi)
		if pred(mid) {
			n = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return n
}

// midpoint returns lo + (hi-lo)/2 without overflowing when the range
// spans more than half of int.
func midpoint(lo, hi int) int {
	return int(uint(lo) + (uint(hi)-uint(lo))/2)
}
