package gptriplet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tally/freq"
)

// Count returns the number of index triplets (i < j < k) with
// arr[j] == arr[i]·r and arr[k] == arr[j]·r.
// Duplicate values are counted by multiplicity.
//
// Algorithm:
//  1. right ← multiplicities of arr; left ← empty.
//  2. For each v = arr[j] in order:
//     remove one v from right;
//     if v is divisible by r, add left[v/r] · right[v·r];
//     add v to left.
//
// Returns ErrZeroRatio for r == 0 before scanning, and ErrOverflow when the
// count does not fit in int64.
// Complexity: O(n) time, O(n) memory.
func Count(arr []int64, r int64) (int64, error) {
	if r == 0 {
		return 0, ErrZeroRatio
	}
	if len(arr) < 3 {
		return 0, nil
	}

	left := freq.New[int64]()
	right := freq.Count(arr)

	var total int64
	for j, v := range arr {
		if err := right.Dec(v); err != nil {
			return 0, fmt.Errorf("index %d: %w", j, err)
		}
		prev, ok := divExact(v, r)
		if !ok {
			left.Inc(v)

			continue
		}
		if next, ok := mulExact(v, r); ok {
			here, ok := mulExact(left.Get(prev), right.Get(next))
			if !ok {
				return 0, fmt.Errorf("index %d: %w", j, ErrOverflow)
			}
			if total, ok = addExact(total, here); !ok {
				return 0, fmt.Errorf("index %d: %w", j, ErrOverflow)
			}
		}
		left.Inc(v)
	}
	// every value has moved from right to left
	if right.Len() != 0 || left.Total() != int64(len(arr)) {
		return 0, ErrUnbalanced
	}

	return total, nil
}

// addExact returns a+b for non-negative a and b, or false on overflow.
func addExact(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}

	return a + b, true
}

// divExact returns a/b when b divides a and the quotient fits in int64.
func divExact(a, b int64) (int64, bool) {
	if a%b != 0 {
		return 0, false
	}
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}

	return a / b, true
}

// mulExact returns a·b, or false if the product overflows int64.
func mulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
