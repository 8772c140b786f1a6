package freq

import "fmt"

// Table counts occurrences of comparable keys.
// The zero value is not usable; construct with New or Count.
// A Table is not safe for concurrent use.
type Table[K comparable] struct {
	counts map[K]int64
}

// New returns an empty Table.
func New[K comparable]() *Table[K] {
	return &Table[K]{counts: make(map[K]int64)}
}

// Count builds a Table holding the multiplicity of every element of s.
// Complexity: O(len(s)).
func Count[S ~[]K, K comparable](s S) *Table[K] {
	t := &Table[K]{counts: make(map[K]int64, len(s))}
	for _, k := range s {
		t.counts[k]++
	}

	return t
}

// Inc adds one occurrence of k.
func (t *Table[K]) Inc(k K) {
	t.counts[k]++
}

// Dec removes one occurrence of k.
// Returns ErrNegativeCount, leaving the table unchanged, if k has no occurrences.
// Keys that reach zero are dropped so Len reports only live keys.
func (t *Table[K]) Dec(k K) error {
	c := t.counts[k]
	if c <= 0 {
		return fmt.Errorf("Dec(%v): %w", k, ErrNegativeCount)
	}
	if c == 1 {
		delete(t.counts, k)

		return nil
	}
	t.counts[k] = c - 1

	return nil
}

// Get returns the count of k, or 0 if k was never seen.
func (t *Table[K]) Get(k K) int64 {
	return t.counts[k]
}

// Len returns the number of distinct keys with a positive count.
func (t *Table[K]) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Table[K]) Total() int64 {
	var sum int64
	for _, c := range t.counts {
		sum += c
	}

	return sum
}

// Pairs returns Σ C(f,2) over all counts f > 1: the number of unordered
// pairs of occurrences that share a key.
// Complexity: O(Len()).
func (t *Table[K]) Pairs() int64 {
	var total int64
	for _, c := range t.counts {
		if c > 1 {
			total += Choose2(c)
		}
	}

	return total
}

// Choose2 returns n*(n-1)/2 in integer arithmetic, and 0 for n < 2.
// n*(n-1) is always even, so the division is exact.
func Choose2(n int64) int64 {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
