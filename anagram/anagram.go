package anagram

import (
	"fmt"

	"github.com/katalvlaran/tally/freq"
)

// CountSubstringPairs returns the number of unordered pairs of substrings of
// s that are anagrams of each other. Substrings are identified by position,
// so "a" at index 0 and "a" at index 3 form a pair.
//
// Algorithm:
//  1. For each start i, reset a running Signature to zero.
//  2. For each end j ≥ i, bump the slot of s[j] and count the signature in a
//     table shared by all (i, j).
//  3. Sum C(f,2) over the table.
//
// Empty and single-letter inputs return 0. Any byte outside 'a'..'z' returns
// ErrInvalidRune before any counting happens.
//
// Complexity: O(n²) time, O(n²) memory.
func CountSubstringPairs(s string) (int64, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	n := len(s)
	if n < 2 {
		return 0, nil
	}

	seen := freq.New[Signature]()
	var sig Signature
	for i := 0; i < n; i++ {
		sig = Signature{}
		for j := i; j < n; j++ {
			sig[s[j]-'a']++
			seen.Inc(sig)
		}
	}

	return seen.Pairs(), nil
}

// SignatureOf returns the letter-count vector of s.
func SignatureOf(s string) (Signature, error) {
	var sig Signature
	if err := validate(s); err != nil {
		return sig, err
	}
	for i := 0; i < len(s); i++ {
		sig[s[i]-'a']++
	}

	return sig, nil
}

// IsAnagram reports whether a and b are anagrams of each other.
func IsAnagram(a, b string) (bool, error) {
	if len(a) != len(b) {
		// still validate so that bad input never yields a silent answer
		if err := validate(a); err != nil {
			return false, err
		}
		if err := validate(b); err != nil {
			return false, err
		}

		return false, nil
	}
	sa, err := SignatureOf(a)
	if err != nil {
		return false, err
	}
	sb, err := SignatureOf(b)
	if err != nil {
		return false, err
	}

	return sa == sb, nil
}

// validate rejects any byte outside 'a'..'z'.
func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 'a' || c > 'z' {
			return fmt.Errorf("byte %q at index %d: %w", c, i, ErrInvalidRune)
		}
	}

	return nil
}
