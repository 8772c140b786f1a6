// Package anagram counts unordered pairs of substrings that are anagrams of
// each other.
//
// 🚀 What:
//
//	Two substrings are anagrams iff they hold the same multiset of letters.
//	Every substring s[i..j] is reduced to a 26-slot Signature (one count per
//	letter a–z); substrings with equal signatures fall into the same bucket
//	of a frequency table, and a bucket of size f contributes C(f,2) pairs.
//
// ⚙️ Usage:
//
//	n, err := anagram.CountSubstringPairs("abba") // n == 4
//
// Performance:
//
//   - Time:   O(n²) signature updates and map operations.
//   - Memory: O(n²) in the worst case (one entry per distinct signature).
//
// The O(n²) bound makes this the scaling limiter of the module; inputs of a
// few thousand letters are comfortable, hundreds of thousands are not.
//
// Errors:
//
//   - ErrInvalidRune: the input holds a byte outside 'a'..'z'.
package anagram
