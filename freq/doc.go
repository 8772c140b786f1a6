// Package freq provides the frequency table shared by every counter in tally.
//
// What:
//
//   - Table[K] maps a derived key to a non-negative occurrence count.
//   - Lookups default to zero; increments and decrements are O(1) amortized.
//   - Pairs folds the table into Σ C(f,2), the number of unordered pairs of
//     items that share a key.
//
// Why:
//
//	Counting structured groupings (anagram pairs, rectangles, triangles,
//	progressions) without enumerating them reduces to "bucket by signature,
//	then combine bucket sizes in closed form". Table is that bucket.
//
// Complexity:
//
//   - Inc / Dec / Get: O(1) amortized.
//   - Pairs / Total:   O(k), k = number of distinct keys.
//
// Errors:
//
//   - ErrNegativeCount: a decrement would drive a count below zero. This is an
//     accounting defect in the caller, never a user input error.
package freq
