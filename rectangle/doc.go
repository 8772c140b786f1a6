// Package rectangle counts axis-aligned rectangles whose four corners all
// belong to a given set of distinct integer points.
//
// What:
//
//   - Count uses the diagonal method: every pair of points that differ on
//     both axes is a candidate diagonal; it closes a rectangle iff both
//     complementary corners are in the set. Each rectangle has exactly two
//     diagonals, so the raw tally is halved.
//   - CountByColumns buckets every vertical segment (y1, y2) per column in a
//     frequency table; two columns sharing a segment close one rectangle, so
//     the answer is Σ C(f,2). It wins when columns are short.
//
// Complexity:
//
//   - Count:          O(n²) time, O(n) memory.
//   - CountByColumns: O(Σ c²) time and memory, c = points per column.
//
// Both are quadratic in the worst case and are the scaling limiters of the
// module together with the anagram counter.
//
// Errors:
//
//   - point.ErrDuplicatePoint: the input is not a set.
//   - ErrOddTally: the diagonal tally came out odd; this is an accounting
//     defect, never a property of the input.
package rectangle
