// Package triangle counts right triangles whose legs are parallel to the
// axes, with all three vertices drawn from a set of distinct integer points.
//
// Every such triangle has exactly one right-angle vertex p. The other two
// vertices are one point sharing p's column and one sharing p's row, chosen
// independently, so p contributes (column(p)-1)·(row(p)-1). Summing over all
// points counts every triangle exactly once.
//
// Complexity: O(n) time, O(n) memory.
//
// Errors:
//
//   - point.ErrDuplicatePoint: the input is not a set.
package triangle
