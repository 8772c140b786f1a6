// Package point defines the 2D integer point model shared by the rectangle
// and triangle counters.
//
// Points are exact discrete keys: coordinates are int64 and a Point is a
// comparable struct, so it can key a map directly without string encoding.
//
// Set gives O(1) membership tests over a validated, duplicate-free input.
// FromGrid turns the marked cells of a rectangular grid into points, so a
// [][]int map of "posts" can be fed straight into the counters.
//
// Errors:
//
//   - ErrDuplicatePoint: the same point appears more than once.
//   - ErrEmptyGrid:      FromGrid input has no rows or no columns.
//   - ErrNonRectangular: FromGrid rows have differing lengths.
package point
