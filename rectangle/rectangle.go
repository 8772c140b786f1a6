package rectangle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tally/freq"
	"github.com/katalvlaran/tally/point"
)

// minCorners is the fewest points that can hold a rectangle.
const minCorners = 4

// Count returns the number of axis-aligned rectangles with all four corners
// in pts. The order of pts does not matter.
//
// Algorithm:
//  1. Build a point.Set; duplicates are rejected before any counting.
//  2. For every pair (p1, p2) with x1≠x2 and y1≠y2, test (x1,y2) and (x2,y1).
//  3. Each rectangle is found once per diagonal; halve the tally.
//
// Fewer than four points return 0.
// Complexity: O(n²) time, O(n) memory.
func Count(pts []point.Point) (int64, error) {
	set, err := point.NewSet(pts)
	if err != nil {
		return 0, err
	}
	if len(pts) < minCorners {
		return 0, nil
	}

	raw := countDiagonals(pts, set)
	if raw%2 != 0 {
		return 0, fmt.Errorf("tally %d over %d points: %w", raw, len(pts), ErrOddTally)
	}

	return raw / 2, nil
}

// countDiagonals returns the number of point pairs that are a diagonal of a
// rectangle fully contained in set.
func countDiagonals(pts []point.Point, set point.Set) int64 {
	var raw int64
	for i := 0; i < len(pts); i++ {
		p1 := pts[i]
		for j := i + 1; j < len(pts); j++ {
			p2 := pts[j]
			if p1.X == p2.X || p1.Y == p2.Y {
				continue
			}
			if set.Has(point.Point{X: p1.X, Y: p2.Y}) && set.Has(point.Point{X: p2.X, Y: p1.Y}) {
				raw++
			}
		}
	}

	return raw
}

// segment is a vertical side candidate, Lo < Hi.
type segment struct {
	Lo, Hi int64
}

// CountByColumns returns the same value as Count, computed by grouping points
// into columns and counting, for every vertical segment, how many columns
// contain it.
// Complexity: O(Σ c²), c = number of points sharing an x coordinate.
func CountByColumns(pts []point.Point) (int64, error) {
	if err := point.Validate(pts); err != nil {
		return 0, err
	}
	if len(pts) < minCorners {
		return 0, nil
	}

	columns := make(map[int64][]int64)
	for _, p := range pts {
		columns[p.X] = append(columns[p.X], p.Y)
	}

	segments := freq.New[segment]()
	for _, ys := range columns {
		if len(ys) < 2 {
			continue
		}
		sort.Slice(ys, func(a, b int) bool { return ys[a] < ys[b] })
		for a := 0; a < len(ys); a++ {
			for b := a + 1; b < len(ys); b++ {
				segments.Inc(segment{Lo: ys[a], Hi: ys[b]})
			}
		}
	}

	return segments.Pairs(), nil
}
