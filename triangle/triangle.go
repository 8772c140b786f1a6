package triangle

import (
	"github.com/katalvlaran/tally/freq"
	"github.com/katalvlaran/tally/point"
)

// minVertices is the fewest points that can hold a triangle.
const minVertices = 3

// Count returns the number of right triangles with one leg parallel to the
// x-axis and the other parallel to the y-axis, using only points of pts.
// The order of pts does not matter; fewer than three points return 0.
//
// Algorithm:
//  1. Count points per x (columns) and per y (rows).
//  2. For each point p, add (columns[p.X]-1) * (rows[p.Y]-1).
//
// Complexity: O(n) time, O(n) memory.
func Count(pts []point.Point) (int64, error) {
	if err := point.Validate(pts); err != nil {
		return 0, err
	}
	if len(pts) < minVertices {
		return 0, nil
	}

	columns := freq.New[int64]()
	rows := freq.New[int64]()
	for _, p := range pts {
		columns.Inc(p.X)
		rows.Inc(p.Y)
	}

	var total int64
	for _, p := range pts {
		total += (columns.Get(p.X) - 1) * (rows.Get(p.Y) - 1)
	}

	return total, nil
}
