package rectangle

import "github.com/katalvlaran/tally/point"

// CountDiagonals exposes the pre-halving tally to rectangle_test.
func CountDiagonals(pts []point.Point) (int64, error) {
	set, err := point.NewSet(pts)
	if err != nil {
		return 0, err
	}

	return countDiagonals(pts, set), nil
}
