package point

import "fmt"

// Point is an integer coordinate pair.
type Point struct {
	X, Y int64
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// FromPairs converts [x, y] pairs into Points, preserving order.
func FromPairs(pairs [][2]int64) []Point {
	out := make([]Point, len(pairs))
	for i, p := range pairs {
		out[i] = Point{X: p[0], Y: p[1]}
	}

	return out
}

// Set is a membership structure over distinct points.
type Set map[Point]struct{}

// NewSet builds a Set from pts.
// Returns ErrDuplicatePoint, wrapped with both indices, if any point repeats.
// Complexity: O(n) time and memory.
func NewSet(pts []Point) (Set, error) {
	set := make(Set, len(pts))
	first := make(map[Point]int, len(pts))
	for i, p := range pts {
		if j, dup := first[p]; dup {
			return nil, fmt.Errorf("%v at indices %d and %d: %w", p, j, i, ErrDuplicatePoint)
		}
		first[p] = i
		set[p] = struct{}{}
	}

	return set, nil
}

// Has reports whether p is in the set.
func (s Set) Has(p Point) bool {
	_, ok := s[p]

	return ok
}

// Validate checks that pts holds no duplicates.
func Validate(pts []Point) error {
	_, err := NewSet(pts)

	return err
}

// FromGrid returns the cells with value ≥ threshold as points, where the
// cell grid[y][x] becomes Point{X: x, Y: y}. Points are emitted row by row.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromGrid(grid [][]int, threshold int) ([]Point, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(grid[0])
	for y, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
	}
	var out []Point
	for y, row := range grid {
		for x, v := range row {
			if v >= threshold {
				out = append(out, Point{X: int64(x), Y: int64(y)})
			}
		}
	}

	return out, nil
}
