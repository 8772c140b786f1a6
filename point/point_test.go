package point_test

import (
	"testing"

	"github.com/katalvlaran/tally/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSet_Membership verifies Has over a small set.
func TestNewSet_Membership(t *testing.T) {
	set, err := point.NewSet(point.FromPairs([][2]int64{{0, 0}, {1, 2}, {-3, 4}}))
	require.NoError(t, err)
	assert.True(t, set.Has(point.Point{X: 1, Y: 2}))
	assert.True(t, set.Has(point.Point{X: -3, Y: 4}))
	assert.False(t, set.Has(point.Point{X: 2, Y: 1}))
	assert.Len(t, set, 3)
}

// TestNewSet_Duplicate ensures repeated points are rejected.
func TestNewSet_Duplicate(t *testing.T) {
	pts := point.FromPairs([][2]int64{{0, 0}, {1, 1}, {0, 0}})
	_, err := point.NewSet(pts)
	assert.ErrorIs(t, err, point.ErrDuplicatePoint)
	assert.Contains(t, err.Error(), "indices 0 and 2")
	assert.ErrorIs(t, point.Validate(pts), point.ErrDuplicatePoint)
	assert.NoError(t, point.Validate(nil))
}

// TestFromGrid_Errors verifies FromGrid rejects empty or ragged inputs.
func TestFromGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, point.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, point.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, point.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := point.FromGrid(tc.grid, 1)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromGrid_Threshold picks only cells at or above the threshold.
func TestFromGrid_Threshold(t *testing.T) {
	grid := [][]int{
		{1, 0, 2},
		{0, 3, 0},
	}
	pts, err := point.FromGrid(grid, 1)
	require.NoError(t, err)
	assert.Equal(t, []point.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}, pts)

	pts, err = point.FromGrid(grid, 3)
	require.NoError(t, err)
	assert.Equal(t, []point.Point{{X: 1, Y: 1}}, pts)
}

// TestPoint_String checks the textual form.
func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(-1,7)", point.Point{X: -1, Y: 7}.String())
}
