package point

import "errors"

var (
	// ErrDuplicatePoint indicates a point occurs more than once in an input
	// that must be a set.
	ErrDuplicatePoint = errors.New("point: duplicate point in input")
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("point: input grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("point: all grid rows must have the same length")
)
