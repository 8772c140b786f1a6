package tally

import "errors"

var (
	// ErrUnknownKind indicates a Request names a counter that does not exist.
	ErrUnknownKind = errors.New("tally: unknown request kind")
	// ErrMalformedPoint indicates a decoded point is not an [x, y] pair.
	ErrMalformedPoint = errors.New("tally: point must have exactly two coordinates")
)
