package freq

import "errors"

// ErrNegativeCount indicates a decrement on a key whose count is already zero.
// Classification: internal invariant violation.
var ErrNegativeCount = errors.New("freq: count would become negative")
