package rectangle

import "errors"

// ErrOddTally indicates the diagonal tally is odd and cannot be halved.
// Classification: internal invariant violation.
var ErrOddTally = errors.New("rectangle: diagonal tally is odd")
