package gptriplet

import "errors"

var (
	// ErrZeroRatio indicates a ratio of zero, for which a progression is undefined.
	ErrZeroRatio = errors.New("gptriplet: ratio must be non-zero")
	// ErrOverflow indicates the number of triplets exceeds math.MaxInt64.
	ErrOverflow = errors.New("gptriplet: triplet count overflows int64")
	// ErrUnbalanced indicates the left/right tables disagree with the input
	// after the scan. Classification: internal invariant violation.
	ErrUnbalanced = errors.New("gptriplet: left/right tables out of balance")
)
