package anagram

import (
	"errors"
	"strconv"
	"strings"
)

// AlphabetSize is the number of letters tracked by a Signature.
const AlphabetSize = 26

// ErrInvalidRune indicates the input contains a byte outside 'a'..'z'.
var ErrInvalidRune = errors.New("anagram: input must contain only lowercase letters a-z")

// Signature is the letter-count vector of a string: Signature[c-'a'] is the
// number of occurrences of letter c.
//
// Signature is a Go array, so it is comparable and can be used directly as a
// map key: structurally equal vectors are equal keys.
type Signature [AlphabetSize]uint32

// String renders the signature as 26 comma-separated counts, e.g. "1,2,0,...".
func (sig Signature) String() string {
	var sb strings.Builder
	for i, c := range sig {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(c), 10))
	}

	return sb.String()
}
