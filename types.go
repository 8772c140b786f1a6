package tally

import (
	"encoding/json"
	"fmt"
)

// Kind selects which counter a Request runs.
type Kind string

const (
	// Anagrams counts unordered anagrammatic substring pairs of Request.Text.
	Anagrams Kind = "anagrams"
	// Rectangles counts axis-aligned rectangles over Request.Points.
	Rectangles Kind = "rectangles"
	// Triangles counts axis-aligned right triangles over Request.Points.
	Triangles Kind = "triangles"
	// GPTriplets counts geometric-progression triplets of Request.Values
	// with ratio Request.Ratio.
	GPTriplets Kind = "gp"
)

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{Anagrams, Rectangles, Triangles, GPTriplets}
}

// Request is one counting job. Only the fields used by Kind are read.
type Request struct {
	Kind   Kind       `json:"kind"`
	Text   string     `json:"text,omitempty"`
	Points [][2]int64 `json:"points,omitempty"`
	Values []int64    `json:"values,omitempty"`
	Ratio  int64      `json:"ratio,omitempty"`
}

// Result is the outcome of one Request in a batch.
// Index is the position of the request in the input slice.
type Result struct {
	Index int   `json:"index"`
	Kind  Kind  `json:"kind"`
	Count int64 `json:"count"`
	Err   error `json:"-"`
}

// UnmarshalJSON decodes a Request, rejecting points that are not exactly
// [x, y]. A plain [2]int64 target would silently zero-fill or truncate them.
func (r *Request) UnmarshalJSON(data []byte) error {
	type plain Request
	aux := struct {
		*plain
		Points [][]int64 `json:"points,omitempty"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	pts, err := ParsePoints(aux.Points)
	if err != nil {
		return err
	}
	r.Points = pts

	return nil
}

// ParsePoints converts variable-length coordinate lists into pairs.
// Returns ErrMalformedPoint, wrapped with the index, for any entry whose
// length is not 2.
func ParsePoints(raw [][]int64) ([][2]int64, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([][2]int64, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates: %w", i, len(p), ErrMalformedPoint)
		}
		out[i] = [2]int64{p[0], p[1]}
	}

	return out, nil
}
