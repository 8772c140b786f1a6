package freq_test

import (
	"fmt"

	"github.com/katalvlaran/tally/freq"
)

// ExampleTable_Pairs counts how many pairs of words share a first letter.
func ExampleTable_Pairs() {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry", "apricot"}
	tb := freq.New[byte]()
	for _, w := range words {
		tb.Inc(w[0])
	}
	fmt.Println("a:", tb.Get('a'), "pairs:", tb.Pairs())
	// Output:
	// a: 3 pairs: 4
}
