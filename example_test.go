package tally_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tally"
)

// ExampleCountAll counts a small batch of independent requests.
func ExampleCountAll() {
	reqs := []tally.Request{
		{Kind: tally.Anagrams, Text: "abba"},
		{Kind: tally.Rectangles, Points: [][2]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Kind: tally.GPTriplets, Values: []int64{1, 16, 4, 16, 64, 16}, Ratio: 4},
	}
	res, err := tally.CountAll(context.Background(), reqs, tally.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range res {
		fmt.Printf("%s=%d\n", r.Kind, r.Count)
	}
	// Output:
	// anagrams=4
	// rectangles=1
	// gp=3
}
