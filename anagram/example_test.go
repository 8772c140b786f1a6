package anagram_test

import (
	"fmt"

	"github.com/katalvlaran/tally/anagram"
)

// ExampleCountSubstringPairs counts anagram pairs in "abba":
// {a,a}, {b,b}, {ab,ba}, {abb,bba}.
func ExampleCountSubstringPairs() {
	n, err := anagram.CountSubstringPairs("abba")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n)
	// Output:
	// 4
}

// ExampleSignatureOf prints the letter-count vector of a word.
func ExampleSignatureOf() {
	sig, _ := anagram.SignatureOf("cab")
	fmt.Println(sig)
	// Output:
	// 1,1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
}
