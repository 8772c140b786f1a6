// Command tally runs the tally counters from the command line.
//
// Usage:
//
//	tally [flags] anagrams <letters>
//	tally [flags] rectangles '<json points>'
//	tally [flags] triangles '<json points>'
//	tally [flags] gp -r <ratio> '<json values>'
//	tally [flags] batch < requests.json
//
// Points are JSON arrays of [x, y] pairs, e.g. '[[0,0],[0,1],[1,0],[1,1]]'.
// A batch is a JSON array of requests:
//
//	[{"kind":"anagrams","text":"abba"},{"kind":"gp","values":[1,4,16],"ratio":4}]
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
