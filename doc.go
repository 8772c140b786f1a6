// Package tally is a small toolkit of combinatorial counters that answer
// "how many structured groupings exist" without enumerating them.
//
// 🚀 What is tally?
//
//	Every counter follows the same recipe: derive a signature per item,
//	bucket the signatures in a frequency table, and turn bucket sizes into a
//	count in closed form (C(f,2) pairs, products of independent choices).
//
//		• anagram/   — unordered pairs of anagrammatic substrings
//		• rectangle/ — axis-aligned rectangles over a point set
//		• triangle/  — axis-aligned right triangles over a point set
//		• gptriplet/ — index triplets forming a geometric progression
//
// Supporting packages:
//
//	freq/  — generic frequency table with zero-default lookups and Σ C(f,2)
//	point/ — integer Point, duplicate-free Set, grid → points conversion
//
// This root package dispatches a Request to exactly one counter (Count) and
// runs batches of independent requests in parallel (CountAll). A single
// count is always sequential; only separate requests run concurrently.
//
// ✨ Guarantees:
//
//   - Pure functions: no state survives a call, identical input ⇒ identical output.
//   - Exact int64 arithmetic; no floating point anywhere.
//   - Invalid input is rejected before any counting; no partial counts.
//
//	go get github.com/katalvlaran/tally
package tally
