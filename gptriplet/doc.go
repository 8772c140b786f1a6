// Package gptriplet counts index triplets i < j < k of an integer sequence
// that form a geometric progression with a fixed integer ratio r:
//
//	arr[j] == arr[i]·r  and  arr[k] == arr[j]·r
//
// What:
//
//	A single left-to-right scan treats every index j as the middle term.
//	Two frequency tables split the sequence around j: left holds values at
//	indices < j, right holds values at indices > j. The triplets centred on
//	j number left[arr[j]/r] · right[arr[j]·r], the two choices being
//	independent.
//
// Domain:
//
//	Elements and ratio are int64. arr[j] must be divisible by r for a
//	predecessor to exist; non-integer ratios are not supported because exact
//	equality is not well defined for them. A product arr[j]·r that overflows
//	int64 cannot be present in the data and contributes nothing.
//
// Complexity: O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrZeroRatio: r == 0.
//   - ErrOverflow:  the count does not fit in int64 (e.g. millions of equal
//     values with r == 1, where the answer is C(n,3)).
//   - ErrUnbalanced: values were lost between the two tables; an accounting
//     defect, never a property of the input.
//   - freq.ErrNegativeCount (wrapped): the right table underflowed; an
//     accounting defect, never a property of the input.
package gptriplet
