// Package largest finds the largest element of a slice.
//
// The same linear scan is written several ways — monomorphic over one
// concrete type, generic over any ordered type, returning a copy, a
// pointer, or an index — to contrast what changes (the signature) with
// what never does (the algorithm).
//
// Every variant uses a strict > comparison, so when the maximum value
// appears more than once the first occurrence wins. Except for OfOK,
// every variant panics on an empty slice: the scan reads element 0
// unconditionally, and non-emptiness is the caller's contract.
package largest

import "golang.org/x/exp/constraints"

// ── Generic, by value ────────────────────────────────────────────────────────
// constraints.Ordered admits every type supporting < and >: integers,
// floats, strings, and any type defined over them. The result is an
// independent copy; the input is never mutated.

// Of returns a copy of the largest element of list.
// It panics if list is empty.
func Of[T constraints.Ordered](list []T) T {
	largest := list[0]

	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}

	return largest
}

// ── Generic, by reference ────────────────────────────────────────────────────
// Returning *T avoids copying the winning element, at a price: the
// pointer aliases list's backing array and is only meaningful while the
// slice is alive and not reallocated by an append.

// Ref returns a pointer to the first occurrence of the largest element
// of list. It panics if list is empty.
func Ref[T constraints.Ordered](list []T) *T {
	largest := &list[0]

	for i := 1; i < len(list); i++ {
		if list[i] > *largest {
			largest = &list[i]
		}
	}

	return largest
}

// ── Generic, by index ────────────────────────────────────────────────────────
// The index form subsumes both of the above: list[Index(list)] is the
// value and &list[Index(list)] the reference, and an int carries no
// lifetime baggage. Of and Ref remain for callers who want the answer
// directly.

// Index returns the index of the first occurrence of the largest
// element of list. It panics if list is empty.
func Index[T constraints.Ordered](list []T) int {
	idx := 0

	for i, item := range list[1:] {
		if item > list[idx] {
			idx = i + 1
		}
	}

	return idx
}

// ── Total form ───────────────────────────────────────────────────────────────
// For callers that cannot establish non-emptiness statically. `var zero T`
// is the idiomatic "nothing" for a generic function.

// OfOK returns a copy of the largest element of list and true, or the
// zero value of T and false if list is empty. It never panics.
func OfOK[T constraints.Ordered](list []T) (T, bool) {
	if len(list) == 0 {
		var zero T
		return zero, false
	}

	return Of(list), true
}
