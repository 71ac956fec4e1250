// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

// Equal reports whether a and b hold the same number of values and their
// values, taken in order, are pairwise equivalent under a's comparison
// function.
func Equal[T any](a, b *Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return Compare(a, b) == 0
}

// Compare compares the values of a and b in order, lexicographically, using
// a's comparison function. The result is 0 if a and b are
// equal, -1 if a sorts before b and +1 if a sorts after b. A Set sorts before
// every longer Set that it is a prefix of.
func Compare[T any](a, b *Set[T]) int {
	x, y := a.first(), b.first()
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := a.cmp(x.value, y.value); c != 0 {
			if c < 0 {
				return -1
			}
			return +1
		}
	}
	return compareLen(x, y)
}

// compareLen orders the remainders of two walks: the exhausted one first.
func compareLen[T any](x, y *Node[T]) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return +1
	}
}
