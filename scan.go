// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"iter"

	"github.com/jba/avlset/rng"
)

// Scan returns an iterator over the values of s within r, from smallest to
// largest, or from largest to smallest if r is backwards.
// s must not be modified during the iteration.
func (s *Set[T]) Scan(r rng.Range[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		if r.IsBackwards() {
			x := s.scanHigh(r)
			for x != nil && r.Contains(s.cmp, x.value) && yield(x.value) {
				x = x.prev
			}
			return
		}
		x := s.scanLow(r)
		for x != nil && r.Contains(s.cmp, x.value) && yield(x.value) {
			x = x.next
		}
	}
}

// scanLow returns the smallest node satisfying r's lower bound.
func (s *Set[T]) scanLow(r rng.Range[T]) *Node[T] {
	lo, inf, incl := r.Low()
	switch {
	case inf:
		return s.first()
	case incl:
		return s.lowerBound(lo)
	default:
		return s.upperBound(lo)
	}
}

// scanHigh returns the largest node satisfying r's upper bound.
func (s *Set[T]) scanHigh(r rng.Range[T]) *Node[T] {
	hi, inf, incl := r.High()
	if inf {
		return s.last()
	}
	var after *Node[T]
	if incl {
		after = s.upperBound(hi)
	} else {
		after = s.lowerBound(hi)
	}
	if after == nil {
		return s.last()
	}
	return after.prev
}
