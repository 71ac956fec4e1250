// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

// An Iterator is a position in a Set: at one of its values, or at the end,
// one past the largest value.
//
// Iterators are comparable. Two Iterators are equal if they are at the same
// position in the same Set, so a search can be tested against [Set.End]:
//
//	if it := s.Find(v); it != s.End() { ... }
//
// Stepping costs O(1) and follows the Set's threaded list, not its tree.
// An Iterator at a value that is deleted must not be used again.
type Iterator[T any] struct {
	s *Set[T]
	x *Node[T]
}

// Begin returns an Iterator at the smallest value of s,
// or [Set.End] if s is empty.
func (s *Set[T]) Begin() Iterator[T] {
	return Iterator[T]{s: s, x: s.first()}
}

// End returns the Iterator one past the largest value of s.
func (s *Set[T]) End() Iterator[T] {
	return Iterator[T]{s: s}
}

// Done reports whether it is at the end.
func (it Iterator[T]) Done() bool {
	return it.x == nil
}

// Value returns the value at it. It panics if it is at the end.
func (it Iterator[T]) Value() T {
	if it.x == nil {
		panic("avlset: Value of end Iterator")
	}
	return it.x.value
}

// Next returns the Iterator at the following value,
// or the end if it is at the largest value.
// Next of the end is the end.
func (it Iterator[T]) Next() Iterator[T] {
	if it.x != nil {
		it.x = it.x.next
	}
	return it
}

// Prev returns the Iterator at the preceding value.
// Prev of the end is the largest value; Prev of the smallest value is the end.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.x == nil {
		it.x = it.s.last()
	} else {
		it.x = it.x.prev
	}
	return it
}
