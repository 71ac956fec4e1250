// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avlset implements in-memory ordered sets.
//
// A [Set] is an AVL tree whose nodes are also threaded onto a doubly linked
// list in ascending order. Stepping an [Iterator] forwards or backwards
// follows that list and costs O(1); every node also records the size of its
// subtree, so [Set.Len], [Set.At] and [Set.Rank] need no traversal.
//
// A Set is not safe for concurrent use. Any number of goroutines may read
// a Set that nobody is modifying.
package avlset

// The balancing follows the classic AVL scheme; see
// Lewis & Denenberg, Data Structures and Their Algorithms.

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// A Set is a set of values of type T ordered by a comparison function.
// Use [New] or [NewFunc] to create a Set; the zero value has no comparison
// function and cannot be used.
// A nil *Set, like a nil Go map, can be read but not written and contains no values.
type Set[T any] struct {
	root  *Node[T]
	cmp   func(T, T) int
	alloc Allocator[T]
}

// A Node is a node of a Set's tree. Its fields are managed by the Set;
// the type is exported so that an [Allocator] can supply nodes.
type Node[T any] struct {
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	next   *Node[T] // in-order successor
	prev   *Node[T] // in-order predecessor
	value  T
	height int // of the subtree rooted here; a leaf has height 1
	size   int // number of nodes in the subtree rooted here
}

// An Option configures a Set created by [New] or [NewFunc].
type Option[T any] func(*Set[T])

// WithAllocator makes the Set obtain and release its nodes through a.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(s *Set[T]) { s.alloc = a }
}

// New returns an empty Set ordered according to T's standard Go ordering.
func New[T cmp.Ordered](opts ...Option[T]) *Set[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty Set ordered according to cmp.
//
// cmp(a, b) must be negative when a sorts before b, positive when a sorts
// after b, and zero when they are equivalent, and it must describe a strict
// weak ordering. Values that compare equal are the same element of the Set.
// If cmp breaks these rules the Set's behavior is undefined; this is not
// detected.
func NewFunc[T any](cmp func(T, T) int, opts ...Option[T]) *Set[T] {
	s := &Set[T]{cmp: cmp}
	for _, opt := range opts {
		opt(s)
	}
	if s.alloc == nil {
		s.alloc = HeapAllocator[T]{}
	}
	return s
}

// locate reports where a node with value v would be: at *pos.
// If *pos != nil, then v is present in the tree;
// otherwise *pos is where a new node holding v should be attached.
//
// If parent != nil, then pos is either &parent.left or &parent.right
// depending on how v compares with parent.value.
// If parent == nil, then pos is &s.root.
func (s *Set[T]) locate(v T) (pos **Node[T], parent *Node[T]) {
	pos = &s.root
	for x := *pos; x != nil; x = *pos {
		c := s.cmp(v, x.value)
		if c == 0 {
			break
		}
		parent = x
		if c < 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// lookup returns the node holding v, or nil.
func (s *Set[T]) lookup(v T) *Node[T] {
	if s == nil {
		return nil
	}
	x := s.root
	for x != nil {
		c := s.cmp(v, x.value)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// Find returns an Iterator positioned at v, or [Set.End] if v is not in s.
func (s *Set[T]) Find(v T) Iterator[T] {
	return Iterator[T]{s: s, x: s.lookup(v)}
}

// Contains reports whether v is in s.
func (s *Set[T]) Contains(v T) bool {
	return s.lookup(v) != nil
}

// Count returns the number of elements of s equivalent to v: 0 or 1.
func (s *Set[T]) Count(v T) int {
	if s.Contains(v) {
		return 1
	}
	return 0
}

// LowerBound returns an Iterator at the first value of s that is not less
// than v, or [Set.End] if there is none.
func (s *Set[T]) LowerBound(v T) Iterator[T] {
	return Iterator[T]{s: s, x: s.lowerBound(v)}
}

// UpperBound returns an Iterator at the first value of s that is greater
// than v, or [Set.End] if there is none.
func (s *Set[T]) UpperBound(v T) Iterator[T] {
	return Iterator[T]{s: s, x: s.upperBound(v)}
}

// EqualRange returns the half-open range [lo, hi) of values equivalent to v.
// It is empty when v is not in s and holds exactly v otherwise.
func (s *Set[T]) EqualRange(v T) (lo, hi Iterator[T]) {
	return s.LowerBound(v), s.UpperBound(v)
}

// lowerBound returns the node with the least value ≥ v.
// Every node that qualifies is remembered on the way down,
// since a tighter one may still be to its left.
func (s *Set[T]) lowerBound(v T) *Node[T] {
	if s == nil {
		return nil
	}
	var best *Node[T]
	for x := s.root; x != nil; {
		if s.cmp(x.value, v) >= 0 {
			best = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return best
}

// upperBound returns the node with the least value > v.
func (s *Set[T]) upperBound(v T) *Node[T] {
	if s == nil {
		return nil
	}
	var best *Node[T]
	for x := s.root; x != nil; {
		if s.cmp(v, x.value) < 0 {
			best = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return best
}

// Len returns the number of values in s.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.root.safeSize()
}

// Empty reports whether s has no values.
func (s *Set[T]) Empty() bool {
	return s.Len() == 0
}

// Height returns the height of s's tree: 0 for an empty Set, 1 for a single value.
func (s *Set[T]) Height() int {
	if s == nil {
		return 0
	}
	return s.root.safeHeight()
}

func (x *Node[T]) safeHeight() int {
	if x == nil {
		return 0
	}
	return x.height
}

func (x *Node[T]) safeSize() int {
	if x == nil {
		return 0
	}
	return x.size
}

// Min returns the minimum value in s and true.
// If s is empty, the second return value is false.
func (s *Set[T]) Min() (T, bool) {
	if x := s.first(); x != nil {
		return x.value, true
	}
	var zero T
	return zero, false
}

// Max returns the maximum value in s and true.
// If s is empty, the second return value is false.
func (s *Set[T]) Max() (T, bool) {
	if x := s.last(); x != nil {
		return x.value, true
	}
	var zero T
	return zero, false
}

func (s *Set[T]) first() *Node[T] {
	if s == nil || s.root == nil {
		return nil
	}
	return s.root.minNode()
}

func (s *Set[T]) last() *Node[T] {
	if s == nil || s.root == nil {
		return nil
	}
	return s.root.maxNode()
}

// minNode returns the node in x's subtree with the smallest value.
// x must not be nil.
func (x *Node[T]) minNode() *Node[T] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node in x's subtree with the largest value.
// x must not be nil.
func (x *Node[T]) maxNode() *Node[T] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// At returns the value at index i in s's ordering (the smallest value is
// at index 0) and true.
// If i is out of range, the second return value is false.
func (s *Set[T]) At(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	x := s.root
	for {
		nl := x.left.safeSize()
		switch {
		case i < nl:
			x = x.left
		case i > nl:
			i -= nl + 1
			x = x.right
		default:
			return x.value, true
		}
	}
}

// Rank returns the number of values in s that are less than v.
// If v is in s, it is the index of v.
func (s *Set[T]) Rank(v T) int {
	if s == nil {
		return 0
	}
	n := 0
	for x := s.root; x != nil; {
		if s.cmp(x.value, v) < 0 {
			n += x.left.safeSize() + 1
			x = x.right
		} else {
			x = x.left
		}
	}
	return n
}

// All returns an iterator over the values of s from smallest to largest.
// s must not be modified during the iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		x := s.first()
		for x != nil && yield(x.value) {
			x = x.next
		}
	}
}

// Backward returns an iterator over the values of s from largest to smallest.
// s must not be modified during the iteration.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		x := s.last()
		for x != nil && yield(x.value) {
			x = x.prev
		}
	}
}

// Clear removes all values from s, returning every node to s's Allocator.
func (s *Set[T]) Clear() {
	s.freeTree(s.root)
	s.root = nil
}

// freeTree releases the nodes of x's subtree, children before parents.
func (s *Set[T]) freeTree(x *Node[T]) {
	if x == nil {
		return
	}
	s.freeTree(x.left)
	s.freeTree(x.right)
	s.release(x)
}

// release zeroes x and returns it to the allocator.
func (s *Set[T]) release(x *Node[T]) {
	*x = Node[T]{}
	s.alloc.Free(x)
}

// Clone returns a copy of s with the same comparison function and Allocator.
// If the Allocator fails, Clone returns the error and s is unchanged.
// The clone of a nil Set is nil.
func (s *Set[T]) Clone() (*Set[T], error) {
	if s == nil {
		return nil, nil
	}
	c := &Set[T]{cmp: s.cmp, alloc: s.alloc}
	root, err := c.cloneTree(s.root, nil)
	if err != nil {
		return nil, errors.Wrap(err, "avlset: cloning")
	}
	c.root = root
	c.thread()
	return c, nil
}

// cloneTree copies x's subtree with parent as the copy's parent.
// The copies are not threaded. On failure, nothing allocated remains.
func (c *Set[T]) cloneTree(x, parent *Node[T]) (*Node[T], error) {
	if x == nil {
		return nil, nil
	}
	y, err := c.alloc.Alloc()
	if err != nil {
		return nil, err
	}
	*y = Node[T]{parent: parent, value: x.value, height: x.height, size: x.size}
	if y.left, err = c.cloneTree(x.left, y); err != nil {
		c.release(y)
		return nil, err
	}
	if y.right, err = c.cloneTree(x.right, y); err != nil {
		c.freeTree(y.left)
		c.release(y)
		return nil, err
	}
	return y, nil
}

// thread links the nodes of s's tree into the ordered list.
func (s *Set[T]) thread() {
	var prev *Node[T]
	var walk func(*Node[T])
	walk = func(x *Node[T]) {
		if x == nil {
			return
		}
		walk(x.left)
		x.prev = prev
		if prev != nil {
			prev.next = x
		}
		prev = x
		walk(x.right)
	}
	walk(s.root)
}

// String returns the values of s in order, formatted as {v1 v2 ...}.
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for x := s.first(); x != nil; x = x.next {
		if x.prev != nil {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x.value)
	}
	b.WriteByte('}')
	return b.String()
}
