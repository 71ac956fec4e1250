// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import "github.com/pkg/errors"

// Insert adds v to s and reports whether it was added.
// If s already holds a value equivalent to v, Insert leaves s unchanged
// (the stored value is not replaced) and returns false.
//
// The only error comes from s's Allocator; s is then unchanged.
func (s *Set[T]) Insert(v T) (added bool, err error) {
	pos, parent := s.locate(v)
	if *pos != nil {
		return false, nil
	}
	x, err := s.alloc.Alloc()
	if err != nil {
		return false, errors.Wrap(err, "avlset: allocating node")
	}
	*x = Node[T]{parent: parent, value: v, height: 1, size: 1}
	*pos = x
	s.link(x)
	s.rebalanceUp(parent)
	return true, nil
}

// Delete removes v from s and reports whether it was present.
//
// When the node holding v has two children, the value of its in-order
// successor is moved into it and the successor's node is removed instead;
// iterators at the successor are invalidated, not those at v.
func (s *Set[T]) Delete(v T) bool {
	if s == nil {
		return false
	}
	pos, _ := s.locate(v)
	x := *pos
	if x == nil {
		return false
	}
	if x.left != nil && x.right != nil {
		// The successor is the leftmost node of the right subtree,
		// so it has no left child. x keeps its place in the list.
		y := x.right.minNode()
		x.value = y.value
		x = y
	}

	s.unlink(x)
	child := x.left
	if child == nil {
		child = x.right
	}
	p := x.parent
	s.replaceChild(p, x, child)
	s.release(x)
	s.rebalanceUp(p)
	return true
}

// link splices the new leaf x into the list.
// A leaf's in-order neighbors are its parent and the parent's
// neighbor on the same side.
func (s *Set[T]) link(x *Node[T]) {
	switch p := x.parent; {
	case p == nil:
	case p.left == x:
		x.prev, x.next = p.prev, p
	default:
		x.prev, x.next = p, p.next
	}
	if x.prev != nil {
		x.prev.next = x
	}
	if x.next != nil {
		x.next.prev = x
	}
}

// unlink removes x from the list, joining its neighbors.
func (s *Set[T]) unlink(x *Node[T]) {
	if x.prev != nil {
		x.prev.next = x.next
	}
	if x.next != nil {
		x.next.prev = x.prev
	}
	x.prev, x.next = nil, nil
}

// replaceChild makes x take old's place below p.
func (s *Set[T]) replaceChild(p, old, x *Node[T]) {
	switch {
	case p == nil:
		if s.root != old {
			panic("corrupt avlset")
		}
		s.root = x
	case p.left == old:
		p.left = x
	case p.right == old:
		p.right = x
	default:
		panic("corrupt avlset")
	}
	if x != nil {
		x.parent = p
	}
}

// rebalanceUp restores heights, sizes and balance from x to the root.
// Sizes change all the way up, so there is no early exit.
func (s *Set[T]) rebalanceUp(x *Node[T]) {
	for x != nil {
		x = s.rebalance(x).parent
	}
}

// rebalance recomputes x's height and size and, if x is out of balance,
// rotates it. It returns the root of the resulting subtree.
// x's children must already be balanced with exact heights.
func (s *Set[T]) rebalance(x *Node[T]) *Node[T] {
	x.update()
	switch x.balance() {
	case +2:
		if x.left.balance() < 0 {
			s.rotateLeft(x.left)
		}
		return s.rotateRight(x)
	case -2:
		if x.right.balance() > 0 {
			s.rotateRight(x.right)
		}
		return s.rotateLeft(x)
	}
	return x
}

func (x *Node[T]) update() {
	x.height = 1 + max(x.left.safeHeight(), x.right.safeHeight())
	x.size = 1 + x.left.safeSize() + x.right.safeSize()
}

// balance returns height(left) - height(right).
func (x *Node[T]) balance() int {
	return x.left.safeHeight() - x.right.safeHeight()
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c), and returns y.
func (s *Set[T]) rotateLeft(x *Node[T]) *Node[T] {
	// p -> (x a (y b c))
	p := x.parent
	y := x.right
	b := y.left

	y.left = x
	x.parent = y
	x.right = b
	if b != nil {
		b.parent = x
	}
	s.replaceChild(p, x, y)

	// x is now below y.
	x.update()
	y.update()
	return y
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)), and returns x.
func (s *Set[T]) rotateRight(y *Node[T]) *Node[T] {
	// p -> (y (x a b) c)
	p := y.parent
	x := y.left
	b := x.right

	x.right = y
	y.parent = x
	y.left = b
	if b != nil {
		b.parent = y
	}
	s.replaceChild(p, y, x)

	y.update()
	x.update()
	return x
}
