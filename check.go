// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import "github.com/pkg/errors"

// Check verifies the structure of s and returns an error describing the
// first inconsistency it finds, or nil. It checks that
//
//   - parent links agree with child links,
//   - every node's height and size match its children,
//   - every node is balanced to within one level,
//   - an in-order walk of the tree is strictly increasing, and
//   - the threaded list visits exactly the nodes of that walk, in order,
//     with prev links that mirror next links.
//
// Check is meant for tests and debugging; it takes O(n) time.
func (s *Set[T]) Check() error {
	if s == nil {
		return nil
	}
	if s.root != nil && s.root.parent != nil {
		return errors.Errorf("avlset: root %v has a parent", s.root.value)
	}
	if err := checkNode(s.root, nil); err != nil {
		return err
	}

	// Walk the tree in order alongside the list.
	l := s.first()
	var prev *Node[T]
	var walk func(*Node[T]) error
	walk = func(x *Node[T]) error {
		if x == nil {
			return nil
		}
		if err := walk(x.left); err != nil {
			return err
		}
		switch {
		case l != x:
			return errors.Errorf("avlset: list is out of step with tree at %v", x.value)
		case x.prev != prev:
			return errors.Errorf("avlset: prev link of %v is wrong", x.value)
		case prev != nil && s.cmp(prev.value, x.value) >= 0:
			return errors.Errorf("avlset: %v is not less than its successor %v", prev.value, x.value)
		}
		prev = x
		l = x.next
		return walk(x.right)
	}
	if err := walk(s.root); err != nil {
		return err
	}
	if l != nil {
		return errors.Errorf("avlset: list continues past the tree's maximum at %v", l.value)
	}
	return nil
}

func checkNode[T any](x, parent *Node[T]) error {
	if x == nil {
		return nil
	}
	if x.parent != parent {
		return errors.Errorf("avlset: parent link of %v is wrong", x.value)
	}
	if err := checkNode(x.left, x); err != nil {
		return err
	}
	if err := checkNode(x.right, x); err != nil {
		return err
	}
	if h := 1 + max(x.left.safeHeight(), x.right.safeHeight()); x.height != h {
		return errors.Errorf("avlset: node %v has height %d, want %d", x.value, x.height, h)
	}
	if n := 1 + x.left.safeSize() + x.right.safeSize(); x.size != n {
		return errors.Errorf("avlset: node %v has size %d, want %d", x.value, x.size, n)
	}
	if b := x.balance(); b < -1 || b > 1 {
		return errors.Errorf("avlset: node %v has balance %+d", x.value, b)
	}
	return nil
}
