// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII picture of s's tree to w, with right subtrees above
// their parents and left subtrees below, and returns the depth of the tree.
// If withStats is set, each node also shows its height, subtree size and
// balance factor.
func (s *Set[T]) Print(w io.Writer, withStats bool) (depth int, err error) {
	p := &printer[T]{w: w, withStats: withStats}
	var root *Node[T]
	if s != nil {
		root = s.root
	}
	depth = p.print(root, "", rootBranch)
	return depth, p.err
}

type printer[T any] struct {
	w         io.Writer
	withStats bool
	err       error
}

func (p *printer[T]) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer[T]) print(x *Node[T], prefix string, br branch) int {
	if x == nil {
		return 0
	}
	rd := 0
	if x.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = p.print(x.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		p.printf("%s|------+ ", prefix)
	case leftBranch:
		p.printf("%s\\------+ ", prefix)
	case rightBranch:
		p.printf("%s/------+ ", prefix)
	}
	if p.withStats {
		p.printf("%v h%d n%d %+d\n", x.value, x.height, x.size, x.balance())
	} else {
		p.printf("%v\n", x.value)
	}
	ld := 0
	if x.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = p.print(x.left, prefix+t, leftBranch)
	}
	return 1 + max(ld, rd)
}
