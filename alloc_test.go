// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/stretchr/testify/require"
)

func TestFreeList(t *testing.T) {
	fl := NewFreeList[int](8)
	s := New(WithAllocator[int](fl))
	for i := range 10 {
		mustInsert(t, s, i)
	}
	live, total := fl.Stats()
	qt.Assert(t, qt.Equals(live, 10))
	qt.Assert(t, qt.Equals(total, 10))

	for i := range 5 {
		s.Delete(i)
	}
	live, _ = fl.Stats()
	qt.Assert(t, qt.Equals(live, 5))

	// Freed nodes are reused before new ones are made.
	for i := 10; i < 15; i++ {
		mustInsert(t, s, i)
	}
	live, total = fl.Stats()
	qt.Assert(t, qt.Equals(live, 10))
	qt.Assert(t, qt.Equals(total, 10))
	check(t, s)

	// Only 8 of the 10 cleared nodes are kept.
	s.Clear()
	live, _ = fl.Stats()
	qt.Assert(t, qt.Equals(live, 0))
	for i := range 9 {
		mustInsert(t, s, i)
	}
	_, total = fl.Stats()
	qt.Assert(t, qt.Equals(total, 11))
	check(t, s)
}

func TestFreeListDefaultSize(t *testing.T) {
	fl := NewFreeList[string](0)
	qt.Assert(t, qt.Equals(cap(fl.freelist), DefaultFreeListSize))
}

func TestArenaExhausted(t *testing.T) {
	a := NewArena[int](3)
	s := New(WithAllocator[int](a))
	mustInsert(t, s, 1, 2, 3)
	qt.Assert(t, qt.Equals(a.Available(), 0))

	added, err := s.Insert(4)
	require.ErrorIs(t, err, ErrExhausted)
	qt.Assert(t, qt.IsFalse(added))
	check(t, s)
	qt.Assert(t, qt.Equals(s.String(), "{1 2 3}"))

	// A duplicate needs no node.
	added, err = s.Insert(2)
	require.NoError(t, err)
	qt.Assert(t, qt.IsFalse(added))

	s.Delete(2)
	qt.Assert(t, qt.Equals(a.Available(), 1))
	mustInsert(t, s, 4)
	check(t, s)
	qt.Assert(t, qt.Equals(s.String(), "{1 3 4}"))
	qt.Assert(t, qt.Equals(a.Cap(), 3))
}

func TestArenaShared(t *testing.T) {
	a := NewArena[int](4)
	s1 := New(WithAllocator[int](a))
	s2 := New(WithAllocator[int](a))
	mustInsert(t, s1, 1, 2)
	mustInsert(t, s2, 3, 4)
	_, err := s1.Insert(5)
	require.ErrorIs(t, err, ErrExhausted)
	s2.Clear()
	mustInsert(t, s1, 5, 6)
	check(t, s1)
	check(t, s2)
	qt.Assert(t, qt.Equals(s1.String(), "{1 2 5 6}"))
	qt.Assert(t, qt.IsTrue(s2.Empty()))
}
