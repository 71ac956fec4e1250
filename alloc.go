// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset

import "github.com/pkg/errors"

// ErrExhausted is the error an [Arena] returns when every node is in use.
// Set methods that need a node wrap it; test with errors.Is.
var ErrExhausted = errors.New("arena exhausted")

// An Allocator supplies the nodes of a [Set].
//
// Alloc returns a node for the Set to fill in; its previous contents are
// overwritten. A non-nil error is returned, wrapped, to the caller of the
// Set method that needed the node, and that method leaves the Set unchanged.
// The Set does not retry.
//
// Free takes back a node the Set no longer references. The node has been
// zeroed. A Set only frees nodes that it obtained from its own Allocator.
//
// Allocators need not be safe for concurrent use. One Allocator may back
// several Sets that are used from the same goroutine.
type Allocator[T any] interface {
	Alloc() (*Node[T], error)
	Free(*Node[T])
}

// HeapAllocator allocates every node with new and leaves freed nodes to
// the garbage collector. It is the default Allocator.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc() (*Node[T], error) { return new(Node[T]), nil }
func (HeapAllocator[T]) Free(*Node[T])            {}

// DefaultFreeListSize is the capacity NewFreeList uses for sizes ≤ 0.
const DefaultFreeListSize = 32

// A FreeList is an Allocator that keeps up to a fixed number of freed nodes
// for reuse and falls back to the heap when it has none.
type FreeList[T any] struct {
	freelist []*Node[T]
	live     int // handed out and not yet freed
	total    int // ever created
}

// NewFreeList returns a FreeList that caches at most size freed nodes.
func NewFreeList[T any](size int) *FreeList[T] {
	if size <= 0 {
		size = DefaultFreeListSize
	}
	return &FreeList[T]{freelist: make([]*Node[T], 0, size)}
}

func (f *FreeList[T]) Alloc() (*Node[T], error) {
	f.live++
	index := len(f.freelist) - 1
	if index < 0 {
		f.total++
		return new(Node[T]), nil
	}
	n := f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	return n, nil
}

func (f *FreeList[T]) Free(n *Node[T]) {
	f.live--
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
	}
}

// Stats returns the number of nodes currently in use
// and the number of nodes the FreeList has ever created.
func (f *FreeList[T]) Stats() (live, total int) {
	return f.live, f.total
}

// An Arena is an Allocator over a slab of nodes allocated up front.
// Once all of them are in use, Alloc fails with [ErrExhausted].
type Arena[T any] struct {
	slab []Node[T]
	free []*Node[T]
}

// NewArena returns an Arena holding capacity nodes.
func NewArena[T any](capacity int) *Arena[T] {
	a := &Arena[T]{
		slab: make([]Node[T], capacity),
		free: make([]*Node[T], capacity),
	}
	// Hand out the slab front to back.
	for i := range a.slab {
		a.free[capacity-1-i] = &a.slab[i]
	}
	return a
}

func (a *Arena[T]) Alloc() (*Node[T], error) {
	i := len(a.free) - 1
	if i < 0 {
		return nil, ErrExhausted
	}
	n := a.free[i]
	a.free[i] = nil
	a.free = a.free[:i]
	return n, nil
}

func (a *Arena[T]) Free(n *Node[T]) {
	a.free = append(a.free, n)
}

// Cap returns the number of nodes in the arena.
func (a *Arena[T]) Cap() int { return len(a.slab) }

// Available returns the number of nodes that Alloc can still hand out.
func (a *Arena[T]) Available() int { return len(a.free) }
