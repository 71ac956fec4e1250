// Package rng provides ranges: the bounds of a sequence of ordered values,
// each bound inclusive, exclusive or infinite, scanned forwards or backwards.
//
// Ranges are built by chaining:
//
//	rng.From(3).Below(10)              // [3, 10)
//	rng.Above("a").To("m").Backwards() // (a, m] from high to low
//	rng.All[int]().To(0)               // (-∞, 0]
package rng

import (
	"fmt"
	"strings"
)

// Range is a range of values of type T.
// T is not constrained by [cmp.Ordered]: the ordering is supplied by the
// caller, to [Range.Contains] or to whatever scans the range.
//
// The zero Range is (zero, zero), which is empty.
type Range[T any] struct {
	lo, hi bound[T]
	rev    bool
}

// bound is one end of a Range.
type bound[T any] struct {
	v    T
	incl bool
	inf  bool
}

// (-∞, ∞)
func All[T any]() Range[T] {
	return Range[T]{lo: bound[T]{inf: true}, hi: bound[T]{inf: true}}
}

// [t, ∞)
func From[T any](t T) Range[T] {
	return Range[T]{lo: bound[T]{v: t, incl: true}, hi: bound[T]{inf: true}}
}

// (t, ∞)
func Above[T any](t T) Range[T] {
	return Range[T]{lo: bound[T]{v: t}, hi: bound[T]{inf: true}}
}

// Below replaces r's infinite upper bound with t, exclusive.
// It panics if r already has an upper bound.
func (r Range[T]) Below(t T) Range[T] {
	return r.withHigh(bound[T]{v: t})
}

// To replaces r's infinite upper bound with t, inclusive.
// It panics if r already has an upper bound.
func (r Range[T]) To(t T) Range[T] {
	return r.withHigh(bound[T]{v: t, incl: true})
}

func (r Range[T]) withHigh(b bound[T]) Range[T] {
	if !r.hi.inf {
		panic("rng: upper bound already set")
	}
	r.hi = b
	return r
}

// Backwards returns r scanned from high to low.
func (r Range[T]) Backwards() Range[T] {
	r.rev = true
	return r
}

// IsBackwards reports whether r is scanned from its high end to its low end.
func (r Range[T]) IsBackwards() bool { return r.rev }

// Low returns the lower bound of r.
func (r Range[T]) Low() (v T, infinite, includes bool) {
	return r.lo.v, r.lo.inf, r.lo.incl
}

// High returns the upper bound of r.
func (r Range[T]) High() (v T, infinite, includes bool) {
	return r.hi.v, r.hi.inf, r.hi.incl
}

// Contains reports whether v lies within r's bounds under cmp.
func (r Range[T]) Contains(cmp func(T, T) int, v T) bool {
	return (r.lo.inf || r.lo.admits(cmp(v, r.lo.v))) &&
		(r.hi.inf || r.hi.admits(cmp(r.hi.v, v)))
}

// admits reports whether a finite bound b admits a value, given c: the
// value compared with b from the inside, so positive if it is strictly within.
func (b bound[T]) admits(c int) bool {
	return c > 0 || c == 0 && b.incl
}

func (r Range[T]) String() string {
	var sb strings.Builder
	switch {
	case r.lo.inf:
		sb.WriteString("(-∞")
	case r.lo.incl:
		fmt.Fprintf(&sb, "[%v", r.lo.v)
	default:
		fmt.Fprintf(&sb, "(%v", r.lo.v)
	}
	sb.WriteString(", ")
	switch {
	case r.hi.inf:
		sb.WriteString("∞)")
	case r.hi.incl:
		fmt.Fprintf(&sb, "%v]", r.hi.v)
	default:
		fmt.Fprintf(&sb, "%v)", r.hi.v)
	}
	if r.rev {
		sb.WriteString(" backwards")
	}
	return sb.String()
}
