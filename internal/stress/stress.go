// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stress drives an avlset.Set and a reference ordered set
// (github.com/google/btree) with the same random operation stream and
// reports the first place where they disagree.
package stress

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/anacrolix/log"
	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/jba/avlset"
)

// Config controls a run.
type Config struct {
	Seed       uint64
	Ops        int     // operations to perform
	Keys       int     // keys are drawn from [0, Keys)
	EraseRatio float64 // fraction of operations that are deletes
	CheckEvery int     // compare whole traversals every CheckEvery operations; 0 never
	Arena      int     // if > 0, the Set's nodes come from an Arena of this capacity
	Verbose    bool    // log progress at Info rather than Debug
}

// DefaultConfig is a run of moderate length.
var DefaultConfig = Config{
	Seed:       1,
	Ops:        100_000,
	Keys:       30_000,
	EraseRatio: 0.3,
	CheckEvery: 1000,
}

// A Report summarizes a completed run.
type Report struct {
	Ops       int
	Inserts   int // successful inserts
	Deletes   int // successful deletes
	Queries   int
	Exhausted int // inserts refused by the Arena
	Len       int
	Height    int
	MaxHeight int
}

// btreeDegree matches the degree the torrent client uses for its peer set.
const btreeDegree = 32

// Run performs cfg.Ops random operations, stopping early with ctx's error
// if ctx is cancelled. Any divergence between the Set and the reference,
// or any failed structural check, is returned as an error.
func Run(ctx context.Context, cfg Config, logger log.Logger) (Report, error) {
	if cfg.Keys <= 0 {
		return Report{}, errors.Errorf("stress: key space must be positive, got %d", cfg.Keys)
	}
	progress := log.Debug
	if cfg.Verbose {
		progress = log.Info
	}
	var opts []avlset.Option[int]
	if cfg.Arena > 0 {
		opts = append(opts, avlset.WithAllocator[int](avlset.NewArena[int](cfg.Arena)))
	}
	r := &runner{
		cfg:  cfg,
		rand: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		set:  avlset.New(opts...),
		ref:  btree.NewOrderedG[int](btreeDegree),
	}
	for i := range cfg.Ops {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return r.rep, err
			}
		}
		if err := r.step(); err != nil {
			return r.rep, errors.Wrapf(err, "stress: op %d", i)
		}
		r.rep.Ops++
		if cfg.CheckEvery > 0 && r.rep.Ops%cfg.CheckEvery == 0 {
			if err := r.verify(); err != nil {
				return r.rep, errors.Wrapf(err, "stress: after %d ops", r.rep.Ops)
			}
			logger.Levelf(progress, "%d ops: len %d, height %d", r.rep.Ops, r.set.Len(), r.set.Height())
		}
	}
	if err := r.verify(); err != nil {
		return r.rep, errors.Wrap(err, "stress: final check")
	}
	r.rep.Len = r.set.Len()
	r.rep.Height = r.set.Height()
	return r.rep, nil
}

type runner struct {
	cfg  Config
	rand *rand.Rand
	set  *avlset.Set[int]
	ref  *btree.BTreeG[int]
	rep  Report
}

func (r *runner) step() error {
	key := r.rand.IntN(r.cfg.Keys)
	p := r.rand.Float64()
	switch {
	case p < r.cfg.EraseRatio:
		return r.delete(key)
	case p < r.cfg.EraseRatio+(1-r.cfg.EraseRatio)/2:
		return r.insert(key)
	default:
		r.rep.Queries++
		return r.query(key)
	}
}

func (r *runner) insert(key int) error {
	added, err := r.set.Insert(key)
	if errors.Is(err, avlset.ErrExhausted) {
		r.rep.Exhausted++
		if r.set.Contains(key) != r.ref.Has(key) {
			return errors.Errorf("failed Insert(%d) changed membership", key)
		}
		return nil
	}
	if err != nil {
		return err
	}
	_, replaced := r.ref.ReplaceOrInsert(key)
	if added == replaced {
		return errors.Errorf("Insert(%d) = %t, reference added %t", key, added, !replaced)
	}
	if added {
		r.rep.Inserts++
	}
	if h := r.set.Height(); h > r.rep.MaxHeight {
		r.rep.MaxHeight = h
		if limit := MaxHeight(r.set.Len()); h > limit {
			return errors.Errorf("height %d exceeds AVL bound %d for %d values", h, limit, r.set.Len())
		}
	}
	return nil
}

func (r *runner) delete(key int) error {
	deleted := r.set.Delete(key)
	_, want := r.ref.Delete(key)
	if deleted != want {
		return errors.Errorf("Delete(%d) = %t, reference deleted %t", key, deleted, want)
	}
	if deleted {
		r.rep.Deletes++
	}
	return nil
}

func (r *runner) query(key int) error {
	if got, want := r.set.Contains(key), r.ref.Has(key); got != want {
		return errors.Errorf("Contains(%d) = %t, want %t", key, got, want)
	}
	// Keys are ints, so the upper bound of key is the lower bound of key+1.
	for _, q := range []struct {
		name  string
		it    avlset.Iterator[int]
		pivot int
	}{
		{"LowerBound", r.set.LowerBound(key), key},
		{"UpperBound", r.set.UpperBound(key), key + 1},
	} {
		want, ok := r.ceiling(q.pivot)
		switch {
		case q.it.Done() && ok:
			return errors.Errorf("%s(%d) = end, want %d", q.name, key, want)
		case !q.it.Done() && !ok:
			return errors.Errorf("%s(%d) = %d, want end", q.name, key, q.it.Value())
		case ok && q.it.Value() != want:
			return errors.Errorf("%s(%d) = %d, want %d", q.name, key, q.it.Value(), want)
		}
	}
	return nil
}

// ceiling returns the reference's least key ≥ pivot.
func (r *runner) ceiling(pivot int) (k int, ok bool) {
	r.ref.AscendGreaterOrEqual(pivot, func(item int) bool {
		k, ok = item, true
		return false
	})
	return k, ok
}

// verify compares whole traversals in both directions and checks the
// Set's structure.
func (r *runner) verify() error {
	want := make([]int, 0, r.ref.Len())
	r.ref.Ascend(func(item int) bool {
		want = append(want, item)
		return true
	})
	got := slices.Collect(r.set.All())
	if diff := cmp.Diff(want, got); diff != "" {
		return errors.Errorf("traversal differs from reference (-want +got):\n%s", diff)
	}
	back := slices.Collect(r.set.Backward())
	slices.Reverse(back)
	if !slices.Equal(back, got) {
		return errors.New("backward traversal is not the reverse of forward traversal")
	}
	if r.set.Len() != len(want) {
		return errors.Errorf("Len() = %d, want %d", r.set.Len(), len(want))
	}
	return r.set.Check()
}

// MaxHeight returns the greatest height an AVL tree with n nodes can have,
// rounded down: ⌊1.4405·log2(n+2) − 0.3277⌋.
func MaxHeight(n int) int {
	return int(1.4405*math.Log2(float64(n+2)) - 0.3277)
}
