// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"context"
	"testing"

	"github.com/anacrolix/log"
	"github.com/go-quicktest/qt"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := Config{Seed: 7, Ops: 20_000, Keys: 2_000, EraseRatio: 0.3, CheckEvery: 100}
	if testing.Short() {
		cfg.Ops = 2_000
	}
	rep, err := Run(context.Background(), cfg, log.Default.WithNames("stress-test"))
	require.NoError(t, err)
	qt.Assert(t, qt.Equals(rep.Ops, cfg.Ops))
	qt.Assert(t, qt.Equals(rep.Exhausted, 0))
	qt.Assert(t, qt.Equals(rep.Len, rep.Inserts-rep.Deletes))
	qt.Assert(t, qt.IsTrue(rep.Height <= MaxHeight(rep.Len)))
	qt.Assert(t, qt.IsTrue(rep.Queries > 0))
}

func TestRunArena(t *testing.T) {
	// The key space is larger than the arena, so inserts are refused once
	// it fills up.
	cfg := Config{Seed: 3, Ops: 5_000, Keys: 1_000, EraseRatio: 0.2, CheckEvery: 250, Arena: 100}
	rep, err := Run(context.Background(), cfg, log.Default.WithNames("stress-test"))
	require.NoError(t, err)
	qt.Assert(t, qt.IsTrue(rep.Exhausted > 0))
	qt.Assert(t, qt.IsTrue(rep.Len <= cfg.Arena))
}

func TestRunDeterministic(t *testing.T) {
	cfg := DefaultConfig
	cfg.Ops = 3_000
	a, err := Run(context.Background(), cfg, log.Default)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg, log.Default)
	require.NoError(t, err)
	qt.Assert(t, qt.Equals(a, b))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := Run(ctx, DefaultConfig, log.Default)
	require.ErrorIs(t, err, context.Canceled)
	qt.Assert(t, qt.Equals(rep.Ops, 0))
}

func TestRunBadConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{Ops: 10}, log.Default)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestMaxHeight(t *testing.T) {
	// Minimal AVL trees of height h have F(h+2)-1 nodes.
	for _, test := range []struct{ n, h int }{
		{1, 1},
		{2, 2},
		{4, 3},
		{7, 4},
		{12, 5},
		{20, 6},
		{33, 7},
	} {
		if got := MaxHeight(test.n); got < test.h {
			t.Errorf("MaxHeight(%d) = %d, want at least %d", test.n, got, test.h)
		}
	}
}
