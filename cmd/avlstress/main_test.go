// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anacrolix/log"
	"github.com/go-quicktest/qt"
	"github.com/stretchr/testify/require"
)

const scenarios = "../../internal/script/testdata/scenarios.yaml"

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpErr(&buf, &DumpCmd{Values: []int{2, 1, 3, 2}}))
	want := "" +
		"       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	qt.Assert(t, qt.Equals(buf.String(), want))

	buf.Reset()
	require.NoError(t, dumpErr(&buf, &DumpCmd{Stats: true, Values: []int{7}}))
	qt.Assert(t, qt.Equals(buf.String(), "|------+ 7 h1 n1 +0\n"))

	buf.Reset()
	require.NoError(t, dumpErr(&buf, &DumpCmd{}))
	qt.Assert(t, qt.Equals(buf.Len(), 0))
}

func TestReplay(t *testing.T) {
	require.NoError(t, replayErr(log.Default, []string{scenarios}))
}

func TestReplayFailures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	script := "name: wrong\nsteps:\n  - insert: [1]\n  - len: 2\n---\nname: also wrong\nsteps:\n  - expect: [1]\n"
	require.NoError(t, os.WriteFile(bad, []byte(script), 0o644))

	err := replayErr(log.Default, []string{scenarios, bad})
	qt.Assert(t, qt.ErrorMatches(err, "2 scripts failed"))

	err = replayErr(log.Default, []string{filepath.Join(dir, "missing.yaml")})
	qt.Assert(t, qt.IsNotNil(err))
}

func TestCheck(t *testing.T) {
	cmd := &CheckCmd{Seed: 5, Ops: 2_000, Keys: 500, EraseRatio: 0.3, CheckEvery: 100}
	require.NoError(t, checkErr(context.Background(), log.Default, cmd))

	cmd.EraseRatio = 1.5
	qt.Assert(t, qt.ErrorMatches(checkErr(context.Background(), log.Default, cmd), `erase ratio 1.5 not in \[0, 1\]`))
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd := &CheckCmd{Seed: 1, Ops: 1_000, Keys: 100, EraseRatio: 0.3}
	require.NoError(t, checkErr(ctx, log.Default, cmd))
}
