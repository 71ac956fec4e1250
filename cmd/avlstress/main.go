// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command avlstress exercises avlset.Set from the command line.
//
// Example runs:
//
//	$ avlstress check --ops 1000000 --keys 300000
//	$ AVLSTRESS_SEED=42 avlstress check --arena 5000
//	$ avlstress replay internal/script/testdata/scenarios.yaml
//	$ avlstress dump --stats 5 3 8 1 4
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
)

var flags struct {
	Verbose bool `help:"log stress progress at info level instead of debug"`

	*CheckCmd  `arg:"subcommand:check" help:"cross-check a Set against a reference with random operations"`
	*ReplayCmd `arg:"subcommand:replay" help:"replay YAML operation scripts"`
	*DumpCmd   `arg:"subcommand:dump" help:"insert integers and print the resulting tree"`
}

type CheckCmd struct {
	Seed       uint64  `arg:"env:AVLSTRESS_SEED" default:"1" help:"random seed"`
	Ops        int     `arg:"env:AVLSTRESS_OPS" default:"1000000" help:"operations to perform"`
	Keys       int     `default:"300000" help:"keys are drawn from [0, keys)"`
	EraseRatio float64 `arg:"--erase-ratio" default:"0.3" help:"fraction of operations that delete"`
	CheckEvery int     `arg:"--check-every" default:"10000" help:"compare whole traversals this often; 0 never"`
	Arena      int     `help:"allocate nodes from an arena of this capacity; 0 uses the heap"`
}

type ReplayCmd struct {
	Files []string `arg:"positional,required" help:"YAML script files"`
}

type DumpCmd struct {
	Stats  bool  `help:"show height, size and balance of each node"`
	Values []int `arg:"positional" help:"integers to insert, in order"`
}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	p := arg.MustParse(&flags)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger := log.Default.WithNames("avlstress")
	switch {
	case flags.CheckCmd != nil:
		return checkErr(ctx, logger, flags.CheckCmd)
	case flags.ReplayCmd != nil:
		return replayErr(logger, flags.ReplayCmd.Files)
	case flags.DumpCmd != nil:
		return dumpErr(os.Stdout, flags.DumpCmd)
	default:
		p.Fail(fmt.Sprintf("unexpected subcommand: %v", p.Subcommand()))
		panic("unreachable")
	}
}
