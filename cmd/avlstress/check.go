// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/jba/avlset/internal/stress"
)

func checkErr(ctx context.Context, logger log.Logger, cmd *CheckCmd) error {
	cfg := stress.Config{
		Seed:       cmd.Seed,
		Ops:        cmd.Ops,
		Keys:       cmd.Keys,
		EraseRatio: cmd.EraseRatio,
		CheckEvery: cmd.CheckEvery,
		Arena:      cmd.Arena,
		Verbose:    flags.Verbose,
	}
	if cfg.EraseRatio < 0 || cfg.EraseRatio > 1 {
		return errors.Errorf("erase ratio %v not in [0, 1]", cfg.EraseRatio)
	}
	logger.Levelf(log.Info, "seed %d: %s ops over %s keys", cfg.Seed,
		humanize.Comma(int64(cfg.Ops)), humanize.Comma(int64(cfg.Keys)))
	start := time.Now()
	rep, err := stress.Run(ctx, cfg, logger.WithNames("stress"))
	if errors.Is(err, context.Canceled) {
		logger.Levelf(log.Warning, "interrupted after %s ops", humanize.Comma(int64(rep.Ops)))
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "seed %d", cfg.Seed)
	}
	logger.Levelf(log.Info, "ok: %s ops in %v (%s inserts, %s deletes, %s queries)",
		humanize.Comma(int64(rep.Ops)), time.Since(start).Round(time.Millisecond),
		humanize.Comma(int64(rep.Inserts)), humanize.Comma(int64(rep.Deletes)),
		humanize.Comma(int64(rep.Queries)))
	logger.Levelf(log.Info, "final len %s, height %d (max %d, bound %d)",
		humanize.Comma(int64(rep.Len)), rep.Height, rep.MaxHeight, stress.MaxHeight(rep.Len))
	if rep.Exhausted > 0 {
		logger.Levelf(log.Warning, "arena refused %s inserts", humanize.Comma(int64(rep.Exhausted)))
	}
	return nil
}
