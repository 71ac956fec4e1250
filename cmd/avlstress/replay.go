// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/anacrolix/log"
	"github.com/pkg/errors"

	"github.com/jba/avlset"
	"github.com/jba/avlset/internal/script"
)

func replayErr(logger log.Logger, files []string) error {
	failed := 0
	for _, file := range files {
		scripts, err := script.Load(file)
		if err != nil {
			return err
		}
		for _, sc := range scripts {
			if err := sc.Replay(avlset.New[int]()); err != nil {
				logger.Levelf(log.Error, "%s: %v", file, err)
				failed++
				continue
			}
			logger.Levelf(log.Info, "%s: %s ok", file, sc)
		}
	}
	if failed > 0 {
		return errors.Errorf("%d scripts failed", failed)
	}
	return nil
}

func dumpErr(w io.Writer, cmd *DumpCmd) error {
	s := avlset.New[int]()
	for _, v := range cmd.Values {
		if _, err := s.Insert(v); err != nil {
			return err
		}
	}
	if _, err := s.Print(w, cmd.Stats); err != nil {
		return errors.Wrap(err, "printing tree")
	}
	return nil
}
