// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script loads YAML operation scripts and replays them against an
// avlset.Set of ints.
//
// A script is a named list of steps. Each step holds exactly one
// operation:
//
//	name: two-child delete
//	steps:
//	  - insert: [5, 3, 8, 1, 4]
//	  - delete: [5]
//	  - expect: [1, 3, 4, 8]
//	  - lower_bound: {key: 2, want: 3}
//	  - upper_bound: {key: 8}    # no want: the end position
//	  - contains: {key: 4, want: true}
//	  - len: 4
//	  - clear: true
//
// A file may hold several scripts as separate YAML documents.
package script

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jba/avlset"
)

// A Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// A Step is one operation. Exactly one field must be set.
type Step struct {
	Insert     []int       `yaml:"insert,omitempty"`
	Delete     []int       `yaml:"delete,omitempty"`
	Expect     *[]int      `yaml:"expect,omitempty"`
	LowerBound *Probe      `yaml:"lower_bound,omitempty"`
	UpperBound *Probe      `yaml:"upper_bound,omitempty"`
	Contains   *Membership `yaml:"contains,omitempty"`
	Len        *int        `yaml:"len,omitempty"`
	Clear      bool        `yaml:"clear,omitempty"`
}

// A Probe asks for the value at a bound of Key. A nil Want means the end
// position.
type Probe struct {
	Key  int  `yaml:"key"`
	Want *int `yaml:"want,omitempty"`
}

type Membership struct {
	Key  int  `yaml:"key"`
	Want bool `yaml:"want"`
}

// Parse decodes every YAML document in r as a Script.
func Parse(r io.Reader) ([]*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var scripts []*Script
	for {
		sc := new(Script)
		err := dec.Decode(sc)
		if err == io.EOF {
			return scripts, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "script %d", len(scripts)+1)
		}
		for i, st := range sc.Steps {
			if n := st.ops(); n != 1 {
				return nil, errors.Errorf("%s: step %d has %d operations, want 1", sc, i+1, n)
			}
		}
		scripts = append(scripts, sc)
	}
}

// Load reads and parses the scripts in the named file.
func Load(path string) ([]*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scripts, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return scripts, nil
}

func (sc *Script) String() string {
	if sc.Name == "" {
		return "unnamed script"
	}
	return fmt.Sprintf("script %q", sc.Name)
}

func (st Step) ops() int {
	n := 0
	for _, set := range []bool{
		st.Insert != nil,
		st.Delete != nil,
		st.Expect != nil,
		st.LowerBound != nil,
		st.UpperBound != nil,
		st.Contains != nil,
		st.Len != nil,
		st.Clear,
	} {
		if set {
			n++
		}
	}
	return n
}

// Replay runs the steps of sc against s, checking s's structure after
// every step. It stops at the first failed expectation.
func (sc *Script) Replay(s *avlset.Set[int]) error {
	for i, st := range sc.Steps {
		if err := st.apply(s); err != nil {
			return errors.Wrapf(err, "%s: step %d", sc, i+1)
		}
		if err := s.Check(); err != nil {
			return errors.Wrapf(err, "%s: step %d", sc, i+1)
		}
	}
	return nil
}

func (st Step) apply(s *avlset.Set[int]) error {
	switch {
	case st.Insert != nil:
		for _, v := range st.Insert {
			if _, err := s.Insert(v); err != nil {
				return err
			}
		}
	case st.Delete != nil:
		for _, v := range st.Delete {
			s.Delete(v)
		}
	case st.Expect != nil:
		got := slices.Collect(s.All())
		if !slices.Equal(got, *st.Expect) {
			return errors.Errorf("got %v, want %v", got, *st.Expect)
		}
	case st.LowerBound != nil:
		return st.LowerBound.check("lower_bound", s.LowerBound(st.LowerBound.Key))
	case st.UpperBound != nil:
		return st.UpperBound.check("upper_bound", s.UpperBound(st.UpperBound.Key))
	case st.Contains != nil:
		if got := s.Contains(st.Contains.Key); got != st.Contains.Want {
			return errors.Errorf("contains(%d) = %t, want %t", st.Contains.Key, got, st.Contains.Want)
		}
	case st.Len != nil:
		if got := s.Len(); got != *st.Len {
			return errors.Errorf("len = %d, want %d", got, *st.Len)
		}
	case st.Clear:
		s.Clear()
	}
	return nil
}

func (p *Probe) check(op string, it avlset.Iterator[int]) error {
	switch {
	case p.Want == nil && !it.Done():
		return errors.Errorf("%s(%d) = %d, want end", op, p.Key, it.Value())
	case p.Want != nil && it.Done():
		return errors.Errorf("%s(%d) = end, want %d", op, p.Key, *p.Want)
	case p.Want != nil && it.Value() != *p.Want:
		return errors.Errorf("%s(%d) = %d, want %d", op, p.Key, it.Value(), *p.Want)
	}
	return nil
}
