// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlset_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/jba/avlset"
	"github.com/jba/avlset/rng"
)

func ExampleSet_All() {
	s := avlset.New[int]()
	for _, v := range []int{13, 7, -12432, 56, 23554} {
		s.Insert(v)
	}

	for v := range s.All() {
		fmt.Println(v)
	}

	// Output:
	// -12432
	// 7
	// 13
	// 56
	// 23554
}

func ExampleSet_LowerBound() {
	s := avlset.New[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		s.Insert(v)
	}
	s.Delete(5)

	for it := s.LowerBound(2); it != s.End(); it = it.Next() {
		fmt.Println(it.Value())
	}
	fmt.Println(s.UpperBound(8).Done())

	// Output:
	// 3
	// 4
	// 8
	// true
}

func ExampleSet_Scan() {
	s := avlset.New[string]()
	for _, v := range strings.Fields("one two three four five") {
		s.Insert(v)
	}

	for v := range s.Scan(rng.Above("four").Below("tw").Backwards()) {
		fmt.Println(v)
	}

	// Output:
	// three
	// one
}

func ExampleNewFunc() {
	s := avlset.NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for _, v := range []string{"b", "A", "B", "c"} {
		s.Insert(v)
	}
	fmt.Println(s)

	// Output:
	// {A b c}
}

func ExampleSet_At() {
	s := avlset.New[int]()
	for v := range 10 {
		s.Insert(v * v)
	}
	v, _ := s.At(3)
	fmt.Println(v, s.Rank(v), s.Rank(10))

	// Output:
	// 9 3 4
}

func ExampleSet_Print() {
	s := avlset.New[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		s.Insert(v)
	}
	s.Print(os.Stdout, false)

	// Output:
	//               /------+ 7
	//        /------+ 6
	//        |      \------+ 5
	// |------+ 4
	//        |      /------+ 3
	//        \------+ 2
	//               \------+ 1
}

func ExampleArena() {
	a := avlset.NewArena[int](2)
	s := avlset.New(avlset.WithAllocator[int](a))
	for _, v := range []int{1, 2, 3} {
		if _, err := s.Insert(v); err != nil {
			fmt.Println(err)
		}
	}
	fmt.Println(s, a.Available())

	// Output:
	// avlset: allocating node: arena exhausted
	// {1 2} 0
}
