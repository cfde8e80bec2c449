// Copyright 2026 The my-binary-search-tree Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bst_test

import (
	"fmt"

	bst "github.com/Noxtal/my-binary-search-tree"
)

func Example() {
	tree := bst.New(5.0)
	tree.Insert(3)
	tree.Insert(8)
	fmt.Println(tree.InOrder(nil))
	fmt.Println(tree.Has(3), tree.Has(4))
	h, _ := tree.Height()
	fmt.Println(h)
	balanced, _ := tree.IsBalanced()
	fmt.Println(balanced)

	// Output:
	// [8 5 3]
	// true false
	// 9
	// true
}

func ExampleNode_MakeIter() {
	tree := bst.New(0.5)
	for _, v := range []float64{0.25, 0.75, 0.5} {
		tree.Insert(v)
	}
	it := tree.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Cur())
	}

	// Output:
	// 0.75
	// 0.5
	// 0.5
	// 0.25
}
