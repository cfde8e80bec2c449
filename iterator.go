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

package bst

// Iterator walks a tree in order: left subtree, node, right subtree. It
// keeps its path in an explicit stack so skewed trees do not grow the
// goroutine stack. The tree must not be modified while iterating.
type Iterator[T Number] struct {
	root  *Node[T]
	cur   *Node[T]
	depth int
	s     walkStack[T]
}

// MakeIter returns an Iterator over the tree rooted at n. It is not
// positioned; call First.
func (n *Node[T]) MakeIter() Iterator[T] {
	return Iterator[T]{root: n}
}

// First positions the Iterator at the leftmost node.
func (it *Iterator[T]) First() {
	it.s.reset()
	if it.root != nil {
		it.s.push(it.root, 0)
	}
	it.Next()
}

// Next advances to the following node in order. Once the walk is exhausted
// the Iterator becomes invalid.
func (it *Iterator[T]) Next() {
	it.cur, it.depth = nil, 0
	for it.s.len() > 0 {
		f := it.s.top()
		switch f.phase {
		case phaseLeft:
			f.phase = phaseNode
			if f.left != nil {
				it.s.push(f.left, f.depth+1)
			}
		case phaseNode:
			f.phase = phaseRight
			it.cur, it.depth = f.Node, f.depth
			return
		default:
			// The finished frame is replaced by its right subtree.
			done := it.s.pop()
			if done.right != nil {
				it.s.push(done.right, done.depth+1)
			}
		}
	}
}

// Valid returns whether the Iterator is positioned at a node.
func (it *Iterator[T]) Valid() bool {
	return it.cur != nil
}

// Cur returns the value at the current position. It is illegal to call Cur
// if the Iterator is not valid.
func (it *Iterator[T]) Cur() T {
	return it.cur.value
}

// Depth returns the number of edges between the tree's root and the current
// node. It is illegal to call Depth if the Iterator is not valid.
func (it *Iterator[T]) Depth() int {
	return it.depth
}
