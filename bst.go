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

// Package bst implements an unbalanced binary tree over numeric values.
//
// The branch rule is inverted relative to the usual convention: a value
// descends to the left of a node whose value is less than it and to the
// right otherwise. InOrder therefore reflects the physical shape of the
// tree and is not sorted ascending in general.
package bst

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// ErrHeightOverflow is returned when the result of Height, or a child value
// it is computed from, cannot be represented as an int32.
var ErrHeightOverflow = errors.New("bst: height not representable as int32")

// DrawMargin is the number of spaces Draw adds per level.
const DrawMargin = 5

// Node is a tree node. Each node exclusively owns its children; the zero
// value is not useful, use New.
type Node[T Number] struct {
	value       T
	left, right *Node[T]
}

// New returns a single-node tree holding v.
func New[T Number](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the value stored at n.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Insert attaches v as a new leaf. Starting at n, v goes left of any node
// whose value is less than v and right otherwise. Equal values are kept.
func (n *Node[T]) Insert(v T) {
	for {
		next := &n.right
		if n.value < v {
			next = &n.left
		}
		if *next == nil {
			*next = New(v)
			return
		}
		n = *next
	}
}

// Has reports whether v is stored on the path Insert would take for v.
func (n *Node[T]) Has(v T) bool {
	for n != nil {
		if n.value == v {
			return true
		}
		if n.value < v {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// InOrder appends the left subtree, n, and the right subtree to dst and
// returns the extended slice.
func (n *Node[T]) InOrder(dst []T) []T {
	it := n.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		dst = append(dst, it.Cur())
	}
	return dst
}

// Len returns the number of nodes in the tree rooted at n.
func (n *Node[T]) Len() int {
	var count int
	it := n.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		count++
	}
	return count
}

// Height returns one more than the larger of the two children's stored
// values, where an absent child counts as zero.
//
// Note that this is not the depth of the tree: it looks at the immediate
// children's values, not at their heights. IsBalanced is defined in terms
// of it.
func (n *Node[T]) Height() (int, error) {
	var lq, rq T
	if n.left != nil {
		lq = n.left.value
	}
	if n.right != nil {
		rq = n.right.value
	}
	q := rq
	if lq >= rq {
		q = lq
	}
	h, err := toInt32(q)
	if err != nil {
		return 0, err
	}
	if h == math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v+1", ErrHeightOverflow, q)
	}
	return int(h) + 1, nil
}

// IsBalanced reports whether the Height of the two children differs by at
// most one and both children are themselves balanced. An absent child has
// height 0 and is balanced. The receiver's own Height is never computed.
//
// Every node is visited even once an imbalance is found, so a Height error
// anywhere below n is always reported. Children are checked left before
// right, each child's Height before its subtree.
func (n *Node[T]) IsBalanced() (bool, error) {
	balanced := true
	ws := walkStack[T]{}
	ws.push(n, 0)
	for ws.len() > 0 {
		f := ws.top()
		switch f.phase {
		case phaseLeft:
			f.phase = phaseNode
			if f.left != nil {
				h, err := f.left.Height()
				if err != nil {
					return false, err
				}
				f.leftHeight = h
				ws.push(f.left, f.depth+1)
			}
		case phaseNode:
			f.phase = phaseRight
			var rightHeight int
			if f.right != nil {
				h, err := f.right.Height()
				if err != nil {
					return false, err
				}
				rightHeight = h
			}
			d := f.leftHeight - rightHeight
			if d < -1 || d > 1 {
				balanced = false
			}
			if f.right != nil {
				ws.push(f.right, f.depth+1)
			}
		default:
			ws.pop()
		}
	}
	return balanced, nil
}

// Draw writes the tree rotated a quarter turn counter-clockwise: the left
// subtree is drawn above its parent and the right subtree below. Each node
// is written on its own line, preceded by indent spaces plus DrawMargin per
// level below n, and followed by a single space.
func (n *Node[T]) Draw(w io.Writer, indent int) error {
	it := n.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		pad := strings.Repeat(" ", indent+it.Depth()*DrawMargin)
		if _, err := fmt.Fprintf(w, "\n%s%v ", pad, it.Cur()); err != nil {
			return err
		}
	}
	return nil
}

// String returns the output of Draw at indent 0.
func (n *Node[T]) String() string {
	var sb strings.Builder
	_ = n.Draw(&sb, 0)
	return sb.String()
}
