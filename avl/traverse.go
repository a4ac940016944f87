// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Branch tells which child slot of its parent a node occupies.
type Branch int

const (
	BranchRoot Branch = iota
	BranchLeft
	BranchRight
)

// Prefix is the label Print writes in front of a node's key.
func (b Branch) Prefix() string {
	switch b {
	case BranchLeft:
		return "L--- "
	case BranchRight:
		return "R--- "
	default:
		return "Root: "
	}
}

// Entry describes one node as seen by Traverse. It is meant for
// diagnostics and is not a serialization format.
type Entry[K cmp.Ordered] struct {
	Key    K
	Height int
	Depth  int
	Branch Branch
}

// Traverse yields every node in pre-order (node, left, right).
func (t *Tree[K]) Traverse() iter.Seq[Entry[K]] {
	return func(yield func(Entry[K]) bool) {
		preOrder(t.root, 0, BranchRoot, yield)
	}
}

func preOrder[K cmp.Ordered](node *Node[K], depth int, br Branch, yield func(Entry[K]) bool) bool {
	if node == nil {
		return true
	}
	if !yield(Entry[K]{Key: node.key, Height: node.height, Depth: depth, Branch: br}) {
		return false
	}
	if !preOrder(node.left, depth+1, BranchLeft, yield) {
		return false
	}
	return preOrder(node.right, depth+1, BranchRight, yield)
}

// Keys yields the keys in ascending order.
func (t *Tree[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder[K cmp.Ordered](node *Node[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	if !inOrder(node.left, yield) {
		return false
	}
	if !yield(node.key) {
		return false
	}
	return inOrder(node.right, yield)
}

// Print writes an indented dump of the tree, one node per line:
//
//	Root: 20 (h=2)
//	    L--- 10 (h=1)
//	    R--- 30 (h=1)
func (t *Tree[K]) Print(w io.Writer) error {
	for e := range t.Traverse() {
		if _, err := fmt.Fprintf(w, "%s%s%v (h=%d)\n", strings.Repeat(" ", e.Depth*4), e.Branch.Prefix(), e.Key, e.Height); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Print dump.
func (t *Tree[K]) String() string {
	var b strings.Builder
	_ = t.Print(&b)
	return b.String()
}
