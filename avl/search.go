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
)

// FindInRange returns, in ascending order, every key k with
// low <= k <= high. The result is empty, not nil, when nothing matches.
// low > high is a caller error and returns ErrInvalidRange.
func (t *Tree[K]) FindInRange(low, high K) ([]K, error) {
	if low > high {
		return nil, fmt.Errorf("%w: low %v is greater than high %v", ErrInvalidRange, low, high)
	}
	results := []K{}
	rangeSearch(t.root, low, high, &results)
	return results, nil
}

// rangeSearch only descends into subtrees that can still hold keys in
// [low, high].
func rangeSearch[K cmp.Ordered](node *Node[K], low, high K, results *[]K) {
	if node == nil {
		return
	}
	if low < node.key {
		rangeSearch(node.left, low, high, results)
	}
	if low <= node.key && node.key <= high {
		*results = append(*results, node.key)
	}
	if high > node.key {
		rangeSearch(node.right, low, high, results)
	}
}

// DepthOf returns the distance of key from the root (the root is at
// depth 0), or -1 if the key is not in the tree.
func (t *Tree[K]) DepthOf(key K) int {
	depth := 0
	for node := t.root; node != nil; depth++ {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return depth
		}
	}
	return -1
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.DepthOf(key) >= 0
}

// Min returns the lowest key; ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	n := t.root.first()
	if n == nil {
		return key, false
	}
	return n.key, true
}

// Max returns the highest key; ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	n := t.root.last()
	if n == nil {
		return key, false
	}
	return n.key, true
}
