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

import "cmp"

// Node is a single key in the tree. Children are owned exclusively by
// their parent; a nil child is an empty subtree.
type Node[K cmp.Ordered] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int // 1 for a leaf
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored at the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Height returns the cached height of the subtree rooted at n.
// A nil node has height 0.
func (n *Node[K]) Height() int {
	return height(n)
}

func height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// positive is left-heavy, negative right-heavy
func balanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func updateHeight[K cmp.Ordered](n *Node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// rotateRight lifts z.left into z's place and returns it.
func rotateRight[K cmp.Ordered](z *Node[K]) *Node[K] {
	y := z.left
	z.left = y.right
	y.right = z

	// z is now below y, so it goes first
	updateHeight(z)
	updateHeight(y)
	return y
}

// rotateLeft lifts z.right into z's place and returns it.
func rotateLeft[K cmp.Ordered](z *Node[K]) *Node[K] {
	y := z.right
	z.right = y.left
	y.left = z

	updateHeight(z)
	updateHeight(y)
	return y
}

// lowest node in a sub-tree
func (n *Node[K]) first() *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[K]) last() *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
