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

// Delete removes key from the tree and rebalances it. It returns false,
// leaving the tree unchanged, if the key was not present.
func (t *Tree[K]) Delete(key K) bool {
	root, removed := remove(t.root, key)
	if removed {
		t.root = root
		t.count--
	}
	return removed
}

func remove[K cmp.Ordered](node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false // key not found
	}

	removed := false
	switch {
	case key < node.key:
		node.left, removed = remove(node.left, key)
	case key > node.key:
		node.right, removed = remove(node.right, key)
	default:
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}
		// two children: take over the in-order successor's key and
		// delete the successor from the right subtree instead
		successor := node.right.first()
		node.key = successor.key
		node.right, removed = remove(node.right, successor.key)
	}
	if !removed {
		return node, false
	}

	updateHeight(node)
	return rebalance(node), true
}

// rebalance picks the rotation from the children's balance factors, since
// after a delete both the single and double case can occur on either side.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
