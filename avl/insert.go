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

// Insert adds key to the tree and rebalances it. If the key is already
// present an error wrapping ErrDuplicateKey is returned and the tree is
// left exactly as it was.
func (t *Tree[K]) Insert(key K) error {
	root, err := insert(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	t.count++
	return nil
}

func insert[K cmp.Ordered](node *Node[K], key K) (*Node[K], error) {
	if node == nil {
		return newNode(key), nil
	}

	var err error
	switch {
	case key < node.key:
		node.left, err = insert(node.left, key)
	case key > node.key:
		node.right, err = insert(node.right, key)
	default:
		return node, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if err != nil {
		// nothing below changed
		return node, err
	}

	updateHeight(node)
	balance := balanceFactor(node)

	// only one of the four cases can apply after a single insert, and the
	// inserted key tells which side it went down
	if balance > 1 {
		if key < node.left.key {
			return rotateRight(node), nil
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node), nil
	}
	if balance < -1 {
		if key > node.right.key {
			return rotateLeft(node), nil
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node), nil
	}

	return node, nil
}
