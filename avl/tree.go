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
	"errors"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidRange is returned by FindInRange when low > high.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvariant is returned by Check when the tree structure is corrupt.
	ErrInvariant = errors.New("tree invariant violated")
)

// Tree holds the root node of a balanced tree. The zero value is an
// empty tree ready to use.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Height returns the height of the whole tree; 0 when empty.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Clear drops every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
}
