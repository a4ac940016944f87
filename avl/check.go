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

// Check walks the whole tree and verifies ordering, balance, cached
// heights and the key count. The first violation found is returned
// wrapped in ErrInvariant.
func (t *Tree[K]) Check() error {
	count := 0
	if _, err := check(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: counted %d nodes, tree reports %d", ErrInvariant, count, t.count)
	}
	return nil
}

// internal: consistency checker, returns the true height of the subtree.
// lower and upper are exclusive bounds inherited from the ancestors.
func check[K cmp.Ordered](node *Node[K], lower, upper *K, count *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	*count++

	if lower != nil && node.key <= *lower {
		return 0, fmt.Errorf("%w: key %v not above %v", ErrInvariant, node.key, *lower)
	}
	if upper != nil && node.key >= *upper {
		return 0, fmt.Errorf("%w: key %v not below %v", ErrInvariant, node.key, *upper)
	}

	lh, err := check(node.left, lower, &node.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &node.key, upper, count)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: key %v caches height %d, actual %d", ErrInvariant, node.key, node.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: key %v has balance factor %d", ErrInvariant, node.key, bf)
	}
	return h, nil
}
