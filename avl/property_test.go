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

package avl_test

import (
	"errors"
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// random inserts and deletes against a map of the expected key set
func TestRandomOperations(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 1234} {
		rng := rand.New(rand.NewPCG(seed, seed))
		tree := avl.New[int]()
		present := map[int]struct{}{}

		for i := 0; i < 3000; i++ {
			k := rng.IntN(500)
			if rng.IntN(3) == 0 {
				_, had := present[k]
				require.Equal(t, had, tree.Delete(k), "delete %d", k)
				delete(present, k)
			} else {
				err := tree.Insert(k)
				if _, had := present[k]; had {
					require.ErrorIs(t, err, avl.ErrDuplicateKey)
				} else {
					require.NoError(t, err)
				}
				present[k] = struct{}{}
			}

			if i%50 == 0 {
				require.NoError(t, tree.Check(), "seed %d op %d", seed, i)
			}
		}

		require.NoError(t, tree.Check())
		require.Equal(t, len(present), tree.Len())
		assert.Equal(t, sortedKeys(present), slices.Collect(tree.Keys()))

		// an AVL tree with n nodes is never taller than ~1.44 log2(n+2)
		if n := tree.Len(); n > 0 {
			limit := 3 * bits.Len(uint(n)) / 2
			assert.LessOrEqual(t, tree.Height(), limit+1)
		}
	}
}

func TestSequentialInsertStaysBalanced(t *testing.T) {
	ascending := avl.New[int]()
	descending := avl.New[int]()
	for i := 0; i < 1023; i++ {
		require.NoError(t, ascending.Insert(i))
		require.NoError(t, descending.Insert(1022-i))
	}
	require.NoError(t, ascending.Check())
	require.NoError(t, descending.Check())

	// 2^10 - 1 keys inserted in order build a perfect tree
	assert.Equal(t, 10, ascending.Height())
	assert.Equal(t, 10, descending.Height())

	for i := 0; i < 1023; i += 2 {
		require.True(t, ascending.Delete(i))
	}
	require.NoError(t, ascending.Check())
	assert.Equal(t, 511, ascending.Len())
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	tree := avl.New[int]()
	for _, k := range rng.Perm(200) {
		require.NoError(t, tree.Insert(k*2))
	}
	before := slices.Collect(tree.Keys())

	for i := 0; i < 100; i++ {
		k := rng.IntN(400)*2 + 1 // odd keys are never present
		require.NoError(t, tree.Insert(k))
		require.True(t, tree.Delete(k))
		require.NoError(t, tree.Check())
		require.Equal(t, before, slices.Collect(tree.Keys()))
	}
}

func TestRangeMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	tree := avl.New[int]()
	var all []int
	for _, k := range rng.Perm(300) {
		if k%3 == 0 {
			continue
		}
		require.NoError(t, tree.Insert(k))
		all = append(all, k)
	}
	slices.Sort(all)

	for i := 0; i < 200; i++ {
		low := rng.IntN(320) - 10
		high := low + rng.IntN(60)

		want := []int{}
		for _, k := range all {
			if k >= low && k <= high {
				want = append(want, k)
			}
		}
		got, err := tree.FindInRange(low, high)
		require.NoError(t, err)
		require.Equal(t, want, got, "range [%d, %d]", low, high)
	}
}

func TestDepthMatchesTraverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	tree := avl.New[int]()
	for _, k := range rng.Perm(256) {
		require.NoError(t, tree.Insert(k))
	}
	for k := 0; k < 256; k += 3 {
		tree.Delete(k)
	}
	for e := range tree.Traverse() {
		require.Equal(t, e.Depth, tree.DepthOf(e.Key))
		require.Less(t, e.Depth, tree.Height())
	}
	assert.Equal(t, -1, tree.DepthOf(0))
	assert.False(t, errors.Is(tree.Check(), avl.ErrInvariant))
}
