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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func build(t *testing.T, keys ...int) *avl.Tree[int] {
	t.Helper()
	tree := avl.New[int]()
	for _, k := range keys {
		require.NoError(t, tree.Insert(k))
		require.NoError(t, tree.Check())
	}
	return tree
}

// preorder keys, enough to pin down the shape of small trees
func shape(tree *avl.Tree[int]) []int {
	var keys []int
	for e := range tree.Traverse() {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestInsertSingleLeftRotation(t *testing.T) {
	tree := build(t, 10, 20, 30)

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 20, root.Key())
	assert.Equal(t, 2, root.Height())
	require.NotNil(t, root.Left())
	require.NotNil(t, root.Right())
	assert.Equal(t, 10, root.Left().Key())
	assert.Equal(t, 30, root.Right().Key())
	assert.Equal(t, 1, root.Left().Height())
	assert.Equal(t, 1, root.Right().Height())
}

func TestInsertRightLeftRotation(t *testing.T) {
	tree := build(t, 10, 30, 20)

	root := tree.Root()
	assert.Equal(t, 20, root.Key())
	assert.Equal(t, 10, root.Left().Key())
	assert.Equal(t, 30, root.Right().Key())
	assert.Equal(t, 2, tree.Height())
}

func TestInsertRotationCases(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int
		Expected []int
	}{
		{Name: "Left-Left", Keys: []int{30, 20, 10}, Expected: []int{20, 10, 30}},
		{Name: "Right-Right", Keys: []int{10, 20, 30}, Expected: []int{20, 10, 30}},
		{Name: "Left-Right", Keys: []int{30, 10, 20}, Expected: []int{20, 10, 30}},
		{Name: "Right-Left", Keys: []int{10, 30, 20}, Expected: []int{20, 10, 30}},
		{Name: "No rotation", Keys: []int{20, 10, 30, 5}, Expected: []int{20, 10, 5, 30}},
		{Name: "Rotation below root", Keys: []int{20, 10, 30, 40, 50}, Expected: []int{20, 10, 40, 30, 50}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := build(t, tc.Keys...)
			assert.Equal(t, tc.Expected, shape(tree))
			assert.Equal(t, len(tc.Keys), tree.Len())
		})
	}
}

func TestDeleteRotationCases(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int
		Delete   int
		Expected []int
	}{
		{Name: "Right rotation, left child balanced", Keys: []int{20, 10, 30, 5, 15}, Delete: 30, Expected: []int{10, 5, 20, 15}},
		{Name: "Right rotation, left child left-heavy", Keys: []int{20, 10, 30, 5}, Delete: 30, Expected: []int{10, 5, 20}},
		{Name: "Left-Right", Keys: []int{20, 10, 30, 15}, Delete: 30, Expected: []int{15, 10, 20}},
		{Name: "Left rotation, right child balanced", Keys: []int{20, 10, 30, 25, 40}, Delete: 10, Expected: []int{30, 20, 25, 40}},
		{Name: "Left rotation, right child right-heavy", Keys: []int{20, 10, 30, 40}, Delete: 10, Expected: []int{30, 20, 40}},
		{Name: "Right-Left", Keys: []int{20, 10, 30, 25}, Delete: 10, Expected: []int{25, 20, 30}},
		{Name: "Two children uses successor", Keys: []int{20, 10, 30, 25, 40}, Delete: 20, Expected: []int{25, 10, 30, 40}},
		{Name: "Leaf", Keys: []int{20, 10, 30}, Delete: 30, Expected: []int{20, 10}},
		{Name: "Last key", Keys: []int{20}, Delete: 20, Expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := build(t, tc.Keys...)
			assert.True(t, tree.Delete(tc.Delete))
			require.NoError(t, tree.Check())
			assert.Equal(t, tc.Expected, shape(tree))
			assert.Equal(t, len(tc.Keys)-1, tree.Len())
			assert.Equal(t, -1, tree.DepthOf(tc.Delete))
		})
	}
}

func TestInsertDeleteRangeDepth(t *testing.T) {
	tree := build(t, 9, 5, 10, 0, 6, 11, -1, 1, 2)
	assert.Equal(t, []int{9, 1, 0, -1, 5, 2, 6, 10, 11}, shape(tree))

	for _, k := range []int{10, 11} {
		require.True(t, tree.Delete(k))
		require.NoError(t, tree.Check())
	}

	found, err := tree.FindInRange(1, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5, 6, 9}, found)

	// 1 -> 5 -> 9 -> 6
	assert.Equal(t, 3, tree.DepthOf(6))
	assert.Equal(t, 0, tree.DepthOf(1))
	assert.Equal(t, 4, tree.Height())

	want := "Root: 1 (h=4)\n" +
		"    L--- 0 (h=2)\n" +
		"        L--- -1 (h=1)\n" +
		"    R--- 5 (h=3)\n" +
		"        L--- 2 (h=1)\n" +
		"        R--- 9 (h=2)\n" +
		"            L--- 6 (h=1)\n"
	assert.Equal(t, want, tree.String())
}

func TestDuplicateInsertLeavesTreeUnchanged(t *testing.T) {
	tree := build(t, 9, 5, 10, 0, 6)
	before := tree.String()

	err := tree.Insert(6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, avl.ErrDuplicateKey))
	assert.Contains(t, err.Error(), "6")

	assert.Equal(t, before, tree.String())
	assert.Equal(t, 5, tree.Len())
	require.NoError(t, tree.Check())
}

func TestDeleteAbsentKey(t *testing.T) {
	empty := avl.New[int]()
	assert.False(t, empty.Delete(1))
	assert.True(t, empty.IsEmpty())

	tree := build(t, 2, 1, 3)
	before := tree.String()
	assert.False(t, tree.Delete(4))
	assert.Equal(t, before, tree.String())
	assert.Equal(t, 3, tree.Len())
}

func TestFindInRange(t *testing.T) {
	tree := build(t, 50, 20, 80, 10, 30, 70, 90, 25)

	testCases := []struct {
		Name      string
		Low, High int
		Expected  []int
	}{
		{Name: "Inclusive bounds", Low: 20, High: 70, Expected: []int{20, 25, 30, 50, 70}},
		{Name: "Single key", Low: 30, High: 30, Expected: []int{30}},
		{Name: "Everything", Low: -100, High: 100, Expected: []int{10, 20, 25, 30, 50, 70, 80, 90}},
		{Name: "Gap", Low: 31, High: 49, Expected: []int{}},
		{Name: "Below all", Low: 0, High: 5, Expected: []int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			found, err := tree.FindInRange(tc.Low, tc.High)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, tc.Expected, found)
		})
	}

	_, err := tree.FindInRange(10, 5)
	assert.ErrorIs(t, err, avl.ErrInvalidRange)

	found, err := avl.New[int]().FindInRange(1, 2)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDepthOf(t *testing.T) {
	tree := build(t, 20, 10, 30, 5)
	assert.Equal(t, 0, tree.DepthOf(20))
	assert.Equal(t, 1, tree.DepthOf(10))
	assert.Equal(t, 1, tree.DepthOf(30))
	assert.Equal(t, 2, tree.DepthOf(5))
	assert.Equal(t, -1, tree.DepthOf(7))
	assert.Equal(t, -1, avl.New[int]().DepthOf(7))
	assert.True(t, tree.Contains(5))
	assert.False(t, tree.Contains(6))
}

func TestMinMax(t *testing.T) {
	tree := avl.New[int]()
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	tree = build(t, 7, 3, 9, 1, 12)
	lo, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 12, hi)
}

func TestStringKeys(t *testing.T) {
	tree := avl.New[string]()
	for _, k := range []string{"cherry", "banana", "apple", "date"} {
		require.NoError(t, tree.Insert(k))
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, []string{"apple", "banana", "cherry", "date"}, slices.Collect(tree.Keys()))

	found, err := tree.FindInRange("b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"banana"}, found)
}

func TestTraverseStopsEarly(t *testing.T) {
	tree := build(t, 4, 2, 6, 1, 3, 5, 7)

	var seen []avl.Entry[int]
	for e := range tree.Traverse() {
		seen = append(seen, e)
		if len(seen) == 3 {
			break
		}
	}
	require.Len(t, seen, 3)
	assert.Equal(t, avl.Entry[int]{Key: 4, Height: 3, Depth: 0, Branch: avl.BranchRoot}, seen[0])
	assert.Equal(t, avl.Entry[int]{Key: 2, Height: 2, Depth: 1, Branch: avl.BranchLeft}, seen[1])
	assert.Equal(t, avl.Entry[int]{Key: 1, Height: 1, Depth: 2, Branch: avl.BranchLeft}, seen[2])

	var keys []int
	for k := range tree.Keys() {
		if k > 3 {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2, 3}, keys)
}

func TestClear(t *testing.T) {
	tree := build(t, 1, 2, 3)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, "", tree.String())
	require.NoError(t, tree.Insert(1))
	assert.Equal(t, 1, tree.Len())
}
