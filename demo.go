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

package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/cybrota/avltree/avl"
)

const demoSeparator = "---------------"

// insertAndPrint shows the tree after every single insert
func insertAndPrint(w io.Writer, tree *avl.Tree[int], keys []int) error {
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			return err
		}
		if err := tree.Print(w); err != nil {
			return err
		}
		fmt.Fprintln(w, demoSeparator)
	}
	return nil
}

// sampleKeys picks count distinct keys from [low, high)
func sampleKeys(rng *rand.Rand, count, low, high int) []int {
	perm := rng.Perm(high - low)[:count]
	for i := range perm {
		perm[i] += low
	}
	return perm
}

// runDemo walks through a single rotation, a double rotation and a
// randomly filled tree.
func runDemo(w io.Writer, config DemoConfig, rng *rand.Rand) error {
	if config.RandomMax-config.RandomMin < config.RandomCount || config.RandomCount < 0 {
		return fmt.Errorf("cannot sample %d distinct keys from [%d, %d)", config.RandomCount, config.RandomMin, config.RandomMax)
	}

	fmt.Fprintf(w, "\n%s=== FIXED VALUES ===%s\n", Info, Reset)

	fmt.Fprintf(w, "\nCase 1: inserting [10, 20, 30] (single rotation)\n")
	if err := insertAndPrint(w, avl.New[int](), []int{10, 20, 30}); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCase 2: inserting [10, 30, 20] (double rotation)\n")
	if err := insertAndPrint(w, avl.New[int](), []int{10, 30, 20}); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s=== RANDOM VALUES ===%s\n", Info, Reset)
	values := sampleKeys(rng, config.RandomCount, config.RandomMin, config.RandomMax)
	fmt.Fprintf(w, "Inserting: %v\n", values)

	tree := avl.New[int]()
	for _, k := range values {
		if err := tree.Insert(k); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nFinal balanced tree:\n")
	return tree.Print(w)
}

// ScenarioOptions drives runScenario
type ScenarioOptions struct {
	Insert    []int
	Delete    []int
	RangeLow  int
	RangeHigh int
	Depth     int
}

var defaultScenario = ScenarioOptions{
	Insert:    []int{9, 5, 10, 0, 6, 11, -1, 1, 2},
	Delete:    []int{10, 11},
	RangeLow:  1,
	RangeHigh: 9,
	Depth:     6,
}

// runScenario inserts, deletes, then queries a range and a depth. A failing
// step is reported and the remaining steps still run.
func runScenario(w io.Writer, opts ScenarioOptions) *avl.Tree[int] {
	tree := avl.New[int]()

	fmt.Fprintf(w, "\n--- 1. Inserting keys %v ---\n", opts.Insert)
	if err := insertAll(tree, opts.Insert); err != nil {
		fmt.Fprintf(w, "%sERROR during insert: %v%s\n", Error, err, Reset)
	} else {
		fmt.Fprintf(w, "%sInsert complete.%s\n", Green, Reset)
	}

	fmt.Fprintf(w, "\n--- 2. Deleting keys %v ---\n", opts.Delete)
	missing := 0
	for _, k := range opts.Delete {
		if !tree.Delete(k) {
			missing++
		}
	}
	if missing > 0 {
		fmt.Fprintf(w, "%sDelete complete, %d keys not found.%s\n", Warning, missing, Reset)
	} else {
		fmt.Fprintf(w, "%sDelete complete.%s\n", Green, Reset)
	}

	fmt.Fprintf(w, "\n--- 3. Keys in range [%d, %d] ---\n", opts.RangeLow, opts.RangeHigh)
	if found, err := tree.FindInRange(opts.RangeLow, opts.RangeHigh); err != nil {
		fmt.Fprintf(w, "%sERROR: %v%s\n", Error, err, Reset)
	} else {
		fmt.Fprintf(w, "Keys found: %v\n", found)
	}

	fmt.Fprintf(w, "\n--- 4. Depth of key %d ---\n", opts.Depth)
	fmt.Fprintf(w, "Depth of key %d: %d\n", opts.Depth, tree.DepthOf(opts.Depth))

	fmt.Fprintf(w, "\nResulting tree:\n")
	_ = tree.Print(w)
	return tree
}

func insertAll(tree *avl.Tree[int], keys []int) error {
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			return err
		}
	}
	return nil
}
