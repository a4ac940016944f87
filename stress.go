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
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
)

type StressReport struct {
	Operations  int
	Inserts     int
	Duplicates  int
	Deletes     int
	Misses      int
	Checks      int
	FinalLen    int
	FinalHeight int
}

func (r StressReport) String() string {
	return fmt.Sprintf("%d operations: %d inserts (%d duplicates), %d deletes (%d misses), %d checks passed\nfinal tree: %d keys, height %d",
		r.Operations, r.Inserts, r.Duplicates, r.Deletes, r.Misses, r.Checks, r.FinalLen, r.FinalHeight)
}

func newStressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("🌳 Balancing..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Printf("\n✅ Stress run completed!\n")
		}),
	)
}

// verify compares the tree against the reference key set
func verify(tree *avl.Tree[int], present map[int]struct{}) error {
	if err := tree.Check(); err != nil {
		return err
	}
	if tree.Len() != len(present) {
		return fmt.Errorf("tree holds %d keys, expected %d", tree.Len(), len(present))
	}
	for k := range present {
		if tree.DepthOf(k) < 0 {
			return fmt.Errorf("key %d missing from tree", k)
		}
	}
	return nil
}

// runStress applies random inserts and deletes, two inserts for every
// delete, verifying the tree every CheckEvery operations and at the end.
// bar may be nil.
func runStress(config StressConfig, rng *rand.Rand, bar *progressbar.ProgressBar) (StressReport, error) {
	report := StressReport{}
	if config.KeySpace <= 0 {
		return report, fmt.Errorf("key space must be positive, got %d", config.KeySpace)
	}

	tree := avl.New[int]()
	present := map[int]struct{}{}

	for i := 1; i <= config.Operations; i++ {
		k := rng.IntN(config.KeySpace)
		if rng.IntN(3) == 0 {
			report.Deletes++
			if !tree.Delete(k) {
				report.Misses++
			}
			delete(present, k)
		} else {
			report.Inserts++
			err := tree.Insert(k)
			if errors.Is(err, avl.ErrDuplicateKey) {
				report.Duplicates++
			} else if err != nil {
				return report, err
			}
			present[k] = struct{}{}
		}
		report.Operations++

		if config.CheckEvery > 0 && i%config.CheckEvery == 0 {
			if err := verify(tree, present); err != nil {
				return report, fmt.Errorf("after %d operations: %w", i, err)
			}
			report.Checks++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err := verify(tree, present); err != nil {
		return report, fmt.Errorf("after %d operations: %w", report.Operations, err)
	}
	report.Checks++

	want := make([]int, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	slices.Sort(want)
	if got := slices.Collect(tree.Keys()); !slices.Equal(got, want) {
		return report, errors.New("in-order keys differ from the reference set")
	}

	report.FinalLen = tree.Len()
	report.FinalHeight = tree.Height()
	if bar != nil {
		_ = bar.Finish()
	}
	return report, nil
}
