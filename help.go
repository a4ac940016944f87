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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// sessionHelpMarkdown lists the session commands, shared with the explore
// help panel
func sessionHelpMarkdown() string {
	return `
# Session commands
* **insert** <key>... : insert keys, rebalancing after each
* **delete** <key>... : delete keys, missing keys are skipped
* **range** <low> <high> : keys k with low <= k <= high, ascending
* **depth** <key> : distance from the root, -1 if absent
* **contains** <key>, **min**, **max**, **len**, **height**
* **print** : the tree with the cached height of every node
* **keys** : every key in ascending order
* **check** : verify ordering, balance and cached heights
* **stats**, **clear**, **help**, **quit**
`
}

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A height-balanced binary search tree you can poke at from the terminal.
Every insert and delete is followed by the rotations that keep the tree balanced.

Built with Go %s

# 1. Commands
* **avltree shell** : line-oriented session (default)
* **avltree explore** : interactive viewer, tree redrawn after every command
* **avltree exec "insert 1 2 3; print"** : run commands and exit
* **avltree demo** : single rotation, double rotation and a random tree
* **avltree scenario** : insert, delete, range and depth walkthrough
* **avltree stress** : randomized inserts and deletes with invariant checks
* **avltree settings** : show or create ~/.avltree.yaml
%s
# 2. Duplicate keys
Inserting a key that is already present is an error unless
*tree.ignore_duplicates* is enabled in the configuration.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), sessionHelpMarkdown())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
