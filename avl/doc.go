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

// Package avl implements a height-balanced binary search tree over any
// cmp.Ordered key type.
//
// Every node caches the height of its subtree. After each insert or delete
// the path back to the root is unwound, heights are recomputed and at most
// one single or double rotation per level restores the invariant
// |height(left) - height(right)| <= 1.
//
// Keys are unique. Insert of a key that is already present fails with
// ErrDuplicateKey and leaves the tree untouched; callers wanting lenient
// behaviour can ignore that error with errors.Is.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl
