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
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/avltree/avl"
)

var (
	// ErrQuit is returned by Exec for the quit and exit commands.
	ErrQuit = errors.New("quit")
	// ErrUnknownCommand is returned by Exec for a command it does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned by Exec when a command gets the wrong arguments.
	ErrUsage = errors.New("usage")
)

// Session is one interactive tree: the tree itself plus the lookup
// helpers the shell, exec and explore commands share. Not safe for
// concurrent use.
type Session struct {
	tree   *avl.Tree[int]
	keys   *bloom.BloomFilter // every key ever inserted since the last clear
	ranges *cache.Cache
	config *Config
	styles *TreeStyles // nil prints plain text

	// counters for the stats command
	rangeHits   int
	rangeMisses int
	filterSkips int
}

type sessionCommand struct {
	usage string
	help  string
	run   func(s *Session, args []string) (string, error)
}

var sessionCommands map[string]sessionCommand

func init() {
	sessionCommands = map[string]sessionCommand{
		"insert":   {"insert <key>...", "insert keys, rebalancing after each", (*Session).insert},
		"delete":   {"delete <key>...", "delete keys, missing keys are skipped", (*Session).delete},
		"range":    {"range <low> <high>", "list keys k with low <= k <= high", (*Session).findRange},
		"depth":    {"depth <key>", "depth of a key from the root, -1 if absent", (*Session).depth},
		"contains": {"contains <key>", "report whether a key is stored", (*Session).contains},
		"print":    {"print", "draw the tree with node heights", (*Session).print},
		"keys":     {"keys", "list all keys in ascending order", (*Session).listKeys},
		"min":      {"min", "lowest key", (*Session).min},
		"max":      {"max", "highest key", (*Session).max},
		"len":      {"len", "number of keys", (*Session).length},
		"height":   {"height", "height of the tree", (*Session).height},
		"check":    {"check", "verify ordering, balance and cached heights", (*Session).check},
		"stats":    {"stats", "range cache and key filter counters", (*Session).stats},
		"clear":    {"clear", "remove every key", (*Session).clear},
		"help":     {"help", "list commands", (*Session).help},
		"quit":     {"quit", "leave the session", quit},
		"exit":     {"exit", "leave the session", quit},
	}
}

func NewSession(config *Config) *Session {
	s := &Session{
		tree:   avl.New[int](),
		ranges: NewRangeCache(config.Session.RangeCacheTTL),
		config: config,
	}
	s.keys = bloom.New(config.Session.BloomSize, config.Session.BloomHashes)
	if config.Display.Color {
		s.styles = NewTreeStyles()
	}
	return s
}

// Tree exposes the session's tree for read-only callers.
func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

// Exec runs a single command line such as "insert 1 2 3" and returns its
// output. An empty line is a no-op.
func (s *Session) Exec(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q: %v", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	name := strings.ToLower(args[0])
	command, ok := sessionCommands[name]
	if !ok {
		return "", fmt.Errorf("%w: %s (try help)", ErrUnknownCommand, args[0])
	}
	return command.run(s, args[1:])
}

// ExecScript runs ';' separated commands, collecting their output. It stops
// at the first error, returning the output gathered so far.
func (s *Session) ExecScript(script string) (string, error) {
	var out []string
	for _, line := range strings.Split(script, ";") {
		res, err := s.Exec(line)
		if res != "" {
			out = append(out, res)
		}
		if err != nil {
			return strings.Join(out, "\n"), err
		}
	}
	return strings.Join(out, "\n"), nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: keys are integers", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func singleKey(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	keys, err := parseKeys(args)
	if err != nil {
		return 0, err
	}
	return keys[0], nil
}

func noArgs(args []string, usage string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return nil
}

func filterKey(k int) string {
	return strconv.Itoa(k)
}

// mutated drops every cached range result
func (s *Session) mutated() {
	s.ranges.Flush()
}

// insert applies keys in order and stops at the first failure; keys
// before it stay inserted.
func (s *Session) insert(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: insert <key>...", ErrUsage)
	}
	keys, err := parseKeys(args)
	if err != nil {
		return "", err
	}

	inserted, skipped := 0, 0
	for _, k := range keys {
		err := s.tree.Insert(k)
		if errors.Is(err, avl.ErrDuplicateKey) && s.config.Tree.IgnoreDuplicates {
			skipped++
			continue
		}
		if err != nil {
			if inserted > 0 {
				s.mutated()
			}
			return fmt.Sprintf("inserted %d", inserted), err
		}
		s.keys.AddString(filterKey(k))
		inserted++
	}
	if inserted > 0 {
		s.mutated()
	}

	if skipped > 0 {
		return fmt.Sprintf("inserted %d, skipped %d duplicate", inserted, skipped), nil
	}
	return fmt.Sprintf("inserted %d", inserted), nil
}

func (s *Session) delete(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: delete <key>...", ErrUsage)
	}
	keys, err := parseKeys(args)
	if err != nil {
		return "", err
	}

	deleted, missing := 0, 0
	for _, k := range keys {
		if s.tree.Delete(k) {
			deleted++
		} else {
			missing++
		}
	}
	if deleted > 0 {
		s.mutated()
	}

	if missing > 0 {
		return fmt.Sprintf("deleted %d, %d not found", deleted, missing), nil
	}
	return fmt.Sprintf("deleted %d", deleted), nil
}

func formatKeys(keys []int) string {
	if len(keys) == 0 {
		return "(none)"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}

func (s *Session) findRange(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: range <low> <high>", ErrUsage)
	}
	bounds, err := parseKeys(args)
	if err != nil {
		return "", err
	}
	low, high := bounds[0], bounds[1]

	if keys, ok := GetRange(s.ranges, low, high); ok {
		s.rangeHits++
		return formatKeys(keys), nil
	}

	keys, err := s.tree.FindInRange(low, high)
	if err != nil {
		return "", err
	}
	s.rangeMisses++
	CacheRange(s.ranges, low, high, keys)
	return formatKeys(keys), nil
}

// lookupDepth answers from the bloom filter when it proves the key was
// never inserted. Deleted keys stay in the filter and fall through to
// the tree.
func (s *Session) lookupDepth(k int) int {
	if !s.keys.TestString(filterKey(k)) {
		s.filterSkips++
		return -1
	}
	return s.tree.DepthOf(k)
}

func (s *Session) depth(args []string) (string, error) {
	k, err := singleKey(args, "depth <key>")
	if err != nil {
		return "", err
	}
	return strconv.Itoa(s.lookupDepth(k)), nil
}

func (s *Session) contains(args []string) (string, error) {
	k, err := singleKey(args, "contains <key>")
	if err != nil {
		return "", err
	}
	if s.lookupDepth(k) < 0 {
		return "false", nil
	}
	return "true", nil
}

func (s *Session) print(args []string) (string, error) {
	if err := noArgs(args, "print"); err != nil {
		return "", err
	}
	return renderTree(s.tree, s.styles), nil
}

func (s *Session) listKeys(args []string) (string, error) {
	if err := noArgs(args, "keys"); err != nil {
		return "", err
	}
	var keys []int
	for k := range s.tree.Keys() {
		keys = append(keys, k)
	}
	return formatKeys(keys), nil
}

func (s *Session) min(args []string) (string, error) {
	if err := noArgs(args, "min"); err != nil {
		return "", err
	}
	k, ok := s.tree.Min()
	if !ok {
		return "(empty)", nil
	}
	return strconv.Itoa(k), nil
}

func (s *Session) max(args []string) (string, error) {
	if err := noArgs(args, "max"); err != nil {
		return "", err
	}
	k, ok := s.tree.Max()
	if !ok {
		return "(empty)", nil
	}
	return strconv.Itoa(k), nil
}

func (s *Session) length(args []string) (string, error) {
	if err := noArgs(args, "len"); err != nil {
		return "", err
	}
	return strconv.Itoa(s.tree.Len()), nil
}

func (s *Session) height(args []string) (string, error) {
	if err := noArgs(args, "height"); err != nil {
		return "", err
	}
	return strconv.Itoa(s.tree.Height()), nil
}

func (s *Session) check(args []string) (string, error) {
	if err := noArgs(args, "check"); err != nil {
		return "", err
	}
	if err := s.tree.Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ok: %d keys, height %d", s.tree.Len(), s.tree.Height()), nil
}

func (s *Session) stats(args []string) (string, error) {
	if err := noArgs(args, "stats"); err != nil {
		return "", err
	}
	return fmt.Sprintf("range cache: %d hits, %d misses, %d cached\nkey filter: %d lookups answered without the tree",
		s.rangeHits, s.rangeMisses, s.ranges.ItemCount(), s.filterSkips), nil
}

func (s *Session) clear(args []string) (string, error) {
	if err := noArgs(args, "clear"); err != nil {
		return "", err
	}
	n := s.tree.Len()
	s.tree.Clear()
	s.keys.ClearAll()
	s.mutated()
	return fmt.Sprintf("cleared %d", n), nil
}

func (s *Session) help(args []string) (string, error) {
	names := make([]string, 0, len(sessionCommands))
	for name := range sessionCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		command := sessionCommands[name]
		fmt.Fprintf(&b, "  %-20s %s\n", command.usage, command.help)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func quit(s *Session, args []string) (string, error) {
	return "", ErrQuit
}
