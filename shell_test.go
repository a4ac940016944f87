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
	"bytes"
	"strings"
	"testing"
)

func TestRunShell(t *testing.T) {
	InitializeColors(false)

	in := strings.NewReader("insert 10 20 30\ndepth 30\nbogus\nrange 5 15\nquit\ninsert 99\n")
	var out bytes.Buffer
	s := NewSession(testConfig())

	if err := runShell(in, &out, s, false); err != nil {
		t.Fatalf("runShell returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	want := []string{"inserted 3", "1", "unknown command: bogus", "10"}
	if len(lines) != len(want) {
		t.Fatalf("shell printed %q; want %q", lines, want)
	}
	for i := range want {
		if !strings.HasPrefix(lines[i], want[i]) {
			t.Errorf("line %d = %q; want prefix %q", i, lines[i], want[i])
		}
	}
	// the loop ends at quit
	if s.Tree().Contains(99) {
		t.Errorf("command after quit was executed")
	}
}

func TestRunShellPrompt(t *testing.T) {
	var out bytes.Buffer
	if err := runShell(strings.NewReader("len\n"), &out, NewSession(testConfig()), true); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), shellPrompt+"0\n"+shellPrompt+"\n"; got != want {
		t.Errorf("shell output = %q; want %q", got, want)
	}
}
