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
	"bufio"
	"errors"
	"fmt"
	"io"
)

const shellPrompt = "avl> "

// runShell reads commands line by line until EOF or quit. Command errors
// are printed and the loop carries on; only I/O errors end it early.
func runShell(in io.Reader, out io.Writer, session *Session, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}

		res, err := session.Exec(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
		if err != nil {
			fmt.Fprintf(out, "%s%v%s\n", Error, err, Reset)
		}
	}
	if prompt {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
