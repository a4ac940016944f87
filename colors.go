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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avltree/avl"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var detectedMode TerminalMode

// ANSI color codes for terminal output, set by InitializeColors
var (
	Green   = ""
	Info    = ""
	Warning = ""
	Error   = ""
	Reset   = ""
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and fills the ANSI palette.
// With enabled false every code is the empty string.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode()
	if !enabled {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// TreeStyles colours the parts of a tree dump line
type TreeStyles struct {
	Branch lipgloss.Style
	Key    lipgloss.Style
	Height lipgloss.Style
}

func NewTreeStyles() *TreeStyles {
	keyColor := lipgloss.Color("39")
	if detectedMode == TerminalModeLight {
		keyColor = lipgloss.Color("25")
	}
	return &TreeStyles{
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Key:    lipgloss.NewStyle().Foreground(keyColor).Bold(true),
		Height: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

// renderTree draws the same layout as avl.Tree.Print. A nil styles
// renders plain text.
func renderTree(tree *avl.Tree[int], styles *TreeStyles) string {
	if tree.IsEmpty() {
		return "(empty)"
	}
	if styles == nil {
		return strings.TrimSuffix(tree.String(), "\n")
	}

	var lines []string
	for e := range tree.Traverse() {
		lines = append(lines, fmt.Sprintf("%s%s%s %s",
			strings.Repeat(" ", e.Depth*4),
			styles.Branch.Render(e.Branch.Prefix()),
			styles.Key.Render(fmt.Sprint(e.Key)),
			styles.Height.Render(fmt.Sprintf("(h=%d)", e.Height))))
	}
	return strings.Join(lines, "\n")
}
