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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// explorerModel is the bubbletea state of avltree explore
type explorerModel struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model
	showHelp bool

	session *Session
	history []string
	histPos int // == len(history) when not browsing

	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func newExplorerModel(session *Session) explorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30"
	ti.Prompt = shellPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	m := explorerModel{
		input:    ti,
		treeView: viewport.New(0, 0),
		helpView: viewport.New(0, 0),
		session:  session,
		styles:   NewStyles(),
		status:   "type a command and press enter, f1 for help",
	}
	m.refreshTree()
	return m
}

func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.execInput()
		case "f1":
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.updateHelp()
			}
			return m, nil
		case "ctrl+y":
			if err := clipboard.WriteAll(m.session.Tree().String()); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("📋 tree copied to clipboard", false)
			}
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup":
			m.activeView().LineUp(m.activeView().Height)
			return m, nil
		case "pgdown":
			m.activeView().LineDown(m.activeView().Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *explorerModel) activeView() *viewport.Model {
	if m.showHelp {
		return &m.helpView
	}
	return &m.treeView
}

func (m explorerModel) execInput() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.histPos = len(m.history)

	res, err := m.session.Exec(line)
	if errors.Is(err, ErrQuit) {
		return m, tea.Quit
	}
	// print output is already on screen, keep the status line short
	if strings.Contains(res, "\n") {
		res = ""
	}

	switch {
	case err != nil && res != "":
		m.setStatus(fmt.Sprintf("%s: %v", res, err), true)
	case err != nil:
		m.setStatus(err.Error(), true)
	case res == "":
		m.setStatus("ok", false)
	default:
		m.setStatus(res, false)
	}
	m.refreshTree()
	return m, nil
}

// recall steps through previously executed lines
func (m *explorerModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+step, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *explorerModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *explorerModel) refreshTree() {
	m.treeView.SetContent(renderTree(m.session.Tree(), m.session.styles))
}

func (m *explorerModel) updateHelp() {
	helpTxt := sessionHelpMarkdown() + `
# Keys
* **enter** run the command
* **up/down** previous commands
* **pgup/pgdown** scroll
* **ctrl+y** copy the tree
* **f1** toggle this help
* **esc** quit
`
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
			m.helpView.SetContent(rendered)
			return
		}
	}
	m.helpView.SetContent(helpTxt)
}

func (m *explorerModel) updateLayout() {
	viewHeight := m.height - 9 // input box, status and footer
	viewWidth := m.width - 4

	m.input.Width = viewWidth - len(shellPrompt) - 2
	m.treeView.Width = viewWidth
	m.treeView.Height = viewHeight
	m.helpView.Width = viewWidth
	m.helpView.Height = viewHeight
}

func (m explorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	title := fmt.Sprintf(" 🌳 Tree: %d keys, height %d ", m.session.Tree().Len(), m.session.Tree().Height())
	content := m.treeView.View()
	if m.showHelp {
		title = " 📖 Help "
		content = m.helpView.View()
	}

	mainBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Height(m.treeView.Height + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			content,
		))

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.input.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().Padding(0, 2).Render(statusStyle.Render(m.status))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainBox,
		inputBox,
		status,
		m.renderFooter(),
	)
}

func (m explorerModel) renderFooter() string {
	keys := []string{"enter", "up/down", "pgup/pgdown", "ctrl+y", "f1", "esc"}
	descs := []string{"run", "history", "scroll", "copy tree", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the explore TUI over session
func runExplorer(session *Session) error {
	program := tea.NewProgram(
		newExplorerModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
