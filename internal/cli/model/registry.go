// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabring/internal/cli"
	"github.com/bnema/tabring/internal/cli/styles"
	"github.com/bnema/tabring/internal/logging"
)

const (
	// maxOutputLines bounds the scrollback kept in memory.
	maxOutputLines = 200
	// maxHistory bounds the command history.
	maxHistory = 100
	// chromeLines is the height taken by header, tab bar, input and help.
	chromeLines = 8
)

// ThemeChangedMsg is sent when the config file changes and a new theme is built.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

// RegistryModel is the Bubble Tea model for the interactive tab registry.
type RegistryModel struct {
	// UI components
	input textinput.Model
	help  help.Model
	keys  styles.RegistryKeyMap

	// State
	output     []string
	history    []string
	historyIdx int // len(history) means a fresh line
	width      int
	height     int
	quitting   bool

	// Dependencies
	ctx   context.Context
	shell *cli.Shell
	theme *styles.Theme
}

// NewRegistryModel creates the interactive model driving shell.
func NewRegistryModel(ctx context.Context, theme *styles.Theme, shell *cli.Shell) RegistryModel {
	input := textinput.New()
	input.Placeholder = "OPEN example.com work"
	input.Prompt = "> "
	input.CharLimit = 512
	input.Focus()

	m := RegistryModel{
		input:  input,
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultRegistryKeyMap(),
		width:  80,
		height: 24,
		ctx:    ctx,
		shell:  shell,
		theme:  theme,
	}
	m.applyTheme(theme)
	m.appendOutput(shell.Renderer().Welcome())
	return m
}

// Init implements tea.Model.
func (m RegistryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m RegistryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.applyTheme(msg.Theme)
			m.appendOutput(m.theme.Subtle.Render("Theme reloaded."))
		}
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKeyMsg(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m RegistryModel) handleKeyMsg(msg tea.KeyMsg) (RegistryModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true

	case key.Matches(msg, m.keys.Run):
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if line == "" {
			return m, nil, true
		}
		m.remember(line)
		next, cmd := m.run(line)
		return next, cmd, true

	case key.Matches(msg, m.keys.Next):
		next, cmd := m.run("NEXT")
		return next, cmd, true

	case key.Matches(msg, m.keys.Prev):
		next, cmd := m.run("PREV")
		return next, cmd, true

	case key.Matches(msg, m.keys.Close):
		next, cmd := m.run("CLOSE")
		return next, cmd, true

	case key.Matches(msg, m.keys.Snapshot):
		next, cmd := m.run("SNAPSHOT")
		return next, cmd, true

	case key.Matches(msg, m.keys.Restore):
		next, cmd := m.run("RESTORE")
		return next, cmd, true

	case key.Matches(msg, m.keys.Prune):
		next, cmd := m.run("PRUNE")
		return next, cmd, true

	case key.Matches(msg, m.keys.HistoryUp):
		if m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		}
		return m, nil, true

	case key.Matches(msg, m.keys.HistoryDown):
		if m.historyIdx < len(m.history)-1 {
			m.historyIdx++
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		} else {
			m.historyIdx = len(m.history)
			m.input.Reset()
		}
		return m, nil, true
	}

	return m, nil, false
}

// run executes line through the shell and records the result.
func (m RegistryModel) run(line string) (RegistryModel, tea.Cmd) {
	m.appendOutput(m.theme.Subtle.Render("> " + line))

	out, err := m.shell.Execute(m.ctx, line)
	if out != "" {
		m.appendOutput(out)
	}
	if errors.Is(err, cli.ErrExit) {
		m.quitting = true
		return m, tea.Quit
	}
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Str("command", line).Msg("command failed")
		m.appendOutput(m.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, err)))
	}
	return m, nil
}

func (m *RegistryModel) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.historyIdx = len(m.history)
}

func (m *RegistryModel) appendOutput(text string) {
	m.output = append(m.output, strings.Split(text, "\n")...)
	if len(m.output) > maxOutputLines {
		m.output = m.output[len(m.output)-maxOutputLines:]
	}
}

func (m *RegistryModel) applyTheme(theme *styles.Theme) {
	m.theme = theme
	m.shell.SetTheme(theme)
	showAll := m.help.ShowAll
	m.help = styles.NewStyledHelp(theme)
	m.help.ShowAll = showAll
	m.help.Width = m.width
	m.input.PromptStyle = theme.Prompt
	m.input.TextStyle = theme.Normal
	m.input.PlaceholderStyle = theme.Subtle
}

// Output returns the scrollback lines.
func (m RegistryModel) Output() []string {
	return m.output
}

// View implements tea.Model.
func (m RegistryModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	overview := m.shell.Overview(m.ctx)
	b.WriteString(styles.NewTabs(t, overview.Tabs).ViewWithCounts(m.width, overview.Capacity, overview.Snapshots))
	b.WriteString("\n\n")

	b.WriteString(strings.Join(m.visibleOutput(), "\n"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m RegistryModel) renderHeader() string {
	t := m.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		iconStyle.Render(styles.IconTab),
		" ",
		t.Title.Render("tabring"),
	)
}

// visibleOutput returns the tail of the scrollback that fits the window.
func (m RegistryModel) visibleOutput() []string {
	rows := m.height - chromeLines
	if m.help.ShowAll {
		rows -= 3
	}
	rows = max(rows, 3)
	if len(m.output) <= rows {
		return m.output
	}
	return m.output[len(m.output)-rows:]
}
