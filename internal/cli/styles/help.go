package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// RegistryKeyMap defines keybindings for the interactive tab registry.
// Plain keys go to the command line, so shortcuts use modifiers.
type RegistryKeyMap struct {
	Run         key.Binding
	Next        key.Binding
	Prev        key.Binding
	Close       key.Binding
	Snapshot    key.Binding
	Restore     key.Binding
	Prune       key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k RegistryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Next, k.Prev, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k RegistryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.HistoryUp, k.HistoryDown},
		{k.Next, k.Prev, k.Close},
		{k.Snapshot, k.Restore, k.Prune},
		{k.Help, k.Quit},
	}
}

// DefaultRegistryKeyMap returns the default registry keybindings.
func DefaultRegistryKeyMap() RegistryKeyMap {
	return RegistryKeyMap{
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run command"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+n", "tab"),
			key.WithHelp("tab/C-n", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("ctrl+p", "shift+tab"),
			key.WithHelp("S-tab/C-p", "prev tab"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close tab"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "snapshot"),
		),
		Restore: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "restore"),
		),
		Prune: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "prune duplicates"),
		),
		HistoryUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous command"),
		),
		HistoryDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next command"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
