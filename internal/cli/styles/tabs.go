package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabring/internal/domain/registry"
)

// maxLabelWidth bounds a single tab label in the bar.
const maxLabelWidth = 24

// TabsModel represents the horizontal tab bar of a registry walk.
type TabsModel struct {
	Tabs   []registry.TabStatus
	Active int
	theme  *Theme
}

// NewTabs creates a tab bar from status rows in ring order.
// Active is -1 when no row is current.
func NewTabs(theme *Theme, tabs []registry.TabStatus) TabsModel {
	active := -1
	for i, tab := range tabs {
		if tab.IsCurrent {
			active = i
			break
		}
	}
	return TabsModel{
		Tabs:   tabs,
		Active: active,
		theme:  theme,
	}
}

// Label returns the display label for the i-th tab.
func (m TabsModel) Label(i int) string {
	tab := m.Tabs[i]
	label := fmt.Sprintf("%s %s", tab.ID, truncate(tab.Title(), maxLabelWidth))
	if tab.HasGroup() {
		label += " [" + tab.Group + "]"
	}
	return label
}

// View renders the tab bar at the given width.
func (m TabsModel) View(width int) string {
	if len(m.Tabs) == 0 {
		return m.theme.TabBar.Width(width).Render(m.theme.Subtle.Render("No tabs open."))
	}

	tabs := make([]string, 0, len(m.Tabs))
	for i := range m.Tabs {
		style := m.theme.InactiveTab
		if i == m.Active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(m.Label(i)))
	}

	gap := lipgloss.NewStyle().
		Foreground(m.theme.Border).
		Render(" │ ")

	row := lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)
	return m.theme.TabBar.Width(width).Render(row)
}

// ViewWithCounts renders the bar followed by capacity and snapshot badges.
func (m TabsModel) ViewWithCounts(width, capacity, snapshots int) string {
	badges := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.theme.BadgeMuted.Render(fmt.Sprintf("%s %d/%d", IconTab, len(m.Tabs), capacity)),
		" ",
		m.theme.BadgeMuted.Render(fmt.Sprintf("%s %s", IconSessionStack, formatCount(snapshots))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.View(width), badges)
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

// formatCount formats a count for display.
func formatCount(n int) string {
	if n >= 1000 {
		return "999+"
	}
	return fmt.Sprintf("%d", n)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
