package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/registry"
)

// CommandSummary lists the commands understood by the shell and the TUI.
const CommandSummary = "OPEN <url> [group], CLOSE, NEXT, PREV, SWITCH <tab_id>, " +
	"SWITCHGROUP <group>, SNAPSHOT, RESTORE, PRUNE, STATUS, SESSIONS, HELP, EXIT"

// RegistryRenderer renders tab registry events as themed lines.
type RegistryRenderer struct {
	theme *Theme
}

// NewRegistryRenderer creates a renderer with the given theme.
func NewRegistryRenderer(theme *Theme) *RegistryRenderer {
	return &RegistryRenderer{theme: theme}
}

// Welcome renders the banner printed when a shell starts.
func (r *RegistryRenderer) Welcome() string {
	return lines(
		r.theme.Title.Render("Welcome to tabring, the session-aware tab registry!"),
		r.theme.Subtle.Render("Commands: "+CommandSummary),
	)
}

// Help renders the command reference.
func (r *RegistryRenderer) Help() string {
	rows := [][2]string{
		{"OPEN <url> [group]", "open a tab after the current one"},
		{"CLOSE", "close the current tab"},
		{"NEXT / PREV", "move around the ring"},
		{"SWITCH <tab_id>", "focus a tab by id"},
		{"SWITCHGROUP <group>", "focus the first tab of a group"},
		{"SNAPSHOT", "save the open tabs"},
		{"RESTORE", "replace the open tabs with the last snapshot"},
		{"PRUNE", "close duplicate urls, keeping the most recent"},
		{"STATUS", "list open tabs"},
		{"SESSIONS", "list saved snapshots"},
		{"EXIT", "leave"},
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, fmt.Sprintf("%s  %s",
			r.theme.Highlight.Render(fmt.Sprintf("%-20s", row[0])),
			r.theme.Subtle.Render(row[1])))
	}
	return lines(out...)
}

// Opened renders the eviction notices followed by the open confirmation.
func (r *RegistryRenderer) Opened(id entity.TabID, url, group string, evicted []entity.Tab) string {
	out := make([]string, 0, len(evicted)+1)
	for _, tab := range evicted {
		out = append(out, r.Evicted(tab))
	}
	msg := fmt.Sprintf("Tab %s opened: %s", id, url)
	if group != "" {
		msg += fmt.Sprintf(" (Group: %s)", group)
	}
	out = append(out, r.theme.SuccessStyle.Render(msg))
	return lines(out...)
}

// Evicted renders the notice for a tab closed by the capacity limit.
func (r *RegistryRenderer) Evicted(tab entity.Tab) string {
	return r.theme.WarningStyle.Render("LRU limit exceeded. Closing tab " + string(tab.ID))
}

// Closed renders a close confirmation.
func (r *RegistryRenderer) Closed(id entity.TabID) string {
	return r.theme.Normal.Render(string(id) + " closed.")
}

// SwitchedNext renders the result of NEXT.
func (r *RegistryRenderer) SwitchedNext(id entity.TabID) string {
	return r.theme.Normal.Render("Switched to next tab: " + string(id))
}

// SwitchedPrev renders the result of PREV.
func (r *RegistryRenderer) SwitchedPrev(id entity.TabID) string {
	return r.theme.Normal.Render("Switched to previous tab: " + string(id))
}

// SwitchedTo renders the result of SWITCH.
func (r *RegistryRenderer) SwitchedTo(id entity.TabID) string {
	return r.theme.Normal.Render("Switched to tab " + string(id))
}

// SwitchedGroup renders the result of SWITCHGROUP.
func (r *RegistryRenderer) SwitchedGroup(group string) string {
	return r.theme.Normal.Render("Switched to group " + group)
}

// Saved renders a snapshot confirmation.
func (r *RegistryRenderer) Saved(snap entity.SessionSnapshot) string {
	return r.theme.SuccessStyle.Render(fmt.Sprintf("Session saved (%d tabs).", snap.TabCount()))
}

// Restored renders a restore confirmation.
func (r *RegistryRenderer) Restored(count int) string {
	return r.theme.SuccessStyle.Render(fmt.Sprintf("Session restored (%d tabs).", count))
}

// Pruned renders the result of PRUNE.
func (r *RegistryRenderer) Pruned(removed []entity.Tab) string {
	msg := "Pruned duplicates."
	if len(removed) > 0 {
		ids := make([]string, 0, len(removed))
		for _, tab := range removed {
			ids = append(ids, string(tab.ID))
		}
		msg += " Closed " + strings.Join(ids, ", ") + "."
	}
	return r.theme.Normal.Render(msg)
}

// Status renders the open tabs from head, marking the current one.
func (r *RegistryRenderer) Status(tabs []registry.TabStatus) string {
	if len(tabs) == 0 {
		return r.theme.Subtle.Render("No tabs open.")
	}

	out := make([]string, 0, len(tabs)+1)
	out = append(out, r.theme.Title.Render("Tabs Status:"))
	for _, st := range tabs {
		line := fmt.Sprintf("%s: %s", st.ID, st.URL)
		if st.HasGroup() {
			line += " | " + st.Group
		}
		if st.IsCurrent {
			out = append(out, r.theme.Highlight.Render(line+" <- ACTIVE"))
			continue
		}
		out = append(out, r.theme.Normal.Render(line))
	}
	return lines(out...)
}

// Sessions renders saved snapshots, newest first.
func (r *RegistryRenderer) Sessions(snaps []entity.SessionSnapshot) string {
	if len(snaps) == 0 {
		return r.theme.Subtle.Render("No saved sessions.")
	}

	out := make([]string, 0, len(snaps)+1)
	out = append(out, r.theme.Title.Render("Saved Sessions:"))
	for i, snap := range snaps {
		line := fmt.Sprintf("%d. %s  %d tabs  active %s  %s",
			i+1, snap.ShortID(), snap.TabCount(), snap.ActiveID, snap.SavedAt.Format("15:04:05"))
		if groups := snap.Groups(); len(groups) > 0 {
			line += "  [" + strings.Join(groups, ", ") + "]"
		}
		out = append(out, r.theme.Normal.Render(line))
	}
	return lines(out...)
}

// Usage renders a usage hint for a command given the wrong arguments.
func (r *RegistryRenderer) Usage(usage string) string {
	return r.theme.WarningStyle.Render("Usage: " + usage)
}

// Notice renders a neutral informational line.
func (r *RegistryRenderer) Notice(msg string) string {
	return r.theme.Subtle.Render(msg)
}

// Error renders a failed command.
func (r *RegistryRenderer) Error(msg string) string {
	return r.theme.ErrorStyle.Render(msg)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
