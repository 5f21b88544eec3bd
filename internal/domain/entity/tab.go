package entity

import (
	"strconv"
	"time"
)

// TabID uniquely identifies a tab within a registry.
type TabID string

// tabIDPrefix is prepended to the sequence number of every generated id.
const tabIDPrefix = "T"

// NewTabID formats the n-th generated tab identifier ("T1", "T2", ...).
func NewTabID(n int) TabID {
	return TabID(tabIDPrefix + strconv.Itoa(n))
}

// Tab is a named resource tracked by the registry.
// Everything but LastActive is fixed at creation.
type Tab struct {
	ID         TabID     `json:"id"`
	URL        string    `json:"url"`
	Group      string    `json:"group,omitempty"` // Empty when the tab is ungrouped
	LastActive time.Time `json:"last_active"`
}

// NewTab creates a tab that was last active at the given instant.
func NewTab(id TabID, url, group string, now time.Time) Tab {
	return Tab{
		ID:         id,
		URL:        url,
		Group:      group,
		LastActive: now,
	}
}

// HasGroup reports whether the tab belongs to a group.
func (t Tab) HasGroup() bool {
	return t.Group != ""
}

// Touch records an access that made the tab current.
func (t *Tab) Touch(now time.Time) {
	t.LastActive = now
}

// Title returns a short human label for the tab.
func (t Tab) Title() string {
	if t.URL != "" {
		return t.URL
	}
	return string(t.ID)
}
