package entity

import (
	"slices"
	"time"
)

// SnapshotID uniquely identifies a saved session snapshot.
type SnapshotID string

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// SessionSnapshot is an immutable point-in-time copy of a registry's tabs.
// Tabs are value copies in ring order starting at head.
type SessionSnapshot struct {
	ID       SnapshotID `json:"id"`
	Tabs     []Tab      `json:"tabs"`
	ActiveID TabID      `json:"active_id"`
	SavedAt  time.Time  `json:"saved_at"`
}

// NewSessionSnapshot builds a snapshot that owns its own copy of tabs.
func NewSessionSnapshot(id SnapshotID, tabs []Tab, activeID TabID, savedAt time.Time) SessionSnapshot {
	return SessionSnapshot{
		ID:       id,
		Tabs:     slices.Clone(tabs),
		ActiveID: activeID,
		SavedAt:  savedAt,
	}
}

// TabCount returns the number of tabs captured by the snapshot.
func (s SessionSnapshot) TabCount() int {
	return len(s.Tabs)
}

// ShortID returns the last 4 characters of the snapshot ID for display.
func (s SessionSnapshot) ShortID() string {
	id := string(s.ID)
	if len(id) < 4 {
		return id
	}
	return id[len(id)-4:]
}

// ActiveTab returns the captured tab that was current at snapshot time.
func (s SessionSnapshot) ActiveTab() (Tab, bool) {
	for _, tab := range s.Tabs {
		if tab.ID == s.ActiveID {
			return tab, true
		}
	}
	return Tab{}, false
}

// Groups returns the distinct groups present in the snapshot, in capture order.
func (s SessionSnapshot) Groups() []string {
	seen := make(map[string]struct{})
	groups := make([]string, 0)
	for _, tab := range s.Tabs {
		if !tab.HasGroup() {
			continue
		}
		if _, ok := seen[tab.Group]; ok {
			continue
		}
		seen[tab.Group] = struct{}{}
		groups = append(groups, tab.Group)
	}
	return groups
}

// Clone returns a copy that shares no memory with s.
func (s SessionSnapshot) Clone() SessionSnapshot {
	s.Tabs = slices.Clone(s.Tabs)
	return s
}
