package port

import (
	"iter"

	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/registry"
)

// TabNavigator is the part of the tab registry that opens, closes and
// moves between tabs. Implemented by *registry.Registry.
type TabNavigator interface {
	Open(url, group string) (entity.TabID, []entity.Tab)
	Close() (entity.TabID, error)
	Next() (entity.TabID, error)
	Prev() (entity.TabID, error)
	SwitchTo(id entity.TabID) error
	SwitchToGroup(group string) (entity.TabID, error)
	Prune() []entity.Tab
	Status() iter.Seq[registry.TabStatus]
	Len() int
	Cap() int
}

// SessionKeeper saves and replays session snapshots.
// Implemented by *registry.Registry.
type SessionKeeper interface {
	// Snapshot captures the open tabs onto the session stack.
	Snapshot() (entity.SessionSnapshot, error)
	// Restore replaces the open tabs with the newest snapshot.
	Restore() (registry.RestoreResult, error)
	// Snapshots lists saved snapshots, newest first.
	Snapshots() []entity.SessionSnapshot
}

// TabRegistry is the full registry surface the CLI drives.
type TabRegistry interface {
	TabNavigator
	SessionKeeper
}

var _ TabRegistry = (*registry.Registry)(nil)
