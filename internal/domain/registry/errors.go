package registry

import "errors"

// Conditions reported by registry operations. None of them leaves the
// registry partially mutated.
var (
	// ErrNoCurrentTab is returned by Close on an empty registry.
	ErrNoCurrentTab = errors.New("no tab to close")

	// ErrEmptyRegistry is returned by navigation and Snapshot when no tab is open.
	ErrEmptyRegistry = errors.New("no tabs open")

	// ErrTabNotFound is returned when an id is not registered.
	ErrTabNotFound = errors.New("tab not found")

	// ErrGroupNotFound is returned when a group has no members.
	ErrGroupNotFound = errors.New("group not found")

	// ErrNoSnapshot is returned by Restore when nothing was saved.
	ErrNoSnapshot = errors.New("no session to restore")
)
