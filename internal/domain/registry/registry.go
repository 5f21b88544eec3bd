// Package registry implements the tab registry: a cyclic ring of tabs with
// id and group indices, least-recently-used eviction, duplicate pruning and
// a stack of session snapshots.
//
// A Registry is single-threaded. Every operation runs to completion and
// either fully applies or reports a sentinel error without mutating.
package registry

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/ring"
)

// DefaultMaxTabs is the capacity used when none is configured.
const DefaultMaxTabs = 5

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the time source for LastActive and snapshot timestamps.
func WithClock(clock Clock) Option {
	return func(r *Registry) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithEvictionPolicy replaces the default LeastRecentlyUsed policy.
func WithEvictionPolicy(policy EvictionPolicy) Option {
	return func(r *Registry) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithSnapshotIDGenerator sets how snapshot ids are produced.
func WithSnapshotIDGenerator(gen entity.IDGenerator) Option {
	return func(r *Registry) {
		if gen != nil {
			r.snapshotID = gen
		}
	}
}

// TabStatus is one row of a Status walk.
type TabStatus struct {
	entity.Tab
	IsCurrent bool
}

// RestoreResult describes a completed Restore.
type RestoreResult struct {
	Snapshot entity.SessionSnapshot
	// ActiveRestored is false when no replayed tab received the snapshot's
	// active id; current then stays on the last replayed tab.
	ActiveRestored bool
}

// Registry is the tab registry façade.
type Registry struct {
	maxTabs    int
	clock      Clock
	policy     EvictionPolicy
	snapshotID entity.IDGenerator

	tabs     *ring.Ring[entity.Tab]
	index    *index
	sessions *SessionStore

	// counter is the sequence number of the last generated tab id.
	counter int
}

// New creates an empty registry holding at most maxTabs tabs.
// A capacity below 1 is raised to 1.
func New(maxTabs int, opts ...Option) *Registry {
	if maxTabs < 1 {
		maxTabs = 1
	}
	r := &Registry{
		maxTabs:    maxTabs,
		clock:      SystemClock{},
		policy:     LeastRecentlyUsed{},
		snapshotID: uuid.NewString,
		tabs:       ring.New[entity.Tab](),
		index:      newIndex(),
		sessions:   NewSessionStore(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a tab right after the current one and focuses it. If that
// pushes the registry over capacity, the eviction policy removes tabs until
// it fits again; the removed tabs are returned.
func (r *Registry) Open(url, group string) (entity.TabID, []entity.Tab) {
	r.counter++
	tab := entity.NewTab(entity.NewTabID(r.counter), url, group, r.clock.Now())

	h := r.insert(tab)
	r.tabs.SetCurrent(h)

	return tab.ID, r.enforceLimit()
}

// Close removes the current tab. Its successor becomes current.
func (r *Registry) Close() (entity.TabID, error) {
	h, ok := r.tabs.Current()
	if !ok {
		return "", ErrNoCurrentTab
	}
	tab, _ := r.remove(h)
	return tab.ID, nil
}

// Next focuses the following tab, wrapping around.
func (r *Registry) Next() (entity.TabID, error) {
	return r.step(r.tabs.Next)
}

// Prev focuses the preceding tab, wrapping around.
func (r *Registry) Prev() (entity.TabID, error) {
	return r.step(r.tabs.Prev)
}

// SwitchTo focuses the tab with the given id.
func (r *Registry) SwitchTo(id entity.TabID) error {
	h, ok := r.index.lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTabNotFound, id)
	}
	r.tabs.SetCurrent(h)
	r.touch(h)
	return nil
}

// SwitchToGroup focuses the first-registered member of group and returns its id.
func (r *Registry) SwitchToGroup(group string) (entity.TabID, error) {
	h, ok := r.index.firstInGroup(group)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}
	r.tabs.SetCurrent(h)
	return r.touch(h).ID, nil
}

// Prune keeps only the most recently active tab per URL and returns the
// removed tabs.
func (r *Registry) Prune() []entity.Tab {
	doomed := duplicates(r.tabs)
	removed := make([]entity.Tab, 0, len(doomed))
	for _, h := range doomed {
		if tab, ok := r.remove(h); ok {
			removed = append(removed, tab)
		}
	}
	return removed
}

// Snapshot copies the tabs and the current selection onto the session stack.
func (r *Registry) Snapshot() (entity.SessionSnapshot, error) {
	cur, ok := r.tabs.Current()
	if !ok {
		return entity.SessionSnapshot{}, ErrEmptyRegistry
	}

	tabs := make([]entity.Tab, 0, r.tabs.Len())
	for _, tab := range r.tabs.All() {
		tabs = append(tabs, *tab)
	}
	active, _ := r.tabs.Value(cur)

	snap := entity.SessionSnapshot{
		ID:       entity.SnapshotID(r.snapshotID()),
		Tabs:     tabs,
		ActiveID: active.ID,
		SavedAt:  r.clock.Now(),
	}
	r.sessions.Push(snap)
	return snap.Clone(), nil
}

// Restore pops the newest snapshot, discards every open tab, resets the id
// counter and reopens the captured tabs in order. Reopened tabs get fresh
// ids; the captured active id is focused only if one of them matches it.
func (r *Registry) Restore() (RestoreResult, error) {
	snap, ok := r.sessions.Pop()
	if !ok {
		return RestoreResult{}, ErrNoSnapshot
	}

	r.clear()
	for _, tab := range snap.Tabs {
		r.Open(tab.URL, tab.Group)
	}

	result := RestoreResult{Snapshot: snap}
	if h, ok := r.index.lookup(snap.ActiveID); ok {
		r.tabs.SetCurrent(h)
		result.ActiveRestored = true
	}
	return result, nil
}

// Status walks the ring once from head.
func (r *Registry) Status() iter.Seq[TabStatus] {
	return func(yield func(TabStatus) bool) {
		cur, _ := r.tabs.Current()
		for h, tab := range r.tabs.All() {
			if !yield(TabStatus{Tab: *tab, IsCurrent: h == cur}) {
				return
			}
		}
	}
}

// Len returns the number of open tabs.
func (r *Registry) Len() int {
	return r.tabs.Len()
}

// Cap returns the maximum number of open tabs.
func (r *Registry) Cap() int {
	return r.maxTabs
}

// Current returns the focused tab.
func (r *Registry) Current() (entity.Tab, bool) {
	h, ok := r.tabs.Current()
	if !ok {
		return entity.Tab{}, false
	}
	tab, _ := r.tabs.Value(h)
	return *tab, true
}

// Lookup returns the tab registered under id.
func (r *Registry) Lookup(id entity.TabID) (entity.Tab, bool) {
	h, ok := r.index.lookup(id)
	if !ok {
		return entity.Tab{}, false
	}
	tab, ok := r.tabs.Value(h)
	if !ok {
		return entity.Tab{}, false
	}
	return *tab, true
}

// Group returns the members of group in the order they were opened.
func (r *Registry) Group(group string) []entity.Tab {
	handles := r.index.group(group)
	out := make([]entity.Tab, 0, len(handles))
	for _, h := range handles {
		if tab, ok := r.tabs.Value(h); ok {
			out = append(out, *tab)
		}
	}
	return out
}

// Groups returns the names of non-empty groups, sorted.
func (r *Registry) Groups() []string {
	groups := r.index.groups()
	slices.Sort(groups)
	return groups
}

// Snapshots returns the saved snapshots, newest first.
func (r *Registry) Snapshots() []entity.SessionSnapshot {
	return r.sessions.List()
}

// SnapshotCount returns the depth of the session stack.
func (r *Registry) SnapshotCount() int {
	return r.sessions.Len()
}

// insert links tab after current and indexes it in one step.
func (r *Registry) insert(tab entity.Tab) ring.Handle {
	at, _ := r.tabs.Current()
	h, ok := r.tabs.InsertAfter(at, tab)
	if !ok {
		panic("registry: current tab handle does not resolve")
	}
	r.index.register(h, tab)
	return h
}

// remove unlinks and unindexes h in one step. Every removal path (close,
// eviction, prune) goes through here.
func (r *Registry) remove(h ring.Handle) (entity.Tab, bool) {
	tab, ok := r.tabs.Remove(h)
	if !ok {
		return entity.Tab{}, false
	}
	r.index.unregister(h, tab)
	return tab, true
}

func (r *Registry) enforceLimit() []entity.Tab {
	var evicted []entity.Tab
	for r.tabs.Len() > r.maxTabs {
		h, ok := r.policy.Victim(r.tabs)
		if !ok {
			break
		}
		tab, ok := r.remove(h)
		if !ok {
			break
		}
		evicted = append(evicted, tab)
	}
	return evicted
}

func (r *Registry) step(move func() (ring.Handle, bool)) (entity.TabID, error) {
	h, ok := move()
	if !ok {
		return "", ErrEmptyRegistry
	}
	return r.touch(h).ID, nil
}

func (r *Registry) touch(h ring.Handle) entity.Tab {
	tab, _ := r.tabs.Value(h)
	tab.Touch(r.clock.Now())
	return *tab
}

// clear drops every tab and resets the id counter.
func (r *Registry) clear() {
	r.tabs.Clear()
	r.index.clear()
	r.counter = 0
}
