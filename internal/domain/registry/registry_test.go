package registry_test

import (
	"slices"
	"testing"
	"time"

	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/registry"
	"github.com/bnema/tabring/internal/domain/registry/mocks"
	"github.com/bnema/tabring/internal/domain/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 12, 24, 12, 0, 0, 0, time.UTC)

// tickClock advances by a fixed step on every reading.
type tickClock struct {
	now  time.Time
	step time.Duration
}

func newTickClock() *tickClock {
	return &tickClock{now: epoch, step: time.Millisecond}
}

func (c *tickClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newRegistry(t *testing.T, maxTabs int) *registry.Registry {
	t.Helper()
	return registry.New(maxTabs, registry.WithClock(newTickClock()))
}

func statusIDs(r *registry.Registry) []entity.TabID {
	var ids []entity.TabID
	for st := range r.Status() {
		ids = append(ids, st.ID)
	}
	return ids
}

func statusURLs(r *registry.Registry) []string {
	var urls []string
	for st := range r.Status() {
		urls = append(urls, st.URL)
	}
	return urls
}

func currentID(t *testing.T, r *registry.Registry) entity.TabID {
	t.Helper()
	cur, ok := r.Current()
	require.True(t, ok)
	return cur.ID
}

// ===========================================================================
// Open / Close / navigation
// ===========================================================================

func TestRegistry_OpenGeneratesSequentialIDs(t *testing.T) {
	r := newRegistry(t, 5)

	id1, evicted := r.Open("a.com", "")
	assert.Empty(t, evicted)
	id2, _ := r.Open("b.com", "work")

	assert.Equal(t, entity.TabID("T1"), id1)
	assert.Equal(t, entity.TabID("T2"), id2)
	assert.Equal(t, id2, currentID(t, r))

	tab, ok := r.Lookup(id2)
	require.True(t, ok)
	assert.Equal(t, "b.com", tab.URL)
	assert.Equal(t, "work", tab.Group)
	require.NoError(t, r.Validate())
}

func TestRegistry_OpenInsertsAfterCurrent(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	r.Open("c.com", "")

	require.NoError(t, r.SwitchTo("T1"))
	id, _ := r.Open("d.com", "")

	assert.Equal(t, entity.TabID("T4"), id)
	assert.Equal(t, []entity.TabID{"T1", "T4", "T2", "T3"}, statusIDs(r))
	require.NoError(t, r.Validate())
}

func TestRegistry_CounterKeepsGrowingAcrossEvictions(t *testing.T) {
	r := newRegistry(t, 1)

	r.Open("a.com", "")
	_, evicted := r.Open("b.com", "")
	require.Len(t, evicted, 1)
	assert.Equal(t, entity.TabID("T1"), evicted[0].ID)

	id, _ := r.Open("c.com", "")
	assert.Equal(t, entity.TabID("T3"), id)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CapacityBelowOneIsClamped(t *testing.T) {
	r := registry.New(0)
	assert.Equal(t, 1, r.Cap())

	r.Open("a.com", "")
	r.Open("b.com", "")
	assert.Equal(t, 1, r.Len())
	require.NoError(t, r.Validate())
}

func TestRegistry_CloseRemovesCurrent(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	r.Open("c.com", "")
	require.NoError(t, r.SwitchTo("T2"))

	id, err := r.Close()
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("T2"), id)
	assert.Equal(t, entity.TabID("T3"), currentID(t, r), "successor becomes current")

	_, ok := r.Lookup("T2")
	assert.False(t, ok)
	assert.Equal(t, []entity.TabID{"T1", "T3"}, statusIDs(r))
	require.NoError(t, r.Validate())
}

func TestRegistry_CloseLastTabEmptiesRegistry(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")

	_, err := r.Close()
	require.NoError(t, err)

	assert.Equal(t, 0, r.Len())
	_, ok := r.Current()
	assert.False(t, ok)
	assert.Empty(t, statusIDs(r))
	require.NoError(t, r.Validate())
}

func TestRegistry_EmptyRegistryConditions(t *testing.T) {
	r := newRegistry(t, 5)

	_, err := r.Close()
	require.ErrorIs(t, err, registry.ErrNoCurrentTab)

	_, err = r.Next()
	require.ErrorIs(t, err, registry.ErrEmptyRegistry)

	_, err = r.Prev()
	require.ErrorIs(t, err, registry.ErrEmptyRegistry)

	_, err = r.Snapshot()
	require.ErrorIs(t, err, registry.ErrEmptyRegistry)

	_, err = r.Restore()
	require.ErrorIs(t, err, registry.ErrNoSnapshot)

	assert.Empty(t, r.Prune())
	require.NoError(t, r.Validate())
}

func TestRegistry_NextPrevWrapAndTouch(t *testing.T) {
	clock := mocks.NewMockClock(t)
	now := epoch
	clock.EXPECT().Now().RunAndReturn(func() time.Time {
		now = now.Add(time.Second)
		return now
	})

	r := registry.New(5, registry.WithClock(clock))
	r.Open("a.com", "")
	r.Open("b.com", "")

	id, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("T1"), id, "next wraps from the last tab to head")

	tab, _ := r.Lookup("T1")
	assert.True(t, tab.LastActive.Equal(epoch.Add(3*time.Second)))

	id, err = r.Prev()
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("T2"), id)

	tab, _ = r.Lookup("T2")
	assert.True(t, tab.LastActive.Equal(epoch.Add(4*time.Second)))
}

func TestRegistry_SwitchTo(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	before, _ := r.Lookup("T1")

	require.NoError(t, r.SwitchTo("T1"))
	assert.Equal(t, entity.TabID("T1"), currentID(t, r))

	after, _ := r.Lookup("T1")
	assert.True(t, after.LastActive.After(before.LastActive))

	err := r.SwitchTo("T9")
	require.ErrorIs(t, err, registry.ErrTabNotFound)
	assert.Contains(t, err.Error(), "T9")
	assert.Equal(t, entity.TabID("T1"), currentID(t, r), "failed switch must not move current")
}

func TestRegistry_SwitchToGroupUnknown(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")

	_, err := r.SwitchToGroup("work")
	require.ErrorIs(t, err, registry.ErrGroupNotFound)

	_, err = r.SwitchToGroup("")
	require.ErrorIs(t, err, registry.ErrGroupNotFound, "ungrouped tabs do not form a group")
}

func TestRegistry_SwitchToGroupPicksFirstRegistered(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("x.com", "work")
	r.Open("y.com", "news")
	r.Open("z.com", "work")

	id, err := r.SwitchToGroup("work")
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("T1"), id)
	assert.Equal(t, []string{"news", "work"}, r.Groups())
}

// Scenario: open x.com and y.com in "work", close the current one, then
// switch to the group.
func TestRegistry_GroupCloseThenSwitch(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("x.com", "work")
	r.Open("y.com", "work")

	closed, err := r.Close()
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("T2"), closed)

	id, err := r.SwitchToGroup("work")
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("T1"), id)

	members := r.Group("work")
	require.Len(t, members, 1)
	assert.Equal(t, entity.TabID("T1"), members[0].ID)
	require.NoError(t, r.Validate())
}

func TestRegistry_GroupKeyDroppedWhenEmpty(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("x.com", "work")
	r.Open("y.com", "")

	require.NoError(t, r.SwitchTo("T1"))
	_, err := r.Close()
	require.NoError(t, err)

	assert.Empty(t, r.Groups())
	assert.Empty(t, r.Group("work"))
	_, err = r.SwitchToGroup("work")
	require.ErrorIs(t, err, registry.ErrGroupNotFound)
}

func TestRegistry_StatusMarksExactlyOneCurrent(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "g")
	r.Open("c.com", "")
	require.NoError(t, r.SwitchTo("T2"))

	var current []entity.TabID
	for st := range r.Status() {
		if st.IsCurrent {
			current = append(current, st.ID)
		}
	}
	assert.Equal(t, []entity.TabID{"T2"}, current)
}

// ===========================================================================
// Eviction
// ===========================================================================

// Scenario: capacity 2, three opens evict the least recently touched tab.
func TestRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	r := newRegistry(t, 2)

	id1, _ := r.Open("a.com", "")
	id2, _ := r.Open("b.com", "")
	id3, evicted := r.Open("c.com", "")

	assert.Equal(t, entity.TabID("T1"), id1)
	require.Len(t, evicted, 1)
	assert.Equal(t, id1, evicted[0].ID)
	assert.Equal(t, []entity.TabID{id2, id3}, statusIDs(r))
	assert.Equal(t, id3, currentID(t, r))
	require.NoError(t, r.Validate())
}

func TestRegistry_EvictionHonorsRecentAccess(t *testing.T) {
	r := newRegistry(t, 2)
	r.Open("a.com", "")
	r.Open("b.com", "")
	require.NoError(t, r.SwitchTo("T1"))

	_, evicted := r.Open("c.com", "")

	require.Len(t, evicted, 1)
	assert.Equal(t, entity.TabID("T2"), evicted[0].ID)
	assert.Equal(t, []entity.TabID{"T1", "T3"}, statusIDs(r))
}

func TestRegistry_EvictionTieGoesToHeadSide(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(epoch)

	r := registry.New(2, registry.WithClock(clock))
	r.Open("a.com", "")
	r.Open("b.com", "")
	_, evicted := r.Open("c.com", "")

	require.Len(t, evicted, 1)
	assert.Equal(t, entity.TabID("T1"), evicted[0].ID)
}

func TestRegistry_CustomEvictionPolicy(t *testing.T) {
	policy := mocks.NewMockEvictionPolicy(t)
	policy.EXPECT().Victim(mock.Anything).RunAndReturn(func(tabs *ring.Ring[entity.Tab]) (ring.Handle, bool) {
		return tabs.Current()
	}).Once()

	r := registry.New(1, registry.WithClock(newTickClock()), registry.WithEvictionPolicy(policy))
	r.Open("a.com", "")
	_, evicted := r.Open("b.com", "")

	require.Len(t, evicted, 1)
	assert.Equal(t, entity.TabID("T2"), evicted[0].ID, "policy chose the new tab")
	assert.Equal(t, []entity.TabID{"T1"}, statusIDs(r))
	assert.Equal(t, entity.TabID("T1"), currentID(t, r))
	require.NoError(t, r.Validate())
}

// ===========================================================================
// Prune
// ===========================================================================

// Scenario: the older duplicate goes.
func TestRegistry_PruneRemovesOlderDuplicate(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("a.com", "")

	removed := r.Prune()

	require.Len(t, removed, 1)
	assert.Equal(t, entity.TabID("T1"), removed[0].ID)
	assert.Equal(t, []entity.TabID{"T2"}, statusIDs(r))
	require.NoError(t, r.Validate())
}

func TestRegistry_PruneKeeperCanBeDemoted(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("a.com", "")
	r.Open("b.com", "")
	r.Open("a.com", "")
	require.NoError(t, r.SwitchTo("T2"))

	removed := r.Prune()

	var ids []entity.TabID
	for _, tab := range removed {
		ids = append(ids, tab.ID)
	}
	assert.ElementsMatch(t, []entity.TabID{"T1", "T4"}, ids)
	assert.Equal(t, []entity.TabID{"T2", "T3"}, statusIDs(r))
	assert.Equal(t, entity.TabID("T2"), currentID(t, r))
}

func TestRegistry_PruneRemovingCurrentMovesToSuccessor(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(epoch)

	r := registry.New(5, registry.WithClock(clock))
	r.Open("a.com", "")
	r.Open("b.com", "")
	r.Open("a.com", "")
	require.Equal(t, entity.TabID("T3"), currentID(t, r))

	removed := r.Prune()

	require.Len(t, removed, 1)
	assert.Equal(t, entity.TabID("T3"), removed[0].ID)
	assert.Equal(t, entity.TabID("T1"), currentID(t, r), "current wraps to the successor")
	require.NoError(t, r.Validate())
}

func TestRegistry_PruneTieKeepsFirstSeen(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(epoch)

	r := registry.New(5, registry.WithClock(clock))
	r.Open("a.com", "")
	r.Open("a.com", "")

	removed := r.Prune()
	require.Len(t, removed, 1)
	assert.Equal(t, entity.TabID("T2"), removed[0].ID)
}

func TestRegistry_PruneTwiceRemovesNothing(t *testing.T) {
	r := newRegistry(t, 10)
	for _, u := range []string{"a.com", "b.com", "a.com", "c.com", "b.com"} {
		r.Open(u, "")
	}

	first := r.Prune()
	size := r.Len()
	second := r.Prune()

	assert.Len(t, first, 2)
	assert.Empty(t, second)
	assert.Equal(t, size, r.Len())
}

// ===========================================================================
// Snapshot / Restore
// ===========================================================================

func TestRegistry_SnapshotIsIndependentOfLaterMutation(t *testing.T) {
	r := registry.New(5,
		registry.WithClock(newTickClock()),
		registry.WithSnapshotIDGenerator(func() string { return "snap-1" }),
	)
	r.Open("a.com", "work")
	r.Open("b.com", "")

	snap, err := r.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, entity.SnapshotID("snap-1"), snap.ID)
	assert.Equal(t, entity.TabID("T2"), snap.ActiveID)

	_, _ = r.Next()
	_, _ = r.Close()
	r.Open("c.com", "")

	saved := r.Snapshots()
	require.Len(t, saved, 1)
	require.Len(t, saved[0].Tabs, 2)
	assert.Equal(t, "a.com", saved[0].Tabs[0].URL)
	assert.Equal(t, "work", saved[0].Tabs[0].Group)
	assert.Equal(t, "b.com", saved[0].Tabs[1].URL)
	assert.True(t, saved[0].Tabs[0].LastActive.Equal(snap.Tabs[0].LastActive))
}

func TestRegistry_SnapshotDoesNotMutate(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	before := slices.Collect(r.Status())

	_, err := r.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, before, slices.Collect(r.Status()))
	assert.Equal(t, 1, r.SnapshotCount())
}

func TestRegistry_RestoreRoundTrip(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "work")
	r.Open("b.com", "")
	r.Open("c.com", "work")
	require.NoError(t, r.SwitchTo("T2"))

	_, err := r.Snapshot()
	require.NoError(t, err)

	r.Open("d.com", "")
	_, _ = r.Close()
	_, _ = r.Close()

	result, err := r.Restore()
	require.NoError(t, err)
	assert.True(t, result.ActiveRestored)

	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, statusURLs(r))
	assert.Equal(t, []entity.TabID{"T1", "T2", "T3"}, statusIDs(r))
	cur, _ := r.Current()
	assert.Equal(t, "b.com", cur.URL)
	assert.Len(t, r.Group("work"), 2)
	assert.Equal(t, 0, r.SnapshotCount())
	require.NoError(t, r.Validate())
}

func TestRegistry_RestoreResetsCounter(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	_, err := r.Snapshot()
	require.NoError(t, err)
	r.Open("c.com", "")
	r.Open("d.com", "")

	_, err = r.Restore()
	require.NoError(t, err)

	id, _ := r.Open("e.com", "")
	assert.Equal(t, entity.TabID("T3"), id)
}

func TestRegistry_RestoreIsLIFOAndConsumes(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	_, err := r.Snapshot()
	require.NoError(t, err)
	r.Open("b.com", "")
	_, err = r.Snapshot()
	require.NoError(t, err)

	_, err = r.Restore()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com", "b.com"}, statusURLs(r))

	_, err = r.Restore()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com"}, statusURLs(r))

	_, err = r.Restore()
	require.ErrorIs(t, err, registry.ErrNoSnapshot)
	assert.Equal(t, []string{"a.com"}, statusURLs(r), "failed restore leaves state alone")
}

// Restore regenerates ids from T1. When tabs were closed before the
// snapshot, the captured active id can land on a different tab.
func TestRegistry_RestoreIdentityDivergesAfterEarlierClose(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	r.Open("c.com", "")
	require.NoError(t, r.SwitchTo("T1"))
	_, err := r.Close()
	require.NoError(t, err)

	snap, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, entity.TabID("T2"), snap.ActiveID)

	result, err := r.Restore()
	require.NoError(t, err)

	// T2 now names the replayed c.com, not the captured b.com.
	assert.True(t, result.ActiveRestored)
	cur, _ := r.Current()
	assert.Equal(t, entity.TabID("T2"), cur.ID)
	assert.Equal(t, "c.com", cur.URL)
}

func TestRegistry_RestoreActiveMissingLeavesLastReplayed(t *testing.T) {
	r := newRegistry(t, 5)
	r.Open("a.com", "")
	r.Open("b.com", "")
	r.Open("c.com", "")
	_, err := r.Close()
	require.NoError(t, err)
	r.Open("d.com", "")
	// Ring: T1 a, T4 d, T2 b with T4 current.

	snap, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, entity.TabID("T4"), snap.ActiveID)

	result, err := r.Restore()
	require.NoError(t, err)

	assert.False(t, result.ActiveRestored)
	cur, _ := r.Current()
	assert.Equal(t, entity.TabID("T3"), cur.ID)
	assert.Equal(t, "b.com", cur.URL)
}
