package registry

import (
	"fmt"

	"github.com/bnema/tabring/internal/domain/ring"
)

// Validate checks that the ring is well formed and that both indices
// describe exactly the tabs in the ring.
func (r *Registry) Validate() error {
	if err := r.tabs.Validate(); err != nil {
		return err
	}
	if r.tabs.Len() > r.maxTabs {
		return fmt.Errorf("%w: %d tabs exceed capacity %d", ring.ErrCorrupt, r.tabs.Len(), r.maxTabs)
	}
	if r.index.len() != r.tabs.Len() {
		return fmt.Errorf("%w: id index has %d entries for %d tabs", ring.ErrCorrupt, r.index.len(), r.tabs.Len())
	}

	grouped := 0
	for h, tab := range r.tabs.All() {
		indexed, ok := r.index.lookup(tab.ID)
		if !ok || indexed != h {
			return fmt.Errorf("%w: tab %s not indexed at its node", ring.ErrCorrupt, tab.ID)
		}
		if !tab.HasGroup() {
			continue
		}
		grouped++
		bucket, ok := r.index.byGroup[tab.Group]
		if !ok {
			return fmt.Errorf("%w: group %q missing for tab %s", ring.ErrCorrupt, tab.Group, tab.ID)
		}
		if _, ok := bucket.items[h]; !ok {
			return fmt.Errorf("%w: tab %s missing from group %q", ring.ErrCorrupt, tab.ID, tab.Group)
		}
	}

	members := 0
	for group, bucket := range r.index.byGroup {
		if bucket.len() == 0 {
			return fmt.Errorf("%w: empty group %q kept", ring.ErrCorrupt, group)
		}
		members += bucket.len()
	}
	if members != grouped {
		return fmt.Errorf("%w: group index has %d members for %d grouped tabs", ring.ErrCorrupt, members, grouped)
	}
	return nil
}
