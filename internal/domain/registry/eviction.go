package registry

import (
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/ring"
)

// EvictionPolicy chooses which tab to drop when the registry is over capacity.
type EvictionPolicy interface {
	// Victim returns the node to remove, or false if the ring is empty.
	Victim(tabs *ring.Ring[entity.Tab]) (ring.Handle, bool)
}

// LeastRecentlyUsed evicts the tab with the oldest LastActive.
// The ring is scanned from head; on a tie the node met first is chosen.
type LeastRecentlyUsed struct{}

// Victim implements EvictionPolicy.
func (LeastRecentlyUsed) Victim(tabs *ring.Ring[entity.Tab]) (ring.Handle, bool) {
	var (
		victim ring.Handle
		oldest *entity.Tab
	)
	for h, tab := range tabs.All() {
		if oldest == nil || tab.LastActive.Before(oldest.LastActive) {
			victim = h
			oldest = tab
		}
	}
	return victim, oldest != nil
}
