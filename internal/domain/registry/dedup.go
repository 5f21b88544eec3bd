package registry

import (
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/ring"
)

// duplicates walks the ring once and returns every node that shares its URL
// with a more recently active node. The first node seen for a URL is the
// keeper until a later one with a strictly newer LastActive replaces it.
// Nothing is removed here; the caller applies the result after the walk.
func duplicates(tabs *ring.Ring[entity.Tab]) []ring.Handle {
	type keeper struct {
		handle ring.Handle
		tab    *entity.Tab
	}

	best := make(map[string]keeper)
	var doomed []ring.Handle

	for h, tab := range tabs.All() {
		k, seen := best[tab.URL]
		switch {
		case !seen:
			best[tab.URL] = keeper{handle: h, tab: tab}
		case tab.LastActive.After(k.tab.LastActive):
			doomed = append(doomed, k.handle)
			best[tab.URL] = keeper{handle: h, tab: tab}
		default:
			doomed = append(doomed, h)
		}
	}
	return doomed
}
