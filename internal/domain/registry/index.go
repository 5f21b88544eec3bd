package registry

import (
	"container/list"

	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/ring"
)

// groupBucket is an insertion-ordered set of ring handles.
type groupBucket struct {
	order *list.List // Front = first registered
	items map[ring.Handle]*list.Element
}

func newGroupBucket() *groupBucket {
	return &groupBucket{
		order: list.New(),
		items: make(map[ring.Handle]*list.Element),
	}
}

func (b *groupBucket) add(h ring.Handle) {
	if _, ok := b.items[h]; ok {
		return
	}
	b.items[h] = b.order.PushBack(h)
}

func (b *groupBucket) remove(h ring.Handle) {
	if elem, ok := b.items[h]; ok {
		b.order.Remove(elem)
		delete(b.items, h)
	}
}

func (b *groupBucket) first() (ring.Handle, bool) {
	front := b.order.Front()
	if front == nil {
		return ring.Handle{}, false
	}
	return front.Value.(ring.Handle), true
}

func (b *groupBucket) len() int {
	return b.order.Len()
}

// index holds non-owning lookups into the ring: id → node and
// group → nodes. It is only mutated together with the ring, through
// Registry.insert and Registry.remove.
type index struct {
	byID    map[entity.TabID]ring.Handle
	byGroup map[string]*groupBucket
}

func newIndex() *index {
	return &index{
		byID:    make(map[entity.TabID]ring.Handle),
		byGroup: make(map[string]*groupBucket),
	}
}

func (ix *index) register(h ring.Handle, tab entity.Tab) {
	ix.byID[tab.ID] = h
	if !tab.HasGroup() {
		return
	}
	bucket, ok := ix.byGroup[tab.Group]
	if !ok {
		bucket = newGroupBucket()
		ix.byGroup[tab.Group] = bucket
	}
	bucket.add(h)
}

func (ix *index) unregister(h ring.Handle, tab entity.Tab) {
	delete(ix.byID, tab.ID)
	if !tab.HasGroup() {
		return
	}
	bucket, ok := ix.byGroup[tab.Group]
	if !ok {
		return
	}
	bucket.remove(h)
	if bucket.len() == 0 {
		delete(ix.byGroup, tab.Group)
	}
}

func (ix *index) lookup(id entity.TabID) (ring.Handle, bool) {
	h, ok := ix.byID[id]
	return h, ok
}

func (ix *index) firstInGroup(group string) (ring.Handle, bool) {
	bucket, ok := ix.byGroup[group]
	if !ok {
		return ring.Handle{}, false
	}
	return bucket.first()
}

// group returns the members of group in registration order.
func (ix *index) group(group string) []ring.Handle {
	bucket, ok := ix.byGroup[group]
	if !ok {
		return nil
	}
	out := make([]ring.Handle, 0, bucket.len())
	for e := bucket.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(ring.Handle))
	}
	return out
}

func (ix *index) groups() []string {
	out := make([]string, 0, len(ix.byGroup))
	for g := range ix.byGroup {
		out = append(out, g)
	}
	return out
}

func (ix *index) len() int {
	return len(ix.byID)
}

func (ix *index) clear() {
	ix.byID = make(map[entity.TabID]ring.Handle)
	ix.byGroup = make(map[string]*groupBucket)
}
