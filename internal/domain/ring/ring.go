// Package ring provides a cyclic doubly-linked sequence backed by an arena.
//
// Nodes live in a slice and link to each other by slot index, so the cycle
// holds no pointers to itself. Callers address nodes through Handles; a
// Handle carries the generation of the slot it was issued for and stops
// resolving once that node is removed, even if the slot is reused.
package ring

import "iter"

const nilSlot = -1

// Handle references a node in a Ring. The zero Handle never resolves.
type Handle struct {
	slot int
	gen  uint32
}

type node[T any] struct {
	value T
	next  int
	prev  int
	gen   uint32
	live  bool
}

// Ring is a cyclic sequence with a head, a current position and O(1)
// insertion, removal and stepping. It is not safe for concurrent use.
type Ring[T any] struct {
	nodes   []node[T]
	free    []int
	head    int
	current int
	size    int
}

// New creates an empty ring.
func New[T any]() *Ring[T] {
	return &Ring[T]{
		head:    nilSlot,
		current: nilSlot,
	}
}

// Len returns the number of live nodes.
func (r *Ring[T]) Len() int {
	return r.size
}

// Head returns the traversal start, or false when the ring is empty.
func (r *Ring[T]) Head() (Handle, bool) {
	if r.head == nilSlot {
		return Handle{}, false
	}
	return r.handle(r.head), true
}

// Current returns the focused node, or false when the ring is empty.
func (r *Ring[T]) Current() (Handle, bool) {
	if r.current == nilSlot {
		return Handle{}, false
	}
	return r.handle(r.current), true
}

// SetCurrent focuses h. It returns false if h does not resolve.
func (r *Ring[T]) SetCurrent(h Handle) bool {
	if !r.valid(h) {
		return false
	}
	r.current = h.slot
	return true
}

// Contains reports whether h refers to a live node of this ring.
func (r *Ring[T]) Contains(h Handle) bool {
	return r.valid(h)
}

// Value returns a pointer to the value held by h. The pointer is only
// valid until the next insertion.
func (r *Ring[T]) Value(h Handle) (*T, bool) {
	if !r.valid(h) {
		return nil, false
	}
	return &r.nodes[h.slot].value, true
}

// InsertAfter links v immediately after at and returns its handle.
// On an empty ring at is ignored and v becomes the sole node, head and
// current. On a non-empty ring the current position is left unchanged and
// false is returned if at does not resolve.
func (r *Ring[T]) InsertAfter(at Handle, v T) (Handle, bool) {
	if r.size == 0 {
		slot := r.alloc(v)
		r.head = slot
		r.current = slot
		r.size = 1
		return r.handle(slot), true
	}
	if !r.valid(at) {
		return Handle{}, false
	}

	slot := r.alloc(v)
	a := at.slot
	b := r.nodes[a].next

	r.nodes[slot].prev = a
	r.nodes[slot].next = b
	r.nodes[a].next = slot
	r.nodes[b].prev = slot
	r.size++

	return r.handle(slot), true
}

// Remove unlinks h and returns its value. Removing the head or the current
// node moves that position to the successor; removing the last node
// empties the ring.
func (r *Ring[T]) Remove(h Handle) (T, bool) {
	if !r.valid(h) {
		var zero T
		return zero, false
	}

	s := h.slot
	v := r.nodes[s].value

	if r.size == 1 {
		r.head = nilSlot
		r.current = nilSlot
	} else {
		p, n := r.nodes[s].prev, r.nodes[s].next
		r.nodes[p].next = n
		r.nodes[n].prev = p
		if r.head == s {
			r.head = n
		}
		if r.current == s {
			r.current = n
		}
	}

	r.release(s)
	r.size--
	return v, true
}

// Next moves current one step forward and returns it.
func (r *Ring[T]) Next() (Handle, bool) {
	if r.current == nilSlot {
		return Handle{}, false
	}
	r.current = r.nodes[r.current].next
	return r.handle(r.current), true
}

// Prev moves current one step backward and returns it.
func (r *Ring[T]) Prev() (Handle, bool) {
	if r.current == nilSlot {
		return Handle{}, false
	}
	r.current = r.nodes[r.current].prev
	return r.handle(r.current), true
}

// Clear removes every node. Handles issued before Clear stop resolving.
func (r *Ring[T]) Clear() {
	for slot := range r.nodes {
		if r.nodes[slot].live {
			r.release(slot)
		}
	}
	r.head = nilSlot
	r.current = nilSlot
	r.size = 0
}

// All walks the ring once starting at head. The ring must not be mutated
// during the walk; collect handles first when removing.
func (r *Ring[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		if r.size == 0 {
			return
		}
		slot := r.head
		for range r.size {
			next := r.nodes[slot].next
			if !yield(r.handle(slot), &r.nodes[slot].value) {
				return
			}
			slot = next
		}
	}
}

func (r *Ring[T]) handle(slot int) Handle {
	return Handle{slot: slot, gen: r.nodes[slot].gen}
}

func (r *Ring[T]) valid(h Handle) bool {
	if h.slot < 0 || h.slot >= len(r.nodes) {
		return false
	}
	n := &r.nodes[h.slot]
	return n.live && n.gen == h.gen
}

// alloc takes a slot from the free list (or grows the arena) and bumps its
// generation so handles to the previous occupant stay dead.
func (r *Ring[T]) alloc(v T) int {
	var slot int
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		slot = len(r.nodes)
		r.nodes = append(r.nodes, node[T]{})
	}

	n := &r.nodes[slot]
	n.value = v
	n.gen++
	n.live = true
	n.next = slot
	n.prev = slot
	return slot
}

func (r *Ring[T]) release(slot int) {
	var zero T
	n := &r.nodes[slot]
	n.value = zero
	n.live = false
	n.next = nilSlot
	n.prev = nilSlot
	r.free = append(r.free, slot)
}
