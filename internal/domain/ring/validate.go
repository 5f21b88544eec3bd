package ring

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every Validate failure.
var ErrCorrupt = errors.New("ring corrupt")

// Validate checks the structural invariants: head and current are absent
// exactly when the ring is empty, following next size times from head
// returns to head over live nodes only, prev inverts next, and current is
// one of the visited nodes.
func (r *Ring[T]) Validate() error {
	if r.size == 0 {
		if r.head != nilSlot || r.current != nilSlot {
			return fmt.Errorf("%w: empty ring has head=%d current=%d", ErrCorrupt, r.head, r.current)
		}
		return nil
	}
	if r.head == nilSlot || r.current == nilSlot {
		return fmt.Errorf("%w: size %d without head or current", ErrCorrupt, r.size)
	}

	seenCurrent := false
	slot := r.head
	for i := range r.size {
		n := &r.nodes[slot]
		if !n.live {
			return fmt.Errorf("%w: dead slot %d reached at step %d", ErrCorrupt, slot, i)
		}
		if r.nodes[n.next].prev != slot {
			return fmt.Errorf("%w: prev of %d does not point back to %d", ErrCorrupt, n.next, slot)
		}
		if slot == r.current {
			seenCurrent = true
		}
		slot = n.next
		if slot == r.head && i < r.size-1 {
			return fmt.Errorf("%w: cycle closed after %d of %d nodes", ErrCorrupt, i+1, r.size)
		}
	}
	if slot != r.head {
		return fmt.Errorf("%w: %d steps from head did not return to head", ErrCorrupt, r.size)
	}
	if !seenCurrent {
		return fmt.Errorf("%w: current slot %d not reachable from head", ErrCorrupt, r.current)
	}
	return nil
}
