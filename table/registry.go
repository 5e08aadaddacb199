package table

import "go.uber.org/atomic"

// Registry holds the published state of every philosopher.
//
// Each slot is written only by its own philosopher and may be read by anyone
// at any time. Reading several slots gives no consistent snapshot.
type Registry struct {
	slots []atomic.Int32
}

// NewRegistry creates a Registry of n slots all set to initial.
func NewRegistry(n int, initial State) *Registry {
	r := &Registry{slots: make([]atomic.Int32, n)}
	for i := range r.slots {
		r.slots[i].Store(int32(initial))
	}
	return r
}

// Set publishes the state of philosopher id.
func (r *Registry) Set(id int, s State) { r.slots[id].Store(int32(s)) }

// Get reads the state of philosopher id.
func (r *Registry) Get(id int) State { return State(r.slots[id].Load()) }

// Len returns the number of slots.
func (r *Registry) Len() int { return len(r.slots) }

// Snapshot reads every slot in order.
func (r *Registry) Snapshot() []State {
	states := make([]State, len(r.slots))
	for i := range r.slots {
		states[i] = r.Get(i)
	}
	return states
}

// Count returns how many slots currently read s.
func (r *Registry) Count(s State) int {
	n := 0
	for i := range r.slots {
		if r.Get(i) == s {
			n++
		}
	}
	return n
}
