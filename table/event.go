package table

import "fmt"

// EventKind is the kind of protocol step a philosopher reports.
type EventKind int

const (
	StateChanged EventKind = iota // State set to Event.State
	GateAcquired                  // Seat taken
	GateReleased                  // Seat about to be freed
	ForkLocked                    // Event.Fork picked up
	ForkUnlocked                  // Event.Fork about to be put down
)

var eventNames = [...]string{"StateChanged", "GateAcquired", "GateReleased", "ForkLocked", "ForkUnlocked"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// Event is one protocol step of a philosopher.
//
// Acquisitions are reported after they happen and releases before they
// happen, so a Hook never sees a resource given to two philosophers at once.
type Event struct {
	Kind        EventKind
	Philosopher int
	State       State // StateChanged only
	Fork        int   // ForkLocked and ForkUnlocked only
}

func (e Event) String() string {
	switch e.Kind {
	case StateChanged:
		return fmt.Sprintf("%d %s %s", e.Philosopher, e.Kind, e.State)
	case ForkLocked, ForkUnlocked:
		return fmt.Sprintf("%d %s %d", e.Philosopher, e.Kind, e.Fork)
	}
	return fmt.Sprintf("%d %s", e.Philosopher, e.Kind)
}

// Hook receives events synchronously from the philosopher goroutines. It
// must be safe for concurrent use and must not block.
type Hook func(Event)
