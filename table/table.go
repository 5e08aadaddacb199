package table

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Default phase durations.
const (
	DefaultThinkMin = 500 * time.Millisecond
	DefaultThinkMax = 2500 * time.Millisecond
	DefaultEatMin   = 1000 * time.Millisecond
	DefaultEatMax   = 3000 * time.Millisecond
)

// Table is the shared state of one dinner. Philosophers hold a pointer to it
// rather than reaching for globals.
type Table struct {
	Gate     *Gate     // Seats: one less than the number of philosophers.
	Forks    *Forks    // One fork between each pair of neighbours.
	Registry *Registry // Published philosopher states.
	Flag     *Flag     // Termination flag.

	Think DurationFunc
	Eat   DurationFunc
	Clock clock.Clock
	Hook  Hook // Optional.

	Logger *zap.Logger
}

// New lays a table for n philosophers with default timings.
// n must be at least 2.
func New(n int) *Table {
	return &Table{
		Gate:     NewGate(n - 1),
		Forks:    NewForks(n),
		Registry: NewRegistry(n, Thinking),
		Flag:     NewFlag(),
		Think:    Uniform(DefaultThinkMin, DefaultThinkMax),
		Eat:      Uniform(DefaultEatMin, DefaultEatMax),
		Clock:    clock.New(),
		Logger:   zap.NewNop(),
	}
}

// Size returns the number of seats at the table, i.e. philosophers.
func (t *Table) Size() int { return t.Forks.Len() }

// Seat creates philosopher id at the table.
func (t *Table) Seat(id int) *Philosopher {
	first, second := Ordered(id, t.Size())
	return &Philosopher{
		id:     id,
		first:  first,
		second: second,
		table:  t,
		log:    t.Logger.With(zap.Int("philosopher", id)),
	}
}

// Philosophers seats every philosopher in id order.
func (t *Table) Philosophers() []*Philosopher {
	ps := make([]*Philosopher, t.Size())
	for i := range ps {
		ps[i] = t.Seat(i)
	}
	return ps
}

// Drained reports whether no seat is taken and no fork is held.
func (t *Table) Drained() bool {
	return t.Gate.Held() == 0 && t.Forks.Held() == 0
}

func (t *Table) emit(e Event) {
	if t.Hook != nil {
		t.Hook(e)
	}
}
