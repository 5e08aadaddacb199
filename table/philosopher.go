package table

import (
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Philosopher is one diner. Dine runs its think/eat cycle until the table's
// Flag is set.
type Philosopher struct {
	id            int
	first, second int // Forks in pick-up order.
	table         *Table
	meals         atomic.Int64
	log           *zap.Logger
}

// ID returns the seat number of the philosopher.
func (p *Philosopher) ID() int { return p.id }

// Forks returns the forks of the philosopher in pick-up order.
func (p *Philosopher) Forks() (first, second int) { return p.first, p.second }

// Meals returns the number of meals eaten so far.
func (p *Philosopher) Meals() int64 { return p.meals.Load() }

// Dine runs the philosopher until the table's Flag is set. It returns with the
// philosopher Waiting, holding no fork and no seat.
func (p *Philosopher) Dine() {
	t := p.table
	defer p.setState(Waiting)

	for {
		p.setState(Thinking)
		p.pause(t.Think(p.id))
		if t.Flag.Stopped() {
			return
		}

		p.setState(Hungry)
		t.Gate.Acquire()
		t.emit(Event{Kind: GateAcquired, Philosopher: p.id})
		p.log.Debug("seated", zap.Int("free", t.Gate.Available()))
		if t.Flag.Stopped() {
			p.leave()
			return
		}

		p.pickUp()
		p.setState(Eating)
		p.meals.Inc()
		p.pause(t.Eat(p.id))
		p.setState(Thinking)
		p.putDown()
		p.leave()

		if t.Flag.Stopped() {
			return
		}
	}
}

// pickUp takes the lower-indexed fork, then the higher-indexed one.
func (p *Philosopher) pickUp() {
	for _, i := range [...]int{p.first, p.second} {
		p.table.Forks.Lock(i, p.id)
		p.table.emit(Event{Kind: ForkLocked, Philosopher: p.id, Fork: i})
		p.log.Debug("fork picked up", zap.Int("fork", i))
	}
}

// putDown releases the forks in reverse pick-up order.
func (p *Philosopher) putDown() {
	for _, i := range [...]int{p.second, p.first} {
		p.table.emit(Event{Kind: ForkUnlocked, Philosopher: p.id, Fork: i})
		p.table.Forks.Unlock(i, p.id)
		p.log.Debug("fork put down", zap.Int("fork", i))
	}
}

func (p *Philosopher) leave() {
	p.table.emit(Event{Kind: GateReleased, Philosopher: p.id})
	p.table.Gate.Release()
}

func (p *Philosopher) setState(s State) {
	p.table.Registry.Set(p.id, s)
	p.table.emit(Event{Kind: StateChanged, Philosopher: p.id, State: s})
	p.log.Debug("state", zap.Stringer("state", s))
}

// pause sleeps for d, waking early if the Flag is set.
func (p *Philosopher) pause(d time.Duration) {
	if d <= 0 {
		return
	}
	timer := p.table.Clock.Timer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-p.table.Flag.Done():
	}
}
