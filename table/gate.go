package table

import (
	"context"
	"fmt"

	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"
)

// Gate limits how many philosophers may be seated (trying to eat, or eating)
// at the same time. Waiters are not woken in any guaranteed order.
type Gate struct {
	sem      *semaphore.Weighted
	capacity int64
	held     atomic.Int64
}

// NewGate creates a Gate with capacity seats.
func NewGate(capacity int) *Gate {
	return &Gate{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: int64(capacity),
	}
}

// Acquire blocks until a seat is free and takes it.
func (g *Gate) Acquire() {
	// A background context is never done, so Acquire cannot fail.
	_ = g.sem.Acquire(context.Background(), 1)
	g.held.Inc()
}

// TryAcquire takes a seat if one is free without blocking.
func (g *Gate) TryAcquire() bool {
	if !g.sem.TryAcquire(1) {
		return false
	}
	g.held.Inc()
	return true
}

// Release frees a seat, waking a blocked Acquire if there is one.
// Releasing a seat that was not taken panics.
func (g *Gate) Release() {
	if g.held.Dec() < 0 {
		g.held.Inc()
		panic(fmt.Sprintf("table: gate released more than acquired (capacity %d)", g.capacity))
	}
	g.sem.Release(1)
}

// Capacity returns the number of seats.
func (g *Gate) Capacity() int { return int(g.capacity) }

// Held returns the number of seats currently taken.
func (g *Gate) Held() int { return int(g.held.Load()) }

// Available returns the number of free seats.
func (g *Gate) Available() int { return int(g.capacity - g.held.Load()) }
