package table

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

const noOwner = -1

type fork struct {
	mu    sync.Mutex
	owner atomic.Int32
}

// Forks is the set of forks on the table, one between each pair of
// neighbouring philosophers. Fork i sits between philosophers i-1 and i.
type Forks struct {
	forks []fork
}

// NewForks creates n unowned forks.
func NewForks(n int) *Forks {
	f := &Forks{forks: make([]fork, n)}
	for i := range f.forks {
		f.forks[i].owner.Store(noOwner)
	}
	return f
}

// Lock blocks until fork i is free, then gives it to philosopher id.
func (f *Forks) Lock(i, id int) {
	fk := &f.forks[i]
	fk.mu.Lock()
	fk.owner.Store(int32(id))
}

// Unlock puts down fork i held by philosopher id.
// Unlocking a fork held by someone else panics.
func (f *Forks) Unlock(i, id int) {
	fk := &f.forks[i]
	if prev := fk.owner.Swap(noOwner); prev != int32(id) {
		fk.owner.Store(prev)
		panic(fmt.Sprintf("table: fork %d put down by philosopher %d but held by %d", i, id, prev))
	}
	fk.mu.Unlock()
}

// Owner returns the philosopher holding fork i.
func (f *Forks) Owner(i int) (id int, ok bool) {
	o := f.forks[i].owner.Load()
	return int(o), o != noOwner
}

// Held returns the number of forks currently picked up.
func (f *Forks) Held() int {
	n := 0
	for i := range f.forks {
		if _, ok := f.Owner(i); ok {
			n++
		}
	}
	return n
}

// Len returns the number of forks.
func (f *Forks) Len() int { return len(f.forks) }

// Adjacent returns the forks to the left and right of philosopher id at a
// table of n.
func Adjacent(id, n int) (left, right int) {
	return id, (id + 1) % n
}

// Ordered returns the forks of philosopher id in the order they are picked
// up: lowest index first. Every philosopher agreeing on this order is what
// rules out a circular wait.
func Ordered(id, n int) (first, second int) {
	left, right := Adjacent(id, n)
	if left > right {
		return right, left
	}
	return left, right
}
