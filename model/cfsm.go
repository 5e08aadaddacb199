package model

import (
	"fmt"
	"io"

	"github.com/nickng/cfsm"
	"github.com/nickng/dinephil/table"
)

// Messages exchanged in the CFSM system.
const (
	MsgEnter  = "enter"
	MsgAdmit  = "admit"
	MsgLeave  = "leave"
	MsgLock   = "lock"
	MsgGrant  = "grant"
	MsgUnlock = "unlock"
)

// CFSMs is the dinner as a CFSM system: one machine per philosopher, one per
// fork and one for the gate.
type CFSMs struct {
	Sys          *cfsm.System
	Gate         *cfsm.CFSM
	Philosophers []*cfsm.CFSM
	Forks        []*cfsm.CFSM
	size         int
}

// NewCFSMs builds the CFSM system of a table of n philosophers.
func NewCFSMs(n int) *CFSMs {
	sys := &CFSMs{
		Sys:          cfsm.NewSystem(),
		Philosophers: make([]*cfsm.CFSM, n),
		Forks:        make([]*cfsm.CFSM, n),
		size:         n,
	}
	for i := 0; i < n; i++ {
		m := sys.Sys.NewMachine()
		m.Comment = PhilosopherName(i)
		sys.Philosophers[i] = m
	}
	for i := 0; i < n; i++ {
		m := sys.Sys.NewMachine()
		m.Comment = ForkName(i)
		sys.Forks[i] = m
	}
	sys.Gate = sys.Sys.NewMachine()
	sys.Gate.Comment = gateName

	for i, m := range sys.Philosophers {
		sys.philosopherToMachine(i, m)
	}
	for i, m := range sys.Forks {
		sys.forkToMachine(i, m)
	}
	sys.gateToMachine(n-1, sys.Gate)
	return sys
}

// WriteTo implementers io.WriterTo interface.
func (sys *CFSMs) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(sys.Sys.String()))
	return int64(n), err
}

// PrintSummary shows which machine is which.
func (sys *CFSMs) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Total of %d CFSMs (%d philosophers, %d forks, 1 gate)\n",
		len(sys.Philosophers)+len(sys.Forks)+1, len(sys.Philosophers), len(sys.Forks))
	for _, m := range sys.Philosophers {
		fmt.Fprintf(w, "\t%d\t= %s\n", m.ID, m.Comment)
	}
	for _, m := range sys.Forks {
		fmt.Fprintf(w, "\t%d\t= %s\n", m.ID, m.Comment)
	}
	fmt.Fprintf(w, "\t%d\t= %s\n", sys.Gate.ID, sys.Gate.Comment)
}

// send adds q -- to!msg --> next and returns next.
func send(q *cfsm.State, to *cfsm.CFSM, msg string, next *cfsm.State) *cfsm.State {
	tr := cfsm.NewSend(to, msg)
	tr.SetNext(next)
	q.AddTransition(tr)
	return next
}

// recv adds q -- from?msg --> next and returns next.
func recv(q *cfsm.State, from *cfsm.CFSM, msg string, next *cfsm.State) *cfsm.State {
	tr := cfsm.NewRecv(from, msg)
	tr.SetNext(next)
	q.AddTransition(tr)
	return next
}

// philosopherToMachine is the cycle
// seat, first fork, second fork, put down second, put down first, leave.
func (sys *CFSMs) philosopherToMachine(id int, m *cfsm.CFSM) {
	first, second := table.Ordered(id, sys.size)
	f1, f2 := sys.Forks[first], sys.Forks[second]

	q0 := m.NewState()
	q := send(q0, sys.Gate, MsgEnter, m.NewState())
	q = recv(q, sys.Gate, MsgAdmit, m.NewState())
	q = send(q, f1, MsgLock, m.NewState())
	q = recv(q, f1, MsgGrant, m.NewState())
	q = send(q, f2, MsgLock, m.NewState())
	q = recv(q, f2, MsgGrant, m.NewState())
	q = send(q, f2, MsgUnlock, m.NewState())
	q = send(q, f1, MsgUnlock, m.NewState())
	send(q, sys.Gate, MsgLeave, q0)
	m.Start = q0
}

// forkToMachine lets either neighbour of fork i hold it, one at a time.
func (sys *CFSMs) forkToMachine(i int, m *cfsm.CFSM) {
	n := sys.size
	q0 := m.NewState()
	// Fork i lies between philosopher i (its left fork) and i-1 (its right).
	for _, id := range [...]int{i, (i + n - 1) % n} {
		p := sys.Philosophers[id]
		q := recv(q0, p, MsgLock, m.NewState())
		q = send(q, p, MsgGrant, m.NewState())
		recv(q, p, MsgUnlock, q0)
	}
	m.Start = q0
}

// gateToMachine counts taken seats from 0 to capacity.
func (sys *CFSMs) gateToMachine(capacity int, m *cfsm.CFSM) {
	levels := make([]*cfsm.State, capacity+1)
	for c := range levels {
		levels[c] = m.NewState()
	}
	for c := range levels {
		for _, p := range sys.Philosophers {
			if c < capacity {
				q := recv(levels[c], p, MsgEnter, m.NewState())
				send(q, p, MsgAdmit, levels[c+1])
			}
			if c > 0 {
				recv(levels[c], p, MsgLeave, levels[c-1])
			}
		}
	}
	m.Start = levels[0]
}
