package model

import (
	"github.com/nickng/dinephil/table"
	"github.com/nickng/migo/v3"
)

// MiGo function names.
const (
	MainFunc        = "main.main"
	PhilosopherFunc = "main.philosopher"
)

// chanVar is a channel name in the MiGo program.
type chanVar string

func (v chanVar) Name() string   { return string(v) }
func (v chanVar) String() string { return string(v) }

// NewProgram writes the dinner for n philosophers as a MiGo program.
//
// Seats and forks are modelled as buffered channels used as semaphores: the
// gate has n-1 slots and every fork 1, a send takes a slot and a receive
// gives it back.
func NewProgram(n int) *migo.Program {
	prog := migo.NewProgram()
	gate, first, second := chanVar(gateName), chanVar("first"), chanVar("second")

	main := migo.NewFunction(MainFunc)
	main.AddStmts(&migo.NewChanStatement{Name: gate, Chan: gateName, Size: int64(n - 1)})
	for i := 0; i < n; i++ {
		fork := chanVar(ForkName(i))
		main.AddStmts(&migo.NewChanStatement{Name: fork, Chan: ForkName(i), Size: 1})
	}
	for i := 0; i < n; i++ {
		lo, hi := table.Ordered(i, n)
		spawn := &migo.SpawnStatement{Name: PhilosopherFunc, Params: []*migo.Parameter{}}
		spawn.AddParams(
			&migo.Parameter{Caller: gate, Callee: gate},
			&migo.Parameter{Caller: chanVar(ForkName(lo)), Callee: first},
			&migo.Parameter{Caller: chanVar(ForkName(hi)), Callee: second},
		)
		main.AddStmts(spawn)
	}

	phil := migo.NewFunction(PhilosopherFunc)
	phil.AddParams(
		&migo.Parameter{Caller: gate, Callee: gate},
		&migo.Parameter{Caller: first, Callee: first},
		&migo.Parameter{Caller: second, Callee: second},
	)
	phil.AddStmts(
		&migo.TauStatement{}, // think
		&migo.SendStatement{Chan: gate.Name()},
		&migo.SendStatement{Chan: first.Name()},
		&migo.SendStatement{Chan: second.Name()},
		&migo.TauStatement{}, // eat
		&migo.RecvStatement{Chan: second.Name()},
		&migo.RecvStatement{Chan: first.Name()},
		&migo.RecvStatement{Chan: gate.Name()},
		&migo.CallStatement{Name: PhilosopherFunc, Params: phil.Params},
	)

	prog.AddFunction(main)
	prog.AddFunction(phil)
	return prog
}
