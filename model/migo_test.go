package model

import (
	"testing"

	"github.com/nickng/migo/v3"
)

func TestProgram(t *testing.T) {
	const n = 4
	prog := NewProgram(n)
	if len(prog.Funcs) != 2 {
		t.Fatalf("Expecting main and philosopher functions but got %d", len(prog.Funcs))
	}
	var main, phil *migo.Function
	for _, f := range prog.Funcs {
		switch f.Name {
		case MainFunc:
			main = f
		case PhilosopherFunc:
			phil = f
		}
	}
	if main == nil || phil == nil {
		t.Fatal("Expecting main.main and main.philosopher")
	}

	chans, spawns := 0, 0
	for _, s := range main.Stmts {
		switch s := s.(type) {
		case *migo.NewChanStatement:
			chans++
			if s.Chan == gateName && s.Size != n-1 {
				t.Errorf("Expecting gate buffered to %d but got %d", n-1, s.Size)
			}
		case *migo.SpawnStatement:
			spawns++
			if len(s.Params) != 3 {
				t.Errorf("Expecting 3 parameters but got %d", len(s.Params))
			}
		}
	}
	if chans != n+1 || spawns != n {
		t.Errorf("Expecting %d channels and %d spawns but got %d and %d", n+1, n, chans, spawns)
	}
	// The last philosopher sits between forks 3 and 0 and takes fork 0 first.
	last := main.Stmts[len(main.Stmts)-1].(*migo.SpawnStatement)
	if got := last.Params[1].Caller.String(); got != "fork0" {
		t.Errorf("Expecting fork0 as first fork of the last philosopher but got %s", got)
	}

	var order []string
	for _, s := range phil.Stmts {
		switch s := s.(type) {
		case *migo.SendStatement:
			order = append(order, "send "+s.Chan)
		case *migo.RecvStatement:
			order = append(order, "recv "+s.Chan)
		}
	}
	want := []string{"send gate", "send first", "send second", "recv second", "recv first", "recv gate"}
	if len(order) != len(want) {
		t.Fatalf("Expecting %v but got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expecting step %d to be %q but got %q", i, want[i], order[i])
		}
	}
	if _, ok := phil.Stmts[len(phil.Stmts)-1].(*migo.CallStatement); !ok {
		t.Error("Expecting philosopher to loop by calling itself")
	}
}
