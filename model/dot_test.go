package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestGraphvizDotOrder(t *testing.T) {
	const n = 7
	dot, err := NewGraphvizDot(n)
	if err != nil {
		t.Fatal(err)
	}
	// Philosopher 6 sits between forks 6 and 0 and must take fork 0 first.
	want := map[string]string{
		"gate":  SeatLabel,
		"fork0": FirstForkLabel,
		"fork6": SecondForkLabel,
	}
	found := 0
	for _, e := range dot.Graph.Edges.Edges {
		if e.Src != PhilosopherName(6) {
			continue
		}
		label, ok := want[e.Dst]
		if !ok {
			t.Errorf("Unexpected edge P6 -> %s", e.Dst)
			continue
		}
		if !strings.Contains(e.Attrs["label"], label) {
			t.Errorf("Expecting edge P6 -> %s labelled %q but got %s", e.Dst, label, e.Attrs["label"])
		}
		found++
	}
	if found != 3 {
		t.Errorf("Expecting 3 edges from P6 but got %d", found)
	}
	if got := len(dot.Graph.Edges.Edges); got != 3*n {
		t.Errorf("Expecting %d edges but got %d", 3*n, got)
	}
}

func TestGraphvizDotWriteTo(t *testing.T) {
	dot, err := NewGraphvizDot(3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := dot.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph G") {
		t.Errorf("Expecting a directed graph named G, got:\n%s", out)
	}
	for _, name := range []string{"P0", "P2", "fork1", "gate"} {
		if !strings.Contains(out, name) {
			t.Errorf("Expecting node %s in output", name)
		}
	}
}
