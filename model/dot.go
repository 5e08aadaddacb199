package model

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
	"github.com/nickng/dinephil/table"
)

// Edge labels, in the order a philosopher takes its resources.
const (
	SeatLabel        = "1 seat"
	FirstForkLabel   = "2 first fork"
	SecondForkLabel  = "3 second fork"
	philosopherShape = "ellipse"
	forkShape        = "rect"
	gateShape        = "doublecircle"
)

// GraphvizDot is the table as a graphviz dot graph.
type GraphvizDot struct {
	Graph *gographviz.Escape
	Size  int
}

// NewGraphvizDot draws a table of n philosophers.
func NewGraphvizDot(n int) (*GraphvizDot, error) {
	dot := &GraphvizDot{
		Graph: gographviz.NewEscape(),
		Size:  n,
	}
	dot.Graph.SetDir(true)
	dot.Graph.SetName("G")

	if err := dot.Graph.AddNode("G", gateName, map[string]string{
		"label": fmt.Sprintf("Table (%d seats)", n-1),
		"shape": gateShape,
	}); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := dot.Graph.AddNode("G", PhilosopherName(i), map[string]string{
			"label": fmt.Sprintf("Philosopher %d", i),
			"shape": philosopherShape,
		}); err != nil {
			return nil, err
		}
		if err := dot.Graph.AddNode("G", ForkName(i), map[string]string{
			"label": fmt.Sprintf("Fork %d", i),
			"shape": forkShape,
		}); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		first, second := table.Ordered(i, n)
		edges := []struct{ dst, label, style string }{
			{gateName, SeatLabel, "dashed"},
			{ForkName(first), FirstForkLabel, "solid"},
			{ForkName(second), SecondForkLabel, "solid"},
		}
		for _, e := range edges {
			if err := dot.Graph.AddEdge(PhilosopherName(i), e.dst, true, map[string]string{
				"label": e.label,
				"style": e.style,
			}); err != nil {
				return nil, err
			}
		}
	}
	return dot, nil
}

// WriteTo implements io.WriterTo interface.
func (dot *GraphvizDot) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(dot.Graph.String()))
	return int64(n), err
}
