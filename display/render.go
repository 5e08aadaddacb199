// Package display renders the dining table to a terminal.
package display // import "github.com/nickng/dinephil/display"

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/dinephil/table"
	"golang.org/x/term"
)

// clearScreen moves the cursor home and erases the screen.
const clearScreen = "\033[H\033[2J"

const rule = "------------------------------------------------------"

var stateColours = map[table.State]*color.Color{
	table.Waiting:  color.New(color.Faint),
	table.Thinking: color.New(color.FgBlue),
	table.Hungry:   color.New(color.FgYellow),
	table.Eating:   color.New(color.FgGreen, color.Bold),
}

// Renderer writes frames of the table to an output.
type Renderer struct {
	w     io.Writer
	Clear bool // Clear the screen before each frame.
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, clear bool) *Renderer {
	return &Renderer{w: w, Clear: clear}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ForkStatus describes the forks held by philosopher id at a table of n.
// Only an Eating philosopher holds forks, and they are always its own two.
func ForkStatus(id, n int, s table.State) string {
	if s != table.Eating {
		return "No forks"
	}
	left, right := table.Adjacent(id, n)
	return fmt.Sprintf("Has forks %d and %d", left, right)
}

// Render writes one frame: the elapsed time header and a row per philosopher.
func (r *Renderer) Render(elapsed, total time.Duration, states []table.State) error {
	var buf bytes.Buffer
	if r.Clear {
		buf.WriteString(clearScreen)
	}
	fmt.Fprintf(&buf, "Dining Philosophers Simulation - Running for %ds (Total: %ds)\n",
		int(elapsed/time.Second), int(total/time.Second))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "Philosopher ID | State        | Fork Status")
	fmt.Fprintln(&buf, rule)
	for i, s := range states {
		fmt.Fprintf(&buf, "%14d | %s | %s\n", i, colourState(s), ForkStatus(i, len(states), s))
	}
	_, err := r.w.Write(buf.Bytes())
	return err
}

// Summary writes the meal count of every philosopher and the completion
// message.
func (r *Renderer) Summary(meals []int64, took time.Duration) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf)
	var total int64
	for i, m := range meals {
		fmt.Fprintf(&buf, "Philosopher %d ate %d times\n", i, m)
		total += m
	}
	fmt.Fprintf(&buf, "Total meals: %d in %s\n", total, took.Round(time.Millisecond))
	fmt.Fprintln(&buf, "\nSimulation completed.")
	_, err := r.w.Write(buf.Bytes())
	return err
}

func colourState(s table.State) string {
	name := fmt.Sprintf("%12s", s)
	if c, ok := stateColours[s]; ok {
		return c.Sprint(name)
	}
	return name
}
