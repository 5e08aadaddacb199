package display_test

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/dinephil/display"
	"github.com/nickng/dinephil/table"
)

func ExampleRenderer_Render() {
	color.NoColor = true
	r := display.NewRenderer(os.Stdout, false)
	states := []table.State{table.Eating, table.Thinking, table.Hungry}
	r.Render(12*time.Second, 60*time.Second, states)
	// Output:
	// Dining Philosophers Simulation - Running for 12s (Total: 60s)
	// ------------------------------------------------------
	// Philosopher ID | State        | Fork Status
	// ------------------------------------------------------
	//              0 |       Eating | Has forks 0 and 1
	//              1 |     Thinking | No forks
	//              2 |       Hungry | No forks
}
