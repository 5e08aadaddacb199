// Package table implements the dining table: the seat gate, the forks, the
// shared state registry and the philosophers contending on them.
package table // import "github.com/nickng/dinephil/table"

import "fmt"

// State is the published state of a philosopher.
type State int32

// Philosopher states. Waiting is terminal.
const (
	Waiting State = iota
	Thinking
	Hungry
	Eating
)

var stateNames = [...]string{"Waiting", "Thinking", "Hungry", "Eating"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int32(s))
	}
	return stateNames[s]
}
