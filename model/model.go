// Package model describes the dinner protocol as static models for external
// deadlock checkers: a Graphviz drawing of the table, a system of
// communicating finite state machines and a MiGo program.
//
// Every model follows the same protocol as the table package: take a seat at
// the gate, pick up the lower-numbered fork then the higher-numbered one, put
// them down in reverse order and leave the seat.
package model // import "github.com/nickng/dinephil/model"

import "fmt"

// Node names shared by the models.
const gateName = "gate"

// PhilosopherName returns the model name of philosopher id.
func PhilosopherName(id int) string { return fmt.Sprintf("P%d", id) }

// ForkName returns the model name of fork i.
func ForkName(i int) string { return fmt.Sprintf("fork%d", i) }
