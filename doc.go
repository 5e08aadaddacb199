// Command dinephil is a simulation of the dining philosophers problem.
//
// Philosophers sit at a round table with one fork between each pair of
// neighbours. A seat gate admits at most one fewer philosopher than there are
// seats, and every philosopher picks up the lower-numbered fork first, so the
// dinner can neither deadlock nor starve for want of a seat.
//
// Besides running the dinner, dinephil exports the protocol as a Graphviz
// graph, as communicating finite state machines, or as MiGo types.
package main
