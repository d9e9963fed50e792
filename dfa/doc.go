/*
Package dfa implements deterministic finite automata.

A DFA is the strict special case of an NFA: exactly one state is active at
any time, transitions carry plain input symbols (there is no ε-concept), and
each (state, symbol) key has at most one destination. Clients build an
automaton with SetStart, AddAccept and AddTransition, then test input
sequences with Accepts.

Example:

	a := dfa.New()                       // recognizes inputs ending in '1'
	a.SetStart("q0")
	a.AddAccept("q1")
	a.AddTransition("q0", "0", "q0")
	a.AddTransition("q0", "1", "q1")
	a.AddTransition("q1", "0", "q0")
	a.AddTransition("q1", "1", "q1")

	a.AcceptsString("101")   // true
	a.AcceptsString("10")    // false

The transition function may be partial: a missing entry is an implicit,
rejecting error state. For hot paths, Compile freezes an automaton into a
table-driven form backed by a sparse integer matrix.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'automatos.fa'.
func tracer() tracing.Trace {
	return tracing.Select("automatos.fa")
}
