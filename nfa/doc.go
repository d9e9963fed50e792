/*
Package nfa implements non-deterministic finite automata with empty-input
(epsilon) transitions.

An automaton is built incrementally and then used read-only: clients declare
a start state, accepting states and transitions, and afterwards test input
sequences for membership in the automaton's language. Transitions are
set-valued, i.e. one (state, label) key may lead to several destination
states; this is where the non-determinism lives.

Example:

	a := nfa.New()                                    // recognizes 'aa' or 'bb'
	a.SetStart("start")
	a.AddAccept("final")
	a.AddTransition("start", automatos.Epsilon, "a1") // branch without input
	a.AddTransition("start", automatos.Epsilon, "b1")
	a.AddTransition("a1", automatos.On("a"), "a2")
	a.AddTransition("a2", automatos.On("a"), "final")
	a.AddTransition("b1", automatos.On("b"), "b2")
	a.AddTransition("b2", automatos.On("b"), "final")

	a.AcceptsString("aa")   // true
	a.AcceptsString("ab")   // false

Simulation tracks the set of all states the automaton may occupy at once
(subset simulation). After every consumed symbol the active set is expanded
to its epsilon-closure, the fixed-point set of states reachable over
ε-transitions alone. Construction mutators must not be interleaved with
calls to Accepts; a fully built automaton may be evaluated concurrently
without additional synchronization, since evaluation never mutates it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'automatos.fa'.
func tracer() tracing.Trace {
	return tracing.Select("automatos.fa")
}
