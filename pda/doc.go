/*
Package pda holds the data structure of non-deterministic pushdown automata.

Only the representation is implemented: states, input- and stack-alphabet,
the start configuration and the transition table. There is no execution or
acceptance operation. A future execution engine would search the space of
configurations (state, remaining input, stack contents), e.g. breadth-first,
and can rely on the stored table format staying as it is: transition keys
are (state, input-label, stack-top), values are sets of moves, each move a
successor state plus a word to push.

Example, the structure for L = {0ⁿ1ⁿ | n ≥ 1}:

	a := pda.New()
	a.SetStart("q0", "Z")
	a.AddFinal("qf")
	a.AddTransition("q0", automatos.On("0"), "Z", "q0", "0Z")
	a.AddTransition("q0", automatos.On("0"), "0", "q0", "00")
	a.AddTransition("q0", automatos.On("1"), "0", "q1", "")  // pop
	a.AddTransition("q1", automatos.On("1"), "0", "q1", "")
	a.AddTransition("q1", automatos.Epsilon, "Z", "qf", "Z")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package pda

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'automatos.fa'.
func tracer() tracing.Trace {
	return tracing.Select("automatos.fa")
}
