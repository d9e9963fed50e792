/*
Package input turns text into the symbol sequences automata consume.

Automata decide membership of ordered symbol sequences; for character
alphabets, Runes splits text into one symbol per rune. For alphabets whose
symbols span more than one character, an adapter for lexmachine is provided:
clients describe the lexemes of their alphabet with regular expressions, and
the adapter scans input text into symbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package input

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'automatos.input'.
func tracer() tracing.Trace {
	return tracing.Select("automatos.input")
}
