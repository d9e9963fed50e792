package input

import (
	"github.com/vitinnnnx/automatos"
)

// Symbolizer is the interface automaton clients use to obtain symbol
// sequences from text. Factoring it out into a type helps model this
// design-decision: most clients will feed character alphabets, but nothing
// requires symbols to be single characters.
type Symbolizer interface {
	Symbols(text string) ([]automatos.Symbol, error)
}

// Runes splits text into one symbol per rune. It never fails.
func Runes(text string) []automatos.Symbol {
	return automatos.SymbolsOf(text)
}

// RuneSymbolizer adapts Runes to the Symbolizer interface.
type RuneSymbolizer struct{}

var _ Symbolizer = RuneSymbolizer{}

// Symbols is part of the Symbolizer interface.
func (RuneSymbolizer) Symbols(text string) ([]automatos.Symbol, error) {
	return Runes(text), nil
}
