package automatos

// --- States and symbols ----------------------------------------------------

// State identifies one configuration of an automaton. States have no
// intrinsic behavior; an automaton registers a state the first time it
// appears in a start-, accept- or transition-declaration.
type State string

// Symbol is one input symbol, drawn from a finite alphabet. Symbols are
// strings, so alphabets are not restricted to single characters (see package
// input for producing multi-rune symbols from text).
type Symbol string

// --- Transition labels -----------------------------------------------------

// Label is what a non-deterministic transition is keyed by: either an input
// symbol or the empty-input label ε. Modelling ε as an explicit variant
// keeps it from colliding with any legitimate member of the alphabet.
//
// The zero value of Label is the label for the empty symbol, which no
// automaton accepts; construct labels with On or use Epsilon.
type Label struct {
	sym Symbol
	eps bool
}

// Epsilon is the distinguished empty-input label. It is not a member of any
// alphabet.
var Epsilon = Label{eps: true}

// On returns the label for an input symbol.
func On(sym Symbol) Label {
	return Label{sym: sym}
}

// IsEpsilon is true for the empty-input label.
func (l Label) IsEpsilon() bool {
	return l.eps
}

// Symbol returns the input symbol of a label. For Epsilon it returns the
// empty symbol.
func (l Label) Symbol() Symbol {
	return l.sym
}

func (l Label) String() string {
	if l.eps {
		return "ε"
	}
	return string(l.sym)
}

// --- Input sequences -------------------------------------------------------

// SymbolsOf splits text into a sequence of symbols, one symbol per rune.
// This is the usual input shape for automata over character alphabets.
func SymbolsOf(text string) []Symbol {
	symbols := make([]Symbol, 0, len(text))
	for _, r := range text {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}
