package dfa

import (
	"fmt"

	"github.com/vitinnnnx/automatos"
	"github.com/vitinnnnx/automatos/sparse"
)

// Table is a compiled, table-driven form of a DFA. States and symbols are
// mapped to dense integer IDs, and the transition function lives in a sparse
// matrix indexed by (state-ID, symbol-ID). A Table is immutable and decides
// exactly the same language as the automaton it was compiled from.
type Table struct {
	matrix    *sparse.Matrix
	symbolIDs map[automatos.Symbol]int
	accepting []bool // indexed by state-ID
	start     int32
}

// Compile freezes the automaton into a Table. Compiling requires a start
// state; later mutations of the automaton do not carry over to the Table.
func (a *Automaton) Compile() (*Table, error) {
	if !a.hasStart {
		tracer().Errorf("cannot compile an automaton without start state")
		return nil, fmt.Errorf("cannot compile an automaton without start state")
	}
	states := a.States()
	symbols := a.Alphabet()
	tracer().Debugf("compiling DFA table of size %d x %d", len(states), len(symbols))
	t := &Table{
		matrix:    sparse.NewMatrix(len(states), len(symbols), sparse.DefaultNullValue),
		symbolIDs: make(map[automatos.Symbol]int, len(symbols)),
		accepting: make([]bool, len(states)),
	}
	stateIDs := make(map[automatos.State]int, len(states))
	for i, s := range states {
		stateIDs[s] = i
		t.accepting[i] = a.accepting.Contains(s)
	}
	for j, sym := range symbols {
		t.symbolIDs[sym] = j
	}
	t.start = int32(stateIDs[a.start])
	for key, to := range a.transitions {
		t.matrix.Set(stateIDs[key.from], t.symbolIDs[key.sym], int32(stateIDs[to]))
	}
	return t, nil
}

// Accepts decides membership of the input sequence, with the same semantics
// as Automaton.Accepts: symbols outside the alphabet and missing table
// entries reject immediately.
func (t *Table) Accepts(input []automatos.Symbol) bool {
	current := t.start
	for _, sym := range input {
		j, ok := t.symbolIDs[sym]
		if !ok {
			return false
		}
		next := t.matrix.Value(int(current), j)
		if next == t.matrix.NullValue() {
			return false
		}
		current = next
	}
	return t.accepting[current]
}

// AcceptsString is a convenience wrapper around Accepts for character
// alphabets; every rune of the input is one symbol.
func (t *Table) AcceptsString(input string) bool {
	return t.Accepts(automatos.SymbolsOf(input))
}
