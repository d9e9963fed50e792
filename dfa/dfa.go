package dfa

import (
	"fmt"
	"io"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/vitinnnnx/automatos"
)

// transition is a key into the transition table.
type transition struct {
	from automatos.State
	sym  automatos.Symbol
}

// Automaton is a DFA. Create an empty one with dfa.New() and populate it
// with SetStart, AddAccept and AddTransition. Each transition key maps to
// exactly one destination state; absent keys form an implicit error state.
type Automaton struct {
	states      *hashset.Set
	alphabet    *hashset.Set
	accepting   *hashset.Set
	transitions map[transition]automatos.State
	start       automatos.State
	hasStart    bool
}

// New creates an empty automaton.
func New() *Automaton {
	return &Automaton{
		states:      hashset.New(),
		alphabet:    hashset.New(),
		accepting:   hashset.New(),
		transitions: make(map[transition]automatos.State),
	}
}

// SetStart records the start state, registering it as a side effect.
func (a *Automaton) SetStart(s automatos.State) {
	a.start = s
	a.hasStart = true
	a.states.Add(s)
}

// AddAccept adds a state to the accepting set, registering it as a side
// effect. Re-adding an accepting state is a no-op.
func (a *Automaton) AddAccept(s automatos.State) {
	a.accepting.Add(s)
	a.states.Add(s)
}

// AddTransition inserts one transition into the table, registering both
// endpoint states and the symbol. A DFA has no ε-concept, so the empty
// symbol is rejected with an error. Inserting a second transition for an
// existing (state, symbol) key silently overwrites the first one: the last
// write wins.
func (a *Automaton) AddTransition(from automatos.State, sym automatos.Symbol, to automatos.State) error {
	if sym == "" {
		tracer().Errorf("DFA transition (%s → %s) with empty symbol", from, to)
		return fmt.Errorf("DFA transitions cannot carry an empty symbol")
	}
	a.states.Add(from)
	a.states.Add(to)
	a.alphabet.Add(sym)
	key := transition{from: from, sym: sym}
	if prev, ok := a.transitions[key]; ok && prev != to {
		tracer().Debugf("overwriting transition (%s, %s): %s → %s", from, sym, prev, to)
	}
	a.transitions[key] = to
	return nil
}

// Accepts decides whether the input sequence is a member of the automaton's
// language. The walk is a strict trace: exactly one state is current at any
// time. A symbol outside the alphabet rejects immediately, as does a missing
// transition entry (the implicit error state). An automaton without a start
// state rejects every input.
func (a *Automaton) Accepts(input []automatos.Symbol) bool {
	if !a.hasStart {
		tracer().Errorf("automaton has no start state, rejecting input")
		return false
	}
	current := a.start
	for _, sym := range input {
		if !a.alphabet.Contains(sym) {
			tracer().Debugf("symbol %q not in alphabet, rejecting", sym)
			return false
		}
		next, ok := a.transitions[transition{from: current, sym: sym}]
		if !ok {
			tracer().Debugf("no transition (%s, %q), rejecting", current, sym)
			return false
		}
		tracer().Debugf("consumed %q: %s → %s", sym, current, next)
		current = next
	}
	return a.accepting.Contains(current)
}

// AcceptsString is a convenience wrapper around Accepts for character
// alphabets; every rune of the input is one symbol.
func (a *Automaton) AcceptsString(input string) bool {
	return a.Accepts(automatos.SymbolsOf(input))
}

// === Accessors =============================================================

// Start returns the start state. The second return value is false as long as
// no start state has been set.
func (a *Automaton) Start() (automatos.State, bool) {
	return a.start, a.hasStart
}

// States returns all registered states, sorted by name.
func (a *Automaton) States() []automatos.State {
	return sortedStates(a.states)
}

// Accepting returns all accepting states, sorted by name.
func (a *Automaton) Accepting() []automatos.State {
	return sortedStates(a.accepting)
}

// Alphabet returns all registered input symbols, sorted.
func (a *Automaton) Alphabet() []automatos.Symbol {
	t := treeset.NewWith(symbolComparator)
	t.Add(a.alphabet.Values()...)
	symbols := make([]automatos.Symbol, 0, t.Size())
	for _, x := range t.Values() {
		symbols = append(symbols, x.(automatos.Symbol))
	}
	return symbols
}

// IsAccepting is true if s has been registered as an accepting state.
func (a *Automaton) IsAccepting(s automatos.State) bool {
	return a.accepting.Contains(s)
}

// We need this for sorted state output. It sorts states by name.
func stateComparator(s1, s2 interface{}) int {
	return utils.StringComparator(
		string(s1.(automatos.State)),
		string(s2.(automatos.State)))
}

func symbolComparator(s1, s2 interface{}) int {
	return utils.StringComparator(
		string(s1.(automatos.Symbol)),
		string(s2.(automatos.Symbol)))
}

func sortedStates(set *hashset.Set) []automatos.State {
	t := treeset.NewWith(stateComparator)
	t.Add(set.Values()...)
	states := make([]automatos.State, 0, t.Size())
	for _, x := range t.Values() {
		states = append(states, x.(automatos.State))
	}
	return states
}

func (a *Automaton) sortedKeys() []transition {
	keys := make([]transition, 0, len(a.transitions))
	for key := range a.transitions {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].sym < keys[j].sym
	})
	return keys
}

// === Export ================================================================

// GraphViz exports the automaton to the Graphviz Dot format. Accepting
// states are drawn with a double circle, the start state is marked by an
// incoming arrow.
func (a *Automaton) GraphViz(w io.Writer) {
	io.WriteString(w, `digraph {
graph [rankdir=LR, fontname=Helvetica, fontsize=10];
node [shape=circle, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range a.States() {
		io.WriteString(w, fmt.Sprintf("%q [shape=%s]\n", string(s), nodeshape(a.accepting.Contains(s))))
	}
	if a.hasStart {
		io.WriteString(w, "\"\" [shape=none]\n")
		io.WriteString(w, fmt.Sprintf("\"\" -> %q\n", string(a.start)))
	}
	for _, key := range a.sortedKeys() {
		io.WriteString(w, fmt.Sprintf("%q -> %q [label=%q]\n",
			string(key.from), string(a.transitions[key]), string(key.sym)))
	}
	io.WriteString(w, "}\n")
}

func nodeshape(accepting bool) string {
	if accepting {
		return "doublecircle"
	}
	return "circle"
}

// definition is a canonical snapshot of an automaton, used for hashing.
type definition struct {
	States    []automatos.State
	Alphabet  []automatos.Symbol
	Accepting []automatos.State
	Start     automatos.State
	Edges     []edge
}

type edge struct {
	From automatos.State
	Sym  automatos.Symbol
	To   automatos.State
}

// Digest returns a fingerprint of the automaton's definition. Two automata
// built from the same states, transitions and accepting set produce the same
// digest, regardless of construction order.
func (a *Automaton) Digest() string {
	d := definition{
		States:    a.States(),
		Alphabet:  a.Alphabet(),
		Accepting: a.Accepting(),
		Start:     a.start,
	}
	for _, key := range a.sortedKeys() {
		d.Edges = append(d.Edges, edge{From: key.from, Sym: key.sym, To: a.transitions[key]})
	}
	return fmt.Sprintf("%x", structhash.Md5(d, 1))
}
