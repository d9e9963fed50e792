package nfa

import (
	"fmt"
	"io"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"

	"github.com/vitinnnnx/automatos"
)

// === Data model ============================================================

// transition is a key into the transition table: a source state together
// with an input symbol or ε.
type transition struct {
	from  automatos.State
	label automatos.Label
}

// Automaton is an NFA-ε. Create an empty one with nfa.New() and populate it
// with SetStart, AddAccept and AddTransition. The transition table maps each
// key to a *set* of destination states; a key is present iff it has at least
// one destination.
type Automaton struct {
	states      *hashset.Set                // all registered states
	alphabet    *hashset.Set                // all registered input symbols, ε excluded
	accepting   *hashset.Set                // subset of states
	transitions map[transition]*hashset.Set // key -> set of destination states
	start       automatos.State
	hasStart    bool
}

// New creates an empty automaton.
func New() *Automaton {
	return &Automaton{
		states:      hashset.New(),
		alphabet:    hashset.New(),
		accepting:   hashset.New(),
		transitions: make(map[transition]*hashset.Set),
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

// AddTransition inserts one transition into the table. Both endpoint states
// are registered, and the symbol is registered in the alphabet unless the
// label is ε. Adding the same transition twice has no additional effect.
func (a *Automaton) AddTransition(from automatos.State, label automatos.Label, to automatos.State) {
	a.states.Add(from)
	a.states.Add(to)
	if !label.IsEpsilon() {
		a.alphabet.Add(label.Symbol())
	}
	key := transition{from: from, label: label}
	dests, ok := a.transitions[key]
	if !ok {
		dests = hashset.New()
		a.transitions[key] = dests
	}
	dests.Add(to)
}

// === Epsilon closure =======================================================

// Closure computes the epsilon-closure of a set of states: the smallest
// superset which is closed under ε-transitions. The result is a fixed point;
// every state is visited at most once, so closures terminate even when the
// ε-relation contains cycles.
func (a *Automaton) Closure(states ...automatos.State) *hashset.Set {
	seed := hashset.New()
	for _, s := range states {
		seed.Add(s)
	}
	return a.closureSet(seed)
}

// closureSet is the worklist implementation behind Closure. Only set
// membership of the result is observable; the visitation order of the
// worklist never influences it.
func (a *Automaton) closureSet(states *hashset.Set) *hashset.Set {
	closure := hashset.New(states.Values()...)
	pending := arraystack.New()
	for _, s := range states.Values() {
		pending.Push(s)
	}
	for !pending.Empty() {
		x, _ := pending.Pop()
		s := x.(automatos.State)
		dests, ok := a.transitions[transition{from: s, label: automatos.Epsilon}]
		if !ok {
			continue
		}
		for _, d := range dests.Values() {
			if !closure.Contains(d) {
				closure.Add(d)
				pending.Push(d)
			}
		}
	}
	return closure
}

// === Subset simulation =====================================================

// Accepts decides whether the input sequence is a member of the automaton's
// language. It walks the input with a set of active states, expanding the
// set to its epsilon-closure after every consumed symbol, and accepts iff
// afterwards at least one active state is accepting.
//
// An automaton without a start state rejects every input. Symbols without
// any matching transition are not an error: the affected paths simply die.
func (a *Automaton) Accepts(input []automatos.Symbol) bool {
	if !a.hasStart {
		tracer().Errorf("automaton has no start state, rejecting input")
		return false
	}
	active := a.Closure(a.start)
	tracer().Debugf("start closure holds %d state(s)", active.Size())
	for _, sym := range input {
		moved := hashset.New()
		key := transition{label: automatos.On(sym)}
		for _, x := range active.Values() {
			key.from = x.(automatos.State)
			if dests, ok := a.transitions[key]; ok {
				moved.Add(dests.Values()...)
			}
		}
		active = a.closureSet(moved)
		tracer().Debugf("consumed %q, %d active state(s)", sym, active.Size())
		if active.Empty() {
			break // an empty active set cannot regain members
		}
	}
	return a.anyAccepting(active)
}

// AcceptsString is a convenience wrapper around Accepts for character
// alphabets; every rune of the input is one symbol.
func (a *Automaton) AcceptsString(input string) bool {
	return a.Accepts(automatos.SymbolsOf(input))
}

func (a *Automaton) anyAccepting(states *hashset.Set) bool {
	for _, x := range states.Values() {
		if a.accepting.Contains(x) {
			return true
		}
	}
	return false
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

// Alphabet returns all registered input symbols, sorted. ε is never part of
// the alphabet.
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

// sortedKeys returns the transition keys in a stable order, for exporting
// and hashing.
func (a *Automaton) sortedKeys() []transition {
	keys := make([]transition, 0, len(a.transitions))
	for key := range a.transitions {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].label.String() < keys[j].label.String()
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
		for _, to := range sortedStates(a.transitions[key]) {
			io.WriteString(w, fmt.Sprintf("%q -> %q [label=%q]\n",
				string(key.from), string(to), key.label.String()))
		}
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
	From  automatos.State
	Label string
	To    automatos.State
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
		for _, to := range sortedStates(a.transitions[key]) {
			d.Edges = append(d.Edges, edge{From: key.from, Label: key.label.String(), To: to})
		}
	}
	return fmt.Sprintf("%x", structhash.Md5(d, 1))
}
