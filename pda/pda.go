package pda

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/vitinnnnx/automatos"
)

// StackSymbol identifies one symbol of the stack alphabet. Stack symbols are
// single characters of a Word.
type StackSymbol string

// Word is a sequence of stack symbols, one symbol per rune, topmost symbol
// first. The empty word denotes a plain pop.
type Word string

// Symbols splits a word into its stack symbols.
func (w Word) Symbols() []StackSymbol {
	symbols := make([]StackSymbol, 0, len(w))
	for _, r := range w {
		symbols = append(symbols, StackSymbol(r))
	}
	return symbols
}

// transition is a key into the transition table: a source state, an input
// symbol or ε, and the stack symbol that has to be on top of the stack.
type transition struct {
	from  automatos.State
	label automatos.Label
	top   StackSymbol
}

// Move is one non-deterministic outcome of a transition: the successor state
// together with the word to push in place of the consumed stack top.
type Move struct {
	Next automatos.State
	Push Word
}

// Automaton is the structure of a non-deterministic pushdown automaton.
// It shares the registration conventions of the finite automata: states and
// symbols exist once they are mentioned, transition values are sets, and a
// key is present in the table iff it has at least one move.
type Automaton struct {
	states        *hashset.Set
	inputAlphabet *hashset.Set // input symbols, ε excluded
	stackAlphabet *hashset.Set
	transitions   map[transition]*hashset.Set // key -> set of Move
	start         automatos.State
	hasStart      bool
	startSymbol   StackSymbol // initial stack contents
	finals        *hashset.Set
}

// New creates an empty automaton.
func New() *Automaton {
	return &Automaton{
		states:        hashset.New(),
		inputAlphabet: hashset.New(),
		stackAlphabet: hashset.New(),
		transitions:   make(map[transition]*hashset.Set),
		finals:        hashset.New(),
	}
}

// SetStart records the start state and the initial stack symbol, registering
// both as side effects.
func (a *Automaton) SetStart(s automatos.State, bottom StackSymbol) {
	a.start = s
	a.hasStart = true
	a.startSymbol = bottom
	a.states.Add(s)
	a.stackAlphabet.Add(bottom)
}

// AddFinal adds a state to the set of final states, registering it as a side
// effect.
func (a *Automaton) AddFinal(s automatos.State) {
	a.finals.Add(s)
	a.states.Add(s)
}

// AddTransition inserts one move into the table: in state from, consuming
// label (an input symbol or ε) with top on the stack, the automaton may
// switch to state to, replacing top by the pushed word. An empty word pops.
// Adding the same move twice has no additional effect.
func (a *Automaton) AddTransition(from automatos.State, label automatos.Label, top StackSymbol,
	to automatos.State, push Word) {
	//
	a.states.Add(from)
	a.states.Add(to)
	if !label.IsEpsilon() {
		a.inputAlphabet.Add(label.Symbol())
	}
	a.stackAlphabet.Add(top)
	for _, sym := range push.Symbols() {
		a.stackAlphabet.Add(sym)
	}
	key := transition{from: from, label: label, top: top}
	moves, ok := a.transitions[key]
	if !ok {
		moves = hashset.New()
		a.transitions[key] = moves
	}
	moves.Add(Move{Next: to, Push: push})
	tracer().Debugf("(%s, %s, %s) may move to (%s, push %q)", from, label, top, to, push)
}

// Moves returns all moves stored for a (state, label, stack-top) key, or nil
// if the key is absent.
func (a *Automaton) Moves(from automatos.State, label automatos.Label, top StackSymbol) []Move {
	set, ok := a.transitions[transition{from: from, label: label, top: top}]
	if !ok {
		return nil
	}
	moves := make([]Move, 0, set.Size())
	for _, x := range set.Values() {
		moves = append(moves, x.(Move))
	}
	return moves
}

// Start returns the start state and the initial stack symbol. The third
// return value is false as long as no start configuration has been set.
func (a *Automaton) Start() (automatos.State, StackSymbol, bool) {
	return a.start, a.startSymbol, a.hasStart
}

// IsFinal is true if s has been registered as a final state.
func (a *Automaton) IsFinal(s automatos.State) bool {
	return a.finals.Contains(s)
}

// StateCount returns the number of registered states.
func (a *Automaton) StateCount() int {
	return a.states.Size()
}
