/*
Package automatos is a finite-automaton simulation toolkit.

It represents deterministic finite automata (DFA) and non-deterministic
finite automata with empty-input transitions (NFA-ε), and decides membership
of an input sequence in the language an automaton recognizes. Package
structure is as follows:

■ nfa: Package nfa implements NFA-ε automata, together with epsilon-closure
computation and a subset simulation over sets of active states.

■ dfa: Package dfa implements DFA automata, including a compiled table-driven
form backed by a sparse matrix.

■ pda: Package pda holds the transition-table structure for pushdown
automata. Execution of PDAs is not implemented.

■ input: Package input turns text into the symbol sequences automata consume.

■ sparse: Package sparse implements a simple sparse integer matrix.

The base package contains data types which are used throughout all the other
packages: states, symbols, and transition labels.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package automatos
