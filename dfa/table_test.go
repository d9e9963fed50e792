package dfa

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCompileWithoutStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := New()
	a.AddTransition("q0", "1", "q1")
	if _, err := a.Compile(); err == nil {
		t.Errorf("expected compiling without start state to fail, didn't")
	}
}

func TestTableAgreesWithAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := makeTrailingOneAutomaton(t)
	table, err := a.Compile()
	if err != nil {
		t.Fatal(err)
	}
	inputs := append(trailingOneInputs, "21", "1x1", "0000001")
	for _, input := range inputs {
		want := a.AcceptsString(input)
		if got := table.AcceptsString(input); got != want {
			t.Errorf("table and automaton disagree on %q: %v vs %v", input, got, want)
		}
	}
}

func TestTablePartialFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := New()
	a.SetStart("q0")
	a.AddAccept("q1")
	a.AddTransition("q0", "a", "q1")
	a.AddTransition("q1", "b", "q1")
	table, err := a.Compile()
	if err != nil {
		t.Fatal(err)
	}
	if !table.AcceptsString("abb") {
		t.Errorf("expected compiled table to accept 'abb', doesn't")
	}
	if table.AcceptsString("b") { // missing entry is the implicit error state
		t.Errorf("expected compiled table to reject 'b', doesn't")
	}
}
