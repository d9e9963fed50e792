package dfa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/vitinnnnx/automatos"
)

// Binary inputs ending in '1'.
func makeTrailingOneAutomaton(t *testing.T) *Automaton {
	a := New()
	a.SetStart("q0")
	a.AddAccept("q1")
	for _, tr := range [][3]string{
		{"q0", "0", "q0"},
		{"q0", "1", "q1"},
		{"q1", "0", "q0"},
		{"q1", "1", "q1"},
	} {
		if err := a.AddTransition(automatos.State(tr[0]), automatos.Symbol(tr[1]), automatos.State(tr[2])); err != nil {
			t.Error(err)
		}
	}
	return a
}

var trailingOneInputs = []string{"1", "0", "101", "", "1101", "10", "111"}
var trailingOneAccepted = []bool{true, false, true, false, true, false, true}

func TestTrailingOneLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := makeTrailingOneAutomaton(t)
	for i, input := range trailingOneInputs {
		if accepted := a.AcceptsString(input); accepted != trailingOneAccepted[i] {
			t.Errorf("expected Accepts(%q) to be %v, is %v", input, trailingOneAccepted[i], accepted)
		}
	}
}

func TestSymbolOutsideAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := makeTrailingOneAutomaton(t)
	if a.AcceptsString("21") {
		t.Errorf("expected symbol outside alphabet to reject, doesn't")
	}
}

func TestMissingTransition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := New() // partial transition function: no entry for (q0, b)
	a.SetStart("q0")
	a.AddAccept("q1")
	a.AddTransition("q0", "a", "q1")
	a.AddTransition("q1", "b", "q1")
	if !a.AcceptsString("ab") {
		t.Errorf("expected 'ab' to be accepted, isn't")
	}
	if a.AcceptsString("b") { // 'b' is in the alphabet, but (q0,b) is absent
		t.Errorf("expected missing transition to reject, doesn't")
	}
}

func TestOverwriteTransition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := New()
	a.SetStart("q0")
	a.AddAccept("q1")
	a.AddTransition("q0", "1", "q1")
	a.AddTransition("q0", "1", "q2") // last write wins; q2 is not accepting
	if a.AcceptsString("1") {
		t.Errorf("expected later transition to govern, earlier one still reachable")
	}
}

func TestEmptySymbolRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := New()
	if err := a.AddTransition("q0", "", "q1"); err == nil {
		t.Errorf("expected empty symbol to be rejected with an error, isn't")
	}
}

func TestNoStartState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := New()
	a.AddAccept("q1")
	a.AddTransition("q0", "1", "q1")
	if a.AcceptsString("1") {
		t.Errorf("expected automaton without start state to reject, doesn't")
	}
}

func TestEmptyInputOnAcceptingStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := makeTrailingOneAutomaton(t)
	if a.AcceptsString("") {
		t.Errorf("expected empty input to be rejected from non-accepting start")
	}
	a.AddAccept("q0")
	if !a.AcceptsString("") {
		t.Errorf("expected empty input to be accepted from accepting start")
	}
}

func TestDigest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := makeTrailingOneAutomaton(t)
	b := makeTrailingOneAutomaton(t)
	if a.Digest() != b.Digest() {
		t.Errorf("expected identical automata to share a digest")
	}
	b.AddTransition("q1", "0", "q1")
	if a.Digest() == b.Digest() {
		t.Errorf("expected differing transitions to change the digest")
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.fa")
	defer teardown()
	//
	a := makeTrailingOneAutomaton(t)
	var buf bytes.Buffer
	a.GraphViz(&buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("expected Dot output to start with 'digraph {', doesn't")
	}
	if !strings.Contains(dot, `"q0" -> "q1" [label="1"]`) {
		t.Errorf("expected edge in Dot output, output:\n%s", dot)
	}
}
