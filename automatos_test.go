package automatos

import "testing"

func TestLabels(t *testing.T) {
	if !Epsilon.IsEpsilon() {
		t.Errorf("expected Epsilon to be an ε-label")
	}
	if Epsilon.String() != "ε" {
		t.Errorf("expected Epsilon to print as ε, is %q", Epsilon.String())
	}
	l := On("a")
	if l.IsEpsilon() {
		t.Errorf("expected On(a) to not be an ε-label")
	}
	if l.Symbol() != "a" || l.String() != "a" {
		t.Errorf("expected On(a) to carry symbol 'a'")
	}
	if l == Epsilon {
		t.Errorf("expected symbol labels to differ from Epsilon")
	}
	if On("") == Epsilon { // the empty symbol is not ε
		t.Errorf("expected the empty-symbol label to differ from Epsilon")
	}
}

func TestSymbolsOf(t *testing.T) {
	symbols := SymbolsOf("0ä1")
	if len(symbols) != 3 {
		t.Fatalf("expected 3 symbols, have %d", len(symbols))
	}
	if symbols[0] != "0" || symbols[1] != "ä" || symbols[2] != "1" {
		t.Errorf("expected symbols [0 ä 1], have %v", symbols)
	}
	if len(SymbolsOf("")) != 0 {
		t.Errorf("expected empty text to yield no symbols")
	}
}
