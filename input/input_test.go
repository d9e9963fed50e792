package input

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"

	"github.com/vitinnnnx/automatos"
	"github.com/vitinnnnx/automatos/nfa"
)

func TestRunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.input")
	defer teardown()
	//
	symbols := Runes("aä1")
	if len(symbols) != 3 {
		t.Fatalf("expected 3 symbols, have %d", len(symbols))
	}
	if symbols[1] != "ä" {
		t.Errorf("expected second symbol to be 'ä', is %q", symbols[1])
	}
}

func makeColorAdapter(t *testing.T) *LMAdapter {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`red`), Lexeme)
		lexer.Add([]byte(`green`), Lexeme)
		lexer.Add([]byte(`( |\t|\n)+`), Skip)
	}
	adapter, err := NewLMAdapter(init)
	if err != nil {
		t.Fatal(err)
	}
	return adapter
}

var colorInputs = []string{
	"red green",
	"red red red",
	"  green  ",
	"",
}

var colorCounts = []int{2, 3, 1, 0}

func TestLMAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.input")
	defer teardown()
	//
	adapter := makeColorAdapter(t)
	for i, text := range colorInputs {
		symbols, err := adapter.Symbols(text)
		if err != nil {
			t.Error(err)
		}
		if len(symbols) != colorCounts[i] {
			t.Errorf("expected %d symbols for %q, have %d", colorCounts[i], text, len(symbols))
		}
	}
}

func TestLMAdapterMakeSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.input")
	defer teardown()
	//
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeSymbol("NUM"))
		lexer.Add([]byte(`( )+`), Skip)
	}
	adapter, err := NewLMAdapter(init)
	if err != nil {
		t.Fatal(err)
	}
	symbols, err := adapter.Symbols("12 345")
	if err != nil {
		t.Error(err)
	}
	if len(symbols) != 2 || symbols[0] != "NUM" || symbols[1] != "NUM" {
		t.Errorf("expected [NUM NUM], have %v", symbols)
	}
}

// Multi-rune symbols feeding an NFA: sequences over {red, green} which end
// in 'green'.
func TestSymbolizedAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "automatos.input")
	defer teardown()
	//
	a := nfa.New()
	a.SetStart("s0")
	a.AddAccept("s1")
	a.AddTransition("s0", automatos.On("red"), "s0")
	a.AddTransition("s0", automatos.On("green"), "s1")
	a.AddTransition("s1", automatos.On("red"), "s0")
	a.AddTransition("s1", automatos.On("green"), "s1")
	//
	adapter := makeColorAdapter(t)
	texts := []string{"red green", "green red", "red red green green"}
	accepted := []bool{true, false, true}
	for i, text := range texts {
		symbols, err := adapter.Symbols(text)
		if err != nil {
			t.Error(err)
		}
		if got := a.Accepts(symbols); got != accepted[i] {
			t.Errorf("expected Accepts(%q) to be %v, is %v", text, accepted[i], got)
		}
	}
}
