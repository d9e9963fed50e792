package input

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/vitinnnnx/automatos"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a symbolizer for
// alphabets whose symbols span more than one character.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	Error func(error)
}

var _ Symbolizer = (*LMAdapter)(nil)

// NewLMAdapter creates a new lexmachine adapter. The init function receives
// the underlying lexer and registers the patterns of the alphabet, usually
// with the pre-defined actions MakeSymbol, Lexeme and Skip.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{Error: logError}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// SetErrorHandler sets an error handler for the symbolizer.
func (lm *LMAdapter) SetErrorHandler(h func(error)) {
	if h == nil {
		lm.Error = logError
		return
	}
	lm.Error = h
}

// Default error reporting function for lexmachine-based symbolizers
func logError(e error) {
	tracer().Errorf("symbolizer error: " + e.Error())
}

// Symbols is part of the Symbolizer interface. It scans the complete input
// text and returns the matched symbols in order. Unscannable input is
// reported to the error handler and skipped.
func (lm *LMAdapter) Symbols(text string) ([]automatos.Symbol, error) {
	s, err := lm.Lexer.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var symbols []automatos.Symbol
	tok, err, eof := s.Next()
	for !eof {
		for err != nil {
			lm.Error(err)
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				return symbols, err
			}
			s.TC = ui.FailTC
			tok, err, eof = s.Next()
			if eof {
				return symbols, nil
			}
		}
		if tok != nil {
			tracer().Debugf("symbol %v", tok)
			symbols = append(symbols, tok.(automatos.Symbol))
		}
		tok, err, eof = s.Next()
	}
	return symbols, nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeSymbol is a pre-defined action which maps every match of a pattern to
// a fixed symbol.
func MakeSymbol(sym automatos.Symbol) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return sym, nil
	}
}

// Lexeme is a pre-defined action which uses the matched lexeme itself as the
// symbol.
func Lexeme(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return automatos.Symbol(m.Bytes), nil
}
