package grammar

import "testing"

func floatPtr(c float64) *float64 {
	return &c
}

func newTestSymbol(t *testing.T, b *GrammarBuilder, parts ...string) *Symbol {
	t.Helper()
	sym, err := b.NewSymbol(parts...)
	if err != nil {
		t.Fatalf("cannot register %v: %v", parts, err)
	}
	return sym
}

func addTestTerminal(t *testing.T, b *GrammarBuilder, sym *Symbol, r TerminalRule) {
	t.Helper()
	if err := b.AddTerminalRule(sym, r); err != nil {
		t.Fatalf("cannot add a terminal rule to %v: %v", sym.Name(), err)
	}
}

func addTestNonterminal(t *testing.T, b *GrammarBuilder, sym *Symbol, r NonterminalRule) {
	t.Helper()
	if err := b.AddNonterminalRule(sym, r); err != nil {
		t.Fatalf("cannot add a nonterminal rule to %v: %v", sym.Name(), err)
	}
}

func compileTestGrammar(t *testing.T, b *GrammarBuilder) *Grammar {
	t.Helper()
	g, err := b.Compile()
	if err != nil {
		t.Fatalf("cannot compile: %v", err)
	}
	return g
}

// unaryTerminalGrammar builds S -> A, A -> "x" and returns the compiled
// grammar.
func unaryTerminalGrammar(t *testing.T) *Grammar {
	t.Helper()
	b := NewGrammarBuilder()
	s := newTestSymbol(t, b, "s")
	a := newTestSymbol(t, b, "a")
	addTestNonterminal(t, b, s, NonterminalRule{RHS: []string{a.Name()}})
	addTestTerminal(t, b, a, TerminalRule{RHS: "x"})
	b.SetStart(s)
	return compileTestGrammar(t, b)
}
