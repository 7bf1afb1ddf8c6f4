package grammar

import "testing"

// transpositionGrammar builds X -> A B with a transposition cost.
func transpositionGrammar(t *testing.T) *Grammar {
	t.Helper()
	b := NewGrammarBuilder()
	x := newTestSymbol(t, b, "x")
	a := newTestSymbol(t, b, "a")
	c := newTestSymbol(t, b, "b")
	addTestTerminal(t, b, a, TerminalRule{RHS: "a"})
	addTestTerminal(t, b, c, TerminalRule{RHS: "b"})
	addTestNonterminal(t, b, x, NonterminalRule{RHS: []string{a.Name(), c.Name()}, TranspositionCost: floatPtr(1)})
	b.SetStart(x)
	return compileTestGrammar(t, b)
}

func TestGenEditRules_Transposition(t *testing.T) {
	g := transpositionGrammar(t)
	x := g.SymbolByName("[x]")
	rules := x.Rules()
	if len(rules) != 2 {
		t.Fatalf("unexpected rule count; want: 2, got: %v", len(rules))
	}
	derived := rules[1]
	if derived.Kind() != RuleKindTransposition || !derived.Transposition() {
		t.Fatalf("unexpected derived rule: %v", derived)
	}
	if derived.RHS()[0].Name() != "[b]" || derived.RHS()[1].Name() != "[a]" {
		t.Fatalf("the derived RHS must be reversed; got: %v", derived)
	}
	if derived.Cost() != rules[0].Cost()+1 {
		t.Fatalf("unexpected cost; want: %v, got: %v", rules[0].Cost()+1, derived.Cost())
	}
	if _, ok := derived.InsertionIdx(); ok {
		t.Fatalf("a transposition must not carry an insertion index")
	}
}

func TestGenEditRules_TranspositionIdempotent(t *testing.T) {
	g := transpositionGrammar(t)
	want := len(g.SymbolByName("[x]").Rules())
	genEditRules(g)
	got := len(g.SymbolByName("[x]").Rules())
	if got != want {
		t.Fatalf("re-running the generator must not add rules; want: %v, got: %v", want, got)
	}
}

func TestGenEditRules_TranspositionSuppressed(t *testing.T) {
	b := NewGrammarBuilder()
	x := newTestSymbol(t, b, "x")
	a := newTestSymbol(t, b, "a")
	c := newTestSymbol(t, b, "b")
	addTestTerminal(t, b, a, TerminalRule{RHS: "a"})
	addTestTerminal(t, b, c, TerminalRule{RHS: "b"})
	addTestNonterminal(t, b, x, NonterminalRule{RHS: []string{a.Name(), c.Name()}, TranspositionCost: floatPtr(1)})
	addTestNonterminal(t, b, x, NonterminalRule{RHS: []string{c.Name(), a.Name()}})
	b.SetStart(x)
	g := compileTestGrammar(t, b)
	if got := len(g.SymbolByName("[x]").Rules()); got != 2 {
		t.Fatalf("an already-authored ordering suppresses the transposition; want: 2 rules, got: %v", got)
	}
}

func TestGenEditRules_InsertionText(t *testing.T) {
	b := NewGrammarBuilder()
	x := newTestSymbol(t, b, "x")
	a := newTestSymbol(t, b, "a")
	v := newTestSymbol(t, b, "v")
	addTestTerminal(t, b, a, TerminalRule{RHS: "the", InsertionCost: floatPtr(1)})
	verb := &InflectionMap{OneSg: "go", ThreeSg: "goes", Pl: "go", Past: "went"}
	for _, form := range []string{"go", "goes", "went"} {
		addTestTerminal(t, b, v, TerminalRule{RHS: form, Text: verb})
	}
	addTestNonterminal(t, b, x, NonterminalRule{RHS: []string{a.Name(), v.Name()}})
	b.SetStart(x)
	g := compileTestGrammar(t, b)

	x = g.SymbolByName("[x]")
	rules := x.Rules()
	if len(rules) != 2 {
		t.Fatalf("unexpected rule count; want: 2, got: %v", len(rules))
	}
	derived := rules[1]
	idx, ok := derived.InsertionIdx()
	if !ok || idx != 0 {
		t.Fatalf("unexpected insertion index on %v", derived)
	}
	if derived.RHS()[0].Name() != "[v]" {
		t.Fatalf("the kept side must be the verb; got: %v", derived)
	}
	text, ok := derived.Text().(*InflectionMap)
	if !ok {
		t.Fatalf("the composed text must be an inflection map; got: %v", derived.Text())
	}
	want := InflectionMap{OneSg: "the go", ThreeSg: "the goes", Pl: "the go", Past: "the went"}
	if *text != want {
		t.Fatalf("unexpected composed text; want: %+v, got: %+v", want, *text)
	}
	if derived.Cost() != rules[0].Cost()+1 {
		t.Fatalf("unexpected cost; want: %v, got: %v", rules[0].Cost()+1, derived.Cost())
	}
}

func TestGenEditRules_EmptyElimination(t *testing.T) {
	b := NewGrammarBuilder()
	s := newTestSymbol(t, b, "s")
	opt := newTestSymbol(t, b, "opt")
	inner := newTestSymbol(t, b, "opt", "inner")
	c := newTestSymbol(t, b, "b")
	// [opt] is nullable only through the unary chain to [opt-inner].
	addTestNonterminal(t, b, opt, NonterminalRule{RHS: []string{inner.Name()}})
	addTestTerminal(t, b, inner, TerminalRule{RHS: EmptyTerminal})
	addTestTerminal(t, b, c, TerminalRule{RHS: "b"})
	addTestNonterminal(t, b, s, NonterminalRule{RHS: []string{opt.Name(), c.Name()}})
	b.SetStart(s)
	g := compileTestGrammar(t, b)

	s = g.SymbolByName("[s]")
	rules := s.Rules()
	if len(rules) != 2 {
		t.Fatalf("unexpected rule count; want: 2, got: %v", len(rules))
	}
	derived := rules[1]
	idx, ok := derived.InsertionIdx()
	if !ok || idx != 0 {
		t.Fatalf("the nullable side must be synthesized; got: %v", derived)
	}
	if derived.RHS()[0].Name() != "[b]" {
		t.Fatalf("the kept side must be the sibling; got: %v", derived)
	}
	if derived.Cost() != rules[0].Cost() {
		t.Fatalf("the reduction costs the empty derivation; want: %v, got: %v", rules[0].Cost(), derived.Cost())
	}
}

func TestGenEditRules_Deletables(t *testing.T) {
	b := NewGrammarBuilder()
	b.AddDeletable("of")
	s := newTestSymbol(t, b, "s")
	of, err := b.NewWordSet("of", nil, "of")
	if err != nil {
		t.Fatal(err)
	}
	c := newTestSymbol(t, b, "b")
	addTestTerminal(t, b, c, TerminalRule{RHS: "b"})
	addTestNonterminal(t, b, s, NonterminalRule{RHS: []string{of.Name(), c.Name()}})
	b.SetStart(s)
	g := compileTestGrammar(t, b)

	rules := g.SymbolByName("[s]").Rules()
	if len(rules) != 2 {
		t.Fatalf("a deletable terminal is insertable; want: 2 rules, got: %v", len(rules))
	}
	derived := rules[1]
	if derived.Cost() != rules[0].Cost()+deletableInsertionCost {
		t.Fatalf("unexpected cost; want: %v, got: %v", rules[0].Cost()+deletableInsertionCost, derived.Cost())
	}
}

func TestGenEditRules_NoRuleHasBothMarkers(t *testing.T) {
	g := transpositionGrammar(t)
	for _, sym := range g.Symbols() {
		for _, r := range sym.Rules() {
			if _, ok := r.InsertionIdx(); ok && r.Transposition() {
				t.Fatalf("rule %v carries both edit markers", r)
			}
		}
	}
}
