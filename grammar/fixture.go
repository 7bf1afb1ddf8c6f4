package grammar

import (
	"fmt"
	"strings"
)

// fixtureGrammar builds the self-test grammar: every nonterminal whose
// name contains "ambig" is ambiguous on purpose, and the detector is
// expected to flag each one.
func fixtureGrammar() (*Grammar, error) {
	b := NewGrammarBuilder()

	termX, err := b.NewSymbol("term", "x")
	if err != nil {
		return nil, err
	}
	if err := b.AddTerminalRule(termX, TerminalRule{RHS: "x"}); err != nil {
		return nil, err
	}
	termX2, err := b.NewSymbol("term", "x", "alias")
	if err != nil {
		return nil, err
	}
	if err := b.AddTerminalRule(termX2, TerminalRule{RHS: "x"}); err != nil {
		return nil, err
	}
	termY, err := b.NewSymbol("term", "y")
	if err != nil {
		return nil, err
	}
	if err := b.AddTerminalRule(termY, TerminalRule{RHS: "y"}); err != nil {
		return nil, err
	}
	wrapX, err := b.NewSymbol("wrap", "x")
	if err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(wrapX, NonterminalRule{RHS: []string{termX.Name()}}); err != nil {
		return nil, err
	}

	// Two rules deriving "x" directly.
	direct, err := b.NewSymbol("ambig", "direct")
	if err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(direct, NonterminalRule{RHS: []string{termX.Name()}}); err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(direct, NonterminalRule{RHS: []string{termX2.Name()}}); err != nil {
		return nil, err
	}

	// Same fringe with a shared frontier symbol left unexpanded.
	fringe, err := b.NewSymbol("ambig", "fringe")
	if err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(fringe, NonterminalRule{RHS: []string{termX.Name(), termY.Name()}}); err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(fringe, NonterminalRule{RHS: []string{termX2.Name(), termY.Name()}}); err != nil {
		return nil, err
	}

	// Ambiguity visible only after an extra expansion step.
	deep, err := b.NewSymbol("ambig", "deep")
	if err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(deep, NonterminalRule{RHS: []string{wrapX.Name()}}); err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(deep, NonterminalRule{RHS: []string{termX.Name()}}); err != nil {
		return nil, err
	}

	// An unambiguous control: the detector must stay quiet here.
	control, err := b.NewSymbol("control")
	if err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(control, NonterminalRule{RHS: []string{termX.Name()}}); err != nil {
		return nil, err
	}
	if err := b.AddNonterminalRule(control, NonterminalRule{RHS: []string{termY.Name()}}); err != nil {
		return nil, err
	}

	start, err := b.NewSymbol("fixture", "start")
	if err != nil {
		return nil, err
	}
	for _, sym := range []*Symbol{direct, fringe, deep, control} {
		if err := b.AddNonterminalRule(start, NonterminalRule{RHS: []string{sym.Name()}}); err != nil {
			return nil, err
		}
	}
	b.SetStart(start)
	return b.Compile()
}

// MissedFixtures lists fixture symbols whose deliberate ambiguity the
// detector failed to flag. A non-empty result marks the implementation as
// defective; it does not abort processing.
func MissedFixtures(g *Grammar, warnings []*AmbiguityWarning) []string {
	flagged := map[string]struct{}{}
	for _, w := range warnings {
		flagged[w.Symbol] = struct{}{}
	}
	var missed []string
	for _, sym := range g.Symbols() {
		if !strings.Contains(sym.Name(), "ambig") {
			continue
		}
		if _, ok := flagged[sym.Name()]; !ok {
			missed = append(missed, sym.Name())
		}
	}
	return missed
}

// SelfTest runs the detector against the fixture grammar and returns an
// error naming every fixture whose ambiguity went undetected.
func SelfTest(opts DetectorOptions) ([]*AmbiguityWarning, error) {
	opts.UseTestRules = true
	d, err := NewDetector(nil, opts)
	if err != nil {
		return nil, err
	}
	warnings := d.Detect()
	if missed := MissedFixtures(d.Grammar(), warnings); len(missed) > 0 {
		return warnings, fmt.Errorf("ambiguity not detected in fixture symbols: %v", strings.Join(missed, ", "))
	}
	return warnings, nil
}
