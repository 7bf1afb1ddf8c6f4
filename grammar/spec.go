package grammar

import (
	"fmt"

	spec "github.com/parley-lang/parley/spec/grammar"
)

// Spec converts the compiled grammar into its serialized records.
func (g *Grammar) Spec(name string) *spec.CompiledGrammar {
	cg := &spec.CompiledGrammar{
		Name:       name,
		Start:      g.start.name,
		Deletables: g.deletables,
	}
	for _, sym := range g.symbols {
		entry := &spec.Symbol{
			Name: sym.name,
		}
		for _, r := range sym.rules {
			entry.Rules = append(entry.Rules, ruleSpec(r))
		}
		cg.Symbols = append(cg.Symbols, entry)
	}
	return cg
}

func ruleSpec(r *Rule) *spec.Rule {
	sr := &spec.Rule{
		Kind:              string(r.kind),
		RHS:               r.rhsNames,
		Terminal:          r.terminal,
		Cost:              r.cost,
		InsertionCost:     r.insertionCost,
		TranspositionCost: r.transpositionCost,
		GrammaticalCase:   string(r.grammaticalCase),
		VerbForm:          string(r.verbForm),
		PersonNumber:      string(r.personNumber),
		Tense:             string(r.tense),
		Transposition:     r.transposition,
	}
	if r.sem != nil {
		sr.Semantic = &spec.Semantic{
			Name:      r.sem.name,
			Cost:      r.sem.cost,
			MinParams: r.sem.minParams,
			MaxParams: r.sem.maxParams,
		}
	}
	switch text := r.text.(type) {
	case TextString:
		sr.Text = string(text)
	case *InflectionMap:
		sr.TextInflection = &spec.InflectionMap{
			OneSg:   text.OneSg,
			ThreeSg: text.ThreeSg,
			Pl:      text.Pl,
			Past:    text.Past,
		}
	}
	if idx, ok := r.InsertionIdx(); ok {
		sr.InsertionIdx = &idx
	}
	return sr
}

// FromSpec reconstructs a sealed grammar from its serialized records.
// Edit rules are loaded as recorded, not regenerated, so a checked
// grammar is exactly the one that was emitted.
func FromSpec(cg *spec.CompiledGrammar) (*Grammar, error) {
	table := newSymbolTable()
	for _, entry := range cg.Symbols {
		if _, err := table.register(entry.Name); err != nil {
			return nil, fmt.Errorf("%w: %v", err, entry.Name)
		}
	}
	g := &Grammar{
		symbols: table.symbols,
		names:   table.names,
		delSet:  map[string]struct{}{},
	}
	g.start = table.lookup(cg.Start)
	if g.start == nil {
		return nil, fmt.Errorf("%w: start symbol %v", semErrUndefinedSymbol, cg.Start)
	}
	for _, w := range cg.Deletables {
		if _, ok := g.delSet[w]; ok {
			continue
		}
		g.delSet[w] = struct{}{}
		g.deletables = append(g.deletables, w)
	}
	for _, entry := range cg.Symbols {
		sym := table.lookup(entry.Name)
		for _, sr := range entry.Rules {
			r, err := ruleFromSpec(table, sym, sr)
			if err != nil {
				return nil, err
			}
			if err := sym.addRule(r); err != nil {
				return nil, fmt.Errorf("%w: %v", err, r)
			}
		}
	}
	return g, nil
}

func ruleFromSpec(table *symbolTable, sym *Symbol, sr *spec.Rule) (*Rule, error) {
	r := &Rule{
		kind:              RuleKind(sr.Kind),
		lhs:               sym,
		cost:              sr.Cost,
		terminal:          sr.Terminal,
		insertionCost:     sr.InsertionCost,
		tense:             Tense(sr.Tense),
		rhsNames:          sr.RHS,
		transpositionCost: sr.TranspositionCost,
		grammaticalCase:   GrammaticalCase(sr.GrammaticalCase),
		verbForm:          VerbForm(sr.VerbForm),
		personNumber:      PersonNumber(sr.PersonNumber),
		transposition:     sr.Transposition,
		insertionIdx:      -1,
	}
	switch r.kind {
	case RuleKindTerminal:
		if r.terminal == "" {
			return nil, fmt.Errorf("%w: %v needs a terminal string", semErrIllFormedRule, sym.name)
		}
		r.id = genRuleID("term", sym.name, r.terminal)
	case RuleKindNonterminal, RuleKindTransposition, RuleKindInsertion:
		if len(sr.RHS) == 0 || len(sr.RHS) > 2 {
			return nil, fmt.Errorf("%w: %v -> %v", semErrIllFormedRule, sym.name, sr.RHS)
		}
		for _, name := range sr.RHS {
			ref := table.lookup(name)
			if ref == nil {
				return nil, fmt.Errorf("%w: %v referenced by %v", semErrUndefinedSymbol, name, sym.name)
			}
			r.rhs = append(r.rhs, ref)
		}
		if r.kind == RuleKindInsertion {
			if sr.InsertionIdx == nil || *sr.InsertionIdx < 0 || *sr.InsertionIdx > 1 {
				return nil, fmt.Errorf("%w: insertion rule of %v needs an insertion index", semErrIllFormedRule, sym.name)
			}
			r.insertionIdx = *sr.InsertionIdx
			r.id = genRuleID(insertionTag(r.insertionIdx), sym.name, sr.RHS...)
		} else {
			r.id = genRuleID("nonterm", sym.name, sr.RHS...)
		}
	default:
		return nil, fmt.Errorf("%w: unknown rule kind %q on %v", semErrIllFormedRule, sr.Kind, sym.name)
	}
	if sr.Semantic != nil {
		r.sem = &Semantic{
			name:      sr.Semantic.Name,
			cost:      sr.Semantic.Cost,
			minParams: sr.Semantic.MinParams,
			maxParams: sr.Semantic.MaxParams,
		}
	}
	switch {
	case sr.TextInflection != nil:
		r.text = &InflectionMap{
			OneSg:   sr.TextInflection.OneSg,
			ThreeSg: sr.TextInflection.ThreeSg,
			Pl:      sr.TextInflection.Pl,
			Past:    sr.TextInflection.Past,
		}
	case sr.Text != "" || r.kind == RuleKindTerminal || r.kind == RuleKindInsertion:
		r.text = TextString(sr.Text)
	}
	return r, nil
}
