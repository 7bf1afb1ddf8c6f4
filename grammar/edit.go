package grammar

// deletableInsertionCost is the elision penalty for terminals admitted
// through the deletables set without an explicit insertion cost.
const deletableInsertionCost = 1.0

// insertableEntry is the cheapest derivation from a symbol to a string
// made entirely of insertable terminals. The empty-terminal marker is the
// degenerate case: a nullable symbol is insertable with empty text.
type insertableEntry struct {
	cost float64
	text TermText
}

type insertableSet struct {
	set map[*Symbol]*insertableEntry
}

func (s *insertableSet) find(sym *Symbol) *insertableEntry {
	return s.set[sym]
}

// update keeps the minimum-cost entry per symbol and reports whether the
// set changed.
func (s *insertableSet) update(sym *Symbol, cost float64, text TermText) bool {
	e, ok := s.set[sym]
	if ok && e.cost <= cost {
		return false
	}
	s.set[sym] = &insertableEntry{
		cost: cost,
		text: text,
	}
	return true
}

// genInsertableSet computes, by least-fixed-point iteration, every symbol
// whose language contains a string of insertable terminals, together with
// the cheapest such derivation's cost and composed display text. Nullable
// symbols fall out of the same computation via the empty terminal.
func genInsertableSet(g *Grammar) *insertableSet {
	ins := &insertableSet{
		set: map[*Symbol]*insertableEntry{},
	}
	for {
		changed := false
		for _, sym := range g.Symbols() {
			for _, r := range sym.authoredRules() {
				switch r.kind {
				case RuleKindTerminal:
					switch {
					case r.terminal == EmptyTerminal:
						changed = ins.update(sym, r.cost, TextString("")) || changed
					case r.insertionCost != nil:
						changed = ins.update(sym, r.cost+*r.insertionCost, r.text) || changed
					case g.isDeletable(r.terminal):
						changed = ins.update(sym, r.cost+deletableInsertionCost, r.text) || changed
					}
				case RuleKindNonterminal:
					cost := r.cost
					var text TermText
					ok := true
					for _, child := range r.rhs {
						e := ins.find(child)
						if e == nil {
							ok = false
							break
						}
						cost += e.cost
						text = concatText(text, e.text)
					}
					if ok {
						changed = ins.update(sym, cost, text) || changed
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return ins
}

// genEditRules appends the derived rule families to the grammar: for
// every authored binary rule whose left or right side is insertable (or
// nullable), a unary insertion rule keeping the other side; for every
// authored rule carrying a transposition cost, the reversed rule. Derived
// rules follow the authored rules on each LHS, so indices and relative
// costs stay deterministic. Re-running the generator is a no-op: every
// derived rule's identity is already registered on its LHS.
func genEditRules(g *Grammar) {
	ins := genInsertableSet(g)
	for _, sym := range g.Symbols() {
		for _, r := range sym.authoredRules() {
			if r.kind != RuleKindNonterminal || len(r.rhs) != 2 {
				continue
			}
			for idx := 0; idx <= 1; idx++ {
				e := ins.find(r.rhs[idx])
				if e == nil {
					continue
				}
				kept := r.rhs[1-idx]
				derived := &Rule{
					id:           genRuleID(insertionTag(idx), sym.name, kept.name),
					kind:         RuleKindInsertion,
					lhs:          sym,
					cost:         r.cost + e.cost,
					sem:          r.sem,
					text:         insertionText(e.text, kept, idx),
					rhsNames:     []string{kept.name},
					rhs:          []*Symbol{kept},
					insertionIdx: idx,
				}
				if sym.hasRule(derived.id) {
					continue
				}
				sym.addRule(derived)
			}
		}
	}
	for _, sym := range g.Symbols() {
		for _, r := range sym.authoredRules() {
			if r.kind != RuleKindNonterminal || r.transpositionCost == nil {
				continue
			}
			reversed := []*Symbol{r.rhs[1], r.rhs[0]}
			derived := &Rule{
				id:            genRuleID("nonterm", sym.name, reversed[0].name, reversed[1].name),
				kind:          RuleKindTransposition,
				lhs:           sym,
				cost:          r.cost + *r.transpositionCost,
				sem:           r.sem,
				rhsNames:      []string{reversed[0].name, reversed[1].name},
				rhs:           reversed,
				insertionIdx:  -1,
				transposition: true,
			}
			if sym.hasRule(derived.id) {
				continue
			}
			sym.addRule(derived)
		}
	}
}

// insertionText composes a derived rule's display text: the inserted
// surface string joined, on its original side, with the kept symbol's
// shared terminal text when it has one. Keeping the kept side's
// inflection map in the composition lets the parser conjugate the whole
// insertion downstream. Empty-symbol reductions insert nothing, so their
// text is the inserted side's (empty) string alone.
func insertionText(inserted TermText, kept *Symbol, idx int) TermText {
	if inserted == nil || inserted.String() == "" {
		if _, ok := inserted.(*InflectionMap); !ok {
			return inserted
		}
	}
	kt := sharedTerminalText(kept)
	if kt == nil {
		return inserted
	}
	if idx == 0 {
		return concatText(inserted, kt)
	}
	return concatText(kt, inserted)
}

// sharedTerminalText returns the display text every terminal rule of sym
// carries, or nil when sym has nonterminal rules or mixed texts.
func sharedTerminalText(sym *Symbol) TermText {
	var shared TermText
	for _, r := range sym.rules {
		if r.kind != RuleKindTerminal {
			return nil
		}
		if shared == nil {
			shared = r.text
			continue
		}
		if !textEqual(shared, r.text) {
			return nil
		}
	}
	return shared
}

func textEqual(a, b TermText) bool {
	switch at := a.(type) {
	case TextString:
		bt, ok := b.(TextString)
		return ok && at == bt
	case *InflectionMap:
		bt, ok := b.(*InflectionMap)
		return ok && *at == *bt
	}
	return false
}

func insertionTag(idx int) string {
	if idx == 0 {
		return "ins0"
	}
	return "ins1"
}
