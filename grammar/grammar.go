// Package grammar compiles a programmatic grammar description for a
// natural-language question-answering system: authored nonterminal and
// terminal rules are validated, enriched with derived edit rules
// (insertions, transpositions, empty-symbol reductions), and checked for
// ambiguity before being handed to a parser-table generator.
package grammar

import (
	"fmt"
	"math"
	"strings"

	verr "github.com/parley-lang/parley/error"
)

// TerminalRule describes one terminal production for
// GrammarBuilder.AddTerminalRule.
type TerminalRule struct {
	// RHS is the terminal string matched in the input, or EmptyTerminal.
	RHS string

	// Text is the display text carried to parse-time conjugation. When
	// nil, the RHS string itself is used, or an empty string for
	// EmptyTerminal.
	Text TermText

	// InsertionCost marks the rule as insertable by the edit-rule
	// generator.
	InsertionCost *float64

	Tense Tense
}

// NonterminalRule describes one nonterminal production for
// GrammarBuilder.AddNonterminalRule. RHS symbols are referenced by name
// and resolved at compile time, so rules may reference symbols defined
// later.
type NonterminalRule struct {
	RHS      []string
	Semantic *Semantic

	// TranspositionCost marks a binary rule as transposable.
	TranspositionCost *float64

	Case         GrammaticalCase
	VerbForm     VerbForm
	PersonNumber PersonNumber
}

// GrammarBuilder accumulates symbols, rules, semantics, and deletables,
// then Compile validates the whole, generates edit rules, and seals the
// result. All authoring errors are also accumulated so Compile can report
// the full batch.
type GrammarBuilder struct {
	symbols    *symbolTable
	semantics  *SemanticRegistry
	start      *Symbol
	deletables []string
	delSet     map[string]struct{}
	errs       verr.GrammarErrors
	sealed     bool
}

func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{
		symbols:   newSymbolTable(),
		semantics: NewSemanticRegistry(),
		delSet:    map[string]struct{}{},
	}
}

func (b *GrammarBuilder) Semantics() *SemanticRegistry {
	return b.semantics
}

func (b *GrammarBuilder) fail(cause error, symbol string, detail string) error {
	err := &verr.GrammarError{
		Cause:  cause,
		Symbol: symbol,
		Detail: detail,
	}
	b.errs = append(b.errs, err)
	return err
}

// NewSymbol registers a fresh nonterminal named by joining the given
// parts with hyphens inside brackets.
func (b *GrammarBuilder) NewSymbol(parts ...string) (*Symbol, error) {
	if b.sealed {
		return nil, b.fail(semErrSealed, "", "")
	}
	name, err := symbolName(parts)
	if err != nil {
		return nil, b.fail(err, "", fmt.Sprintf("parts: %q", parts))
	}
	sym, err := b.symbols.register(name)
	if err != nil {
		return nil, b.fail(err, name, "")
	}
	return sym, nil
}

// SetStart designates the grammar's start symbol.
func (b *GrammarBuilder) SetStart(sym *Symbol) {
	b.start = sym
}

// AddDeletable declares terminal strings the parser may elide; the
// edit-rule generator treats them as insertable.
func (b *GrammarBuilder) AddDeletable(words ...string) {
	for _, w := range words {
		if _, ok := b.delSet[w]; ok {
			continue
		}
		b.delSet[w] = struct{}{}
		b.deletables = append(b.deletables, w)
	}
}

// AddTerminalRule validates r against the terminal schema and appends it
// to sym's rule list.
func (b *GrammarBuilder) AddTerminalRule(sym *Symbol, r TerminalRule) error {
	if b.sealed {
		return b.fail(semErrSealed, sym.name, "")
	}
	if r.RHS == "" {
		return b.fail(semErrIllFormedRule, sym.name, "a terminal rule needs a non-empty RHS string")
	}
	if r.InsertionCost != nil && (*r.InsertionCost < 0 || math.IsInf(*r.InsertionCost, 0) || math.IsNaN(*r.InsertionCost)) {
		return b.fail(semErrIllFormedRule, sym.name, fmt.Sprintf("insertion cost must be finite and nonnegative; RHS: %q", r.RHS))
	}
	text := r.Text
	if text == nil {
		if r.RHS == EmptyTerminal {
			text = TextString("")
		} else {
			text = TextString(r.RHS)
		}
	}
	rule := &Rule{
		id:            genRuleID("term", sym.name, r.RHS),
		kind:          RuleKindTerminal,
		lhs:           sym,
		cost:          float64(len(sym.rules)) * costEpsilon,
		terminal:      r.RHS,
		text:          text,
		insertionCost: r.InsertionCost,
		tense:         r.Tense,
		insertionIdx:  -1,
	}
	if err := sym.addRule(rule); err != nil {
		return b.fail(err, sym.name, fmt.Sprintf("RHS: %q", r.RHS))
	}
	return nil
}

// AddNonterminalRule validates r and appends it to sym's rule list. The
// rule's cost is its index on sym times costEpsilon plus the semantic's
// cost, which fixes a deterministic total order on otherwise-equivalent
// derivations.
func (b *GrammarBuilder) AddNonterminalRule(sym *Symbol, r NonterminalRule) error {
	if b.sealed {
		return b.fail(semErrSealed, sym.name, "")
	}
	rhs := fmt.Sprintf("RHS: %v", strings.Join(r.RHS, " "))
	if len(r.RHS) == 0 {
		return b.fail(semErrIllFormedRule, sym.name, "a nonterminal rule needs at least one RHS symbol")
	}
	if len(r.RHS) > 2 {
		return b.fail(semErrRHSTooLong, sym.name, rhs)
	}
	for _, name := range r.RHS {
		if name == "" {
			return b.fail(semErrIllFormedRule, sym.name, rhs)
		}
	}
	if r.TranspositionCost != nil {
		if len(r.RHS) != 2 {
			return b.fail(semErrTranspositionRHS, sym.name, rhs)
		}
		if *r.TranspositionCost < 0 || math.IsInf(*r.TranspositionCost, 0) || math.IsNaN(*r.TranspositionCost) {
			return b.fail(semErrIllFormedRule, sym.name, fmt.Sprintf("transposition cost must be finite and nonnegative; %v", rhs))
		}
	}
	cost := float64(len(sym.rules)) * costEpsilon
	if r.Semantic != nil {
		cost += r.Semantic.cost
	}
	rule := &Rule{
		id:                genRuleID("nonterm", sym.name, r.RHS...),
		kind:              RuleKindNonterminal,
		lhs:               sym,
		cost:              cost,
		sem:               r.Semantic,
		rhsNames:          append([]string{}, r.RHS...),
		transpositionCost: r.TranspositionCost,
		grammaticalCase:   r.Case,
		verbForm:          r.VerbForm,
		personNumber:      r.PersonNumber,
		insertionIdx:      -1,
	}
	if err := sym.addRule(rule); err != nil {
		return b.fail(err, sym.name, rhs)
	}
	return nil
}

// Compile verifies the authored grammar, resolves RHS symbol references,
// generates edit rules, and seals the store. After Compile the grammar is
// immutable; the ambiguity detector only reads it.
func (b *GrammarBuilder) Compile() (*Grammar, error) {
	if b.sealed {
		return nil, verr.GrammarErrors{{Cause: semErrSealed}}
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	for _, sym := range b.symbols.symbols {
		for _, r := range sym.rules {
			if r.kind != RuleKindNonterminal {
				continue
			}
			r.rhs = make([]*Symbol, 0, len(r.rhsNames))
			for _, name := range r.rhsNames {
				ref := b.symbols.lookup(name)
				if ref == nil {
					b.fail(semErrUndefinedSymbol, sym.name, fmt.Sprintf("RHS: %v", strings.Join(r.rhsNames, " ")))
					continue
				}
				r.rhs = append(r.rhs, ref)
			}
		}
	}
	if b.start == nil {
		b.fail(semErrNoStartSymbol, "", "")
	} else if len(b.start.rules) == 0 {
		b.fail(semErrNoStartRule, b.start.name, "")
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	g := &Grammar{
		symbols:    b.symbols.symbols,
		names:      b.symbols.names,
		start:      b.start,
		deletables: b.deletables,
		delSet:     b.delSet,
	}
	genEditRules(g)
	b.sealed = true
	return g, nil
}

// A Grammar is the sealed result of compilation: the symbol registry with
// authored and derived rules, the start symbol, and the deletables set.
type Grammar struct {
	symbols    []*Symbol
	names      map[string]*Symbol
	start      *Symbol
	deletables []string
	delSet     map[string]struct{}
}

// Symbols returns every symbol in authoring order.
func (g *Grammar) Symbols() []*Symbol {
	return g.symbols
}

func (g *Grammar) Start() *Symbol {
	return g.start
}

func (g *Grammar) Deletables() []string {
	return g.deletables
}

func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.names[name]
}

func (g *Grammar) isDeletable(terminal string) bool {
	_, ok := g.delSet[terminal]
	return ok
}
