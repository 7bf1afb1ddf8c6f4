package grammar

import (
	"fmt"
	"sort"
)

// DefaultSymsLimit is the per-path symbol budget the detector uses when
// the caller gives none. Enumeration at this limit stays within a few
// seconds on grammars of around 1,500 rules; ambiguities needing longer
// witnesses are missed, which is the documented trade for termination.
const DefaultSymsLimit = 14

// DetectorOptions configures an ambiguity Detector.
type DetectorOptions struct {
	// SymsLimit caps the total symbols placed on any one path.
	SymsLimit int

	// FindAll reports every distinct witnessing pair instead of at most
	// one per pair of root rules.
	FindAll bool

	// UseTestRules swaps the grammar for the built-in ambiguity fixtures
	// so the detector can prove it still finds them.
	UseTestRules bool

	// NoOutput suppresses witness rendering by callers; the detector
	// still returns the warnings.
	NoOutput bool
}

// An AmbiguityWarning names two distinct rules of one nonterminal that
// admit derivations with the same fringe signature, witnessed by the
// minimal differing tree pair.
type AmbiguityWarning struct {
	Symbol string
	RuleA  int
	RuleB  int
	TreeA  *Tree
	TreeB  *Tree
}

func (w *AmbiguityWarning) String() string {
	return fmt.Sprintf("ambiguity in %v: rule %v vs rule %v: %v <> %v", w.Symbol, w.RuleA, w.RuleB, w.TreeA, w.TreeB)
}

// A Detector enumerates bounded derivation paths from every nonterminal
// of a compiled grammar and reports rules whose fringes collide. It only
// reads the grammar.
type Detector struct {
	g    *Grammar
	opts DetectorOptions
}

func NewDetector(g *Grammar, opts DetectorOptions) (*Detector, error) {
	if opts.SymsLimit == 0 {
		opts.SymsLimit = DefaultSymsLimit
	}
	if opts.SymsLimit < 1 {
		return nil, fmt.Errorf("symsLimit must be at least 1; got: %v", opts.SymsLimit)
	}
	if opts.UseTestRules {
		fg, err := fixtureGrammar()
		if err != nil {
			return nil, err
		}
		g = fg
	}
	if g == nil {
		return nil, fmt.Errorf("a detector needs a compiled grammar")
	}
	return &Detector{
		g:    g,
		opts: opts,
	}, nil
}

// Grammar returns the grammar the detector inspects; under UseTestRules
// this is the fixture grammar, not the caller's.
func (d *Detector) Grammar() *Grammar {
	return d.g
}

// Detect runs the detector over every nonterminal and returns the
// warnings in deterministic order: outer symbol order, then root-rule
// index pair, then ascending path size.
func (d *Detector) Detect() []*AmbiguityWarning {
	var warnings []*AmbiguityWarning
	for _, sym := range d.g.Symbols() {
		warnings = append(warnings, d.detectSymbol(sym)...)
	}
	return warnings
}

// pathGroup indexes one root rule's paths by their terminal strings,
// keeping key insertion order so iteration stays deterministic.
type pathGroup struct {
	keys  []string
	byKey map[string][]*path
}

func newPathGroup() *pathGroup {
	return &pathGroup{
		byKey: map[string][]*path{},
	}
}

func (g *pathGroup) add(p *path) {
	if _, ok := g.byKey[p.terminals]; !ok {
		g.keys = append(g.keys, p.terminals)
	}
	g.byKey[p.terminals] = append(g.byKey[p.terminals], p)
}

func (d *Detector) detectSymbol(sym *Symbol) []*AmbiguityWarning {
	roots := sym.authoredRules()
	if len(roots) < 2 {
		return nil
	}
	groups := make([]*pathGroup, len(roots))
	for i, root := range roots {
		groups[i] = d.enumerate(root)
	}
	var warnings []*AmbiguityWarning
	for a := 0; a < len(roots); a++ {
		for b := a + 1; b < len(roots); b++ {
			warnings = append(warnings, d.compare(sym, a, b, groups[a], groups[b])...)
		}
	}
	return warnings
}

// enumerate expands every leftmost derivation of one root rule until the
// path is terminal-only or its symbol budget is spent. Edit rules are
// skipped: insertion and transposition rules pre-resolve their ambiguity
// by construction.
func (d *Detector) enumerate(root *Rule) *pathGroup {
	group := newPathGroup()
	seed := &path{}
	frontier := []*path{seed.apply(root)}
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		group.add(p)
		if p.nextSym == nil || p.symsCount >= d.opts.SymsLimit {
			continue
		}
		for _, r := range p.nextSym.authoredRules() {
			frontier = append(frontier, p.apply(r))
		}
	}
	return group
}

func (d *Detector) compare(sym *Symbol, a, b int, ga, gb *pathGroup) []*AmbiguityWarning {
	var warnings []*AmbiguityWarning
	seen := map[string]struct{}{}
	for _, terminals := range ga.keys {
		pbs, ok := gb.byKey[terminals]
		if !ok {
			continue
		}
		pas := ga.byKey[terminals]
		// The smallest witness first: later tree trimming keeps the
		// reported pair minimal.
		sort.SliceStable(pas, func(i, j int) bool {
			return pas[i].symsCount < pas[j].symsCount
		})
		for _, pa := range pas {
			for _, pb := range pbs {
				if !pa.sameFringe(pb) {
					continue
				}
				ta, tb := diffTrim(buildTree(sym, pa.chain), buildTree(sym, pb.chain))
				if d.opts.FindAll {
					key := pairKey(ta, tb)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
				}
				warnings = append(warnings, &AmbiguityWarning{
					Symbol: sym.name,
					RuleA:  a,
					RuleB:  b,
					TreeA:  ta,
					TreeB:  tb,
				})
				if !d.opts.FindAll {
					return warnings
				}
			}
		}
	}
	return warnings
}

// pairKey is an order-insensitive identity for a witnessing tree pair.
func pairKey(a, b *Tree) string {
	sa := a.String()
	sb := b.String()
	if sb < sa {
		sa, sb = sb, sa
	}
	return sa + "\x00" + sb
}
