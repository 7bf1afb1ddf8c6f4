package grammar

// An AmbiguityWarning pairs two rules of one nonterminal whose bounded
// derivations share a fringe signature. The trees are the diff-trimmed
// witnesses, pretty-printed.
type AmbiguityWarning struct {
	Symbol string `json:"symbol"`
	RuleA  int    `json:"rule_a"`
	RuleB  int    `json:"rule_b"`
	TreeA  string `json:"tree_a"`
	TreeB  string `json:"tree_b"`
}

// A Report carries everything the compiler found besides the grammar
// itself. Ambiguity findings never abort compilation; the grammar is
// still emitted and the author resolves them.
type Report struct {
	Symbols       int                 `json:"symbols"`
	Rules         int                 `json:"rules"`
	EditRules     int                 `json:"edit_rules"`
	Ambiguities   []*AmbiguityWarning `json:"ambiguities,omitempty"`
	FixtureMisses []string            `json:"fixture_misses,omitempty"`
}
