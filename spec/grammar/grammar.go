// Package grammar defines the serialized form of a compiled grammar: the
// records written to disk for the parser-table generator and read back by
// the checking tools.
package grammar

// An InflectionMap keys a rule's surface forms by grammatical case for
// parse-time conjugation.
type InflectionMap struct {
	OneSg   string `json:"one_sg"`
	ThreeSg string `json:"three_sg"`
	Pl      string `json:"pl"`
	Past    string `json:"past"`
}

type Semantic struct {
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	MinParams int     `json:"min_params"`
	MaxParams int     `json:"max_params"`
}

type Rule struct {
	Kind string `json:"kind"`

	// RHS holds the symbol names of a nonterminal-flavored rule; Terminal
	// holds the terminal string of a terminal rule.
	RHS      []string `json:"rhs,omitempty"`
	Terminal string   `json:"terminal,omitempty"`

	Cost     float64   `json:"cost"`
	Semantic *Semantic `json:"semantic,omitempty"`

	// Exactly one of Text and TextInflection is set on rules carrying
	// display text.
	Text           string         `json:"text,omitempty"`
	TextInflection *InflectionMap `json:"text_inflection,omitempty"`

	InsertionCost     *float64 `json:"insertion_cost,omitempty"`
	TranspositionCost *float64 `json:"transposition_cost,omitempty"`

	GrammaticalCase string `json:"grammatical_case,omitempty"`
	VerbForm        string `json:"verb_form,omitempty"`
	PersonNumber    string `json:"person_number,omitempty"`
	Tense           string `json:"tense,omitempty"`

	InsertionIdx  *int `json:"insertion_idx,omitempty"`
	Transposition bool `json:"transposition,omitempty"`
}

type Symbol struct {
	Name  string  `json:"name"`
	Rules []*Rule `json:"rules"`
}

type CompiledGrammar struct {
	Name       string    `json:"name"`
	Start      string    `json:"start"`
	Deletables []string  `json:"deletables,omitempty"`
	Symbols    []*Symbol `json:"symbols"`
}
