package grammar

// VerbForms is one verb's conjugation table as authored. The first four
// forms are mandatory for accepted sets; the rest are optional extras
// recognized in input without their own inflection-map slot.
type VerbForms struct {
	OneSg              string
	ThreeSg            string
	Pl                 string
	Past               string
	PresentSubjunctive string
	PresentParticiple  string
	PastParticiple     string
}

func (f VerbForms) inflectionMap() *InflectionMap {
	return &InflectionMap{
		OneSg:   f.OneSg,
		ThreeSg: f.ThreeSg,
		Pl:      f.Pl,
		Past:    f.Past,
	}
}

type verbForm struct {
	surface string
	past    bool
}

// forms lists the surface strings in a fixed order so duplicate collapse
// is deterministic. Past-family forms carry the past tag.
func (f VerbForms) forms() []verbForm {
	return []verbForm{
		{surface: f.OneSg},
		{surface: f.ThreeSg},
		{surface: f.Pl},
		{surface: f.Past, past: true},
		{surface: f.PresentSubjunctive},
		{surface: f.PresentParticiple},
		{surface: f.PastParticiple, past: true},
	}
}

// NewVerbSet registers a nonterminal and derives one terminal rule per
// distinct surface form of the accepted verbs. Every rule of one verb
// shares that verb's inflection map as its text, so the parser can
// conjugate whatever form matched. Substituted verbs run through the same
// procedure with the first accepted verb's map as their text, so matches
// on a substituted form display as the canonical verb.
//
// An insertion cost, if given, is attached only to the first rule of the
// first accepted verb.
func (b *GrammarBuilder) NewVerbSet(name string, insertionCost *float64, accepted []VerbForms, substituted []VerbForms) (*Symbol, error) {
	sym, err := b.NewSymbol(name)
	if err != nil {
		return nil, err
	}
	if len(accepted) == 0 {
		return nil, b.fail(semErrIllFormedRule, sym.name, "a verb set needs at least one accepted verb")
	}
	canonical := accepted[0].inflectionMap()
	for i, verb := range accepted {
		text := canonical
		var ic *float64
		if i == 0 {
			ic = insertionCost
		} else {
			text = verb.inflectionMap()
		}
		if err := b.addVerbRules(sym, verb, text, ic); err != nil {
			return nil, err
		}
	}
	for _, verb := range substituted {
		if err := b.addVerbRules(sym, verb, canonical, nil); err != nil {
			return nil, err
		}
	}
	return sym, nil
}

func (b *GrammarBuilder) addVerbRules(sym *Symbol, verb VerbForms, text *InflectionMap, insertionCost *float64) error {
	seen := map[string]struct{}{}
	first := true
	for _, form := range verb.forms() {
		if form.surface == "" {
			continue
		}
		if _, ok := seen[form.surface]; ok {
			continue
		}
		seen[form.surface] = struct{}{}
		r := TerminalRule{
			RHS:  form.surface,
			Text: text,
		}
		if form.past {
			r.Tense = TensePast
		}
		if first && insertionCost != nil {
			r.InsertionCost = insertionCost
		}
		first = false
		if err := b.AddTerminalRule(sym, r); err != nil {
			return err
		}
	}
	return nil
}

// NewWordSet registers a nonterminal with one literal terminal rule per
// distinct word. Stop-word lists and other non-conjugating vocabulary go
// through here.
func (b *GrammarBuilder) NewWordSet(name string, insertionCost *float64, words ...string) (*Symbol, error) {
	sym, err := b.NewSymbol(name)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		r := TerminalRule{RHS: w}
		if insertionCost != nil {
			c := *insertionCost
			r.InsertionCost = &c
		}
		if err := b.AddTerminalRule(sym, r); err != nil {
			return nil, err
		}
	}
	return sym, nil
}
