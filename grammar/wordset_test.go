package grammar

import "testing"

func TestNewVerbSet(t *testing.T) {
	b := NewGrammarBuilder()
	sym, err := b.NewVerbSet("verb-like", floatPtr(1),
		[]VerbForms{
			{OneSg: "like", ThreeSg: "likes", Pl: "like", Past: "liked", PresentParticiple: "liking"},
			{OneSg: "adore", ThreeSg: "adores", Pl: "adore", Past: "adored"},
		},
		[]VerbForms{
			{OneSg: "love", ThreeSg: "loves", Pl: "love", Past: "loved"},
		})
	if err != nil {
		t.Fatal(err)
	}

	// "like" covers both oneSg and pl, so the first verb collapses to
	// four rules.
	wantSurfaces := []string{"like", "likes", "liked", "liking", "adore", "adores", "adored", "love", "loves", "loved"}
	rules := sym.Rules()
	if len(rules) != len(wantSurfaces) {
		t.Fatalf("unexpected rule count; want: %v, got: %v", len(wantSurfaces), len(rules))
	}
	for i, want := range wantSurfaces {
		if rules[i].Terminal() != want {
			t.Fatalf("unexpected terminal at %v; want: %v, got: %v", i, want, rules[i].Terminal())
		}
	}
}

func TestNewVerbSet_SharedInflectionMap(t *testing.T) {
	b := NewGrammarBuilder()
	sym, err := b.NewVerbSet("verb-like", nil,
		[]VerbForms{
			{OneSg: "like", ThreeSg: "likes", Pl: "like", Past: "liked"},
			{OneSg: "adore", ThreeSg: "adores", Pl: "adore", Past: "adored"},
		},
		[]VerbForms{
			{OneSg: "love", ThreeSg: "loves", Pl: "love", Past: "loved"},
		})
	if err != nil {
		t.Fatal(err)
	}
	rules := sym.Rules()

	canonical := rules[0].Text().(*InflectionMap)
	if canonical.OneSg != "like" || canonical.ThreeSg != "likes" || canonical.Pl != "like" || canonical.Past != "liked" {
		t.Fatalf("unexpected canonical map: %+v", canonical)
	}
	// Rules of one verb share a single map.
	for _, r := range rules[:3] {
		if r.Text().(*InflectionMap) != canonical {
			t.Fatalf("rule %v does not share the canonical map", r)
		}
	}
	// A second accepted verb carries its own forms.
	adore := rules[3].Text().(*InflectionMap)
	if adore == canonical || adore.OneSg != "adore" {
		t.Fatalf("unexpected map on the second accepted verb: %+v", adore)
	}
	// Substituted verbs display as the canonical verb.
	for _, r := range rules[6:] {
		if r.Text().(*InflectionMap) != canonical {
			t.Fatalf("substituted rule %v does not carry the canonical map", r)
		}
	}
}

func TestNewVerbSet_Tense(t *testing.T) {
	b := NewGrammarBuilder()
	sym, err := b.NewVerbSet("verb-take", nil,
		[]VerbForms{
			{OneSg: "take", ThreeSg: "takes", Pl: "take", Past: "took", PastParticiple: "taken"},
		}, nil)
	if err != nil {
		t.Fatal(err)
	}
	wantTenses := map[string]Tense{
		"take":  TenseNil,
		"takes": TenseNil,
		"took":  TensePast,
		"taken": TensePast,
	}
	for _, r := range sym.Rules() {
		if r.Tense() != wantTenses[r.Terminal()] {
			t.Fatalf("unexpected tense on %q; want: %v, got: %v", r.Terminal(), wantTenses[r.Terminal()], r.Tense())
		}
	}
}

func TestNewVerbSet_InsertionCost(t *testing.T) {
	b := NewGrammarBuilder()
	sym, err := b.NewVerbSet("verb-like", floatPtr(1),
		[]VerbForms{
			{OneSg: "like", ThreeSg: "likes", Pl: "like", Past: "liked"},
			{OneSg: "adore", ThreeSg: "adores", Pl: "adore", Past: "adored"},
		},
		[]VerbForms{
			{OneSg: "love", ThreeSg: "loves", Pl: "love", Past: "loved"},
		})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range sym.Rules() {
		if i == 0 {
			if r.InsertionCost() == nil || *r.InsertionCost() != 1 {
				t.Fatalf("the first rule must carry the insertion cost; got: %v", r.InsertionCost())
			}
			continue
		}
		if r.InsertionCost() != nil {
			t.Fatalf("only the first rule carries the insertion cost; rule %v has %v", i, *r.InsertionCost())
		}
	}
}

func TestNewWordSet(t *testing.T) {
	b := NewGrammarBuilder()
	sym, err := b.NewWordSet("that", nil, "that", "which", "that", "who")
	if err != nil {
		t.Fatal(err)
	}
	rules := sym.Rules()
	if len(rules) != 3 {
		t.Fatalf("duplicate words must collapse; want: 3 rules, got: %v", len(rules))
	}
	for _, r := range rules {
		if text, ok := r.Text().(TextString); !ok || string(text) != r.Terminal() {
			t.Fatalf("a word rule's text is its surface string; got: %v", r.Text())
		}
	}
}
