package grammar

// TermText is the display text a terminal rule carries until parse-time
// conjugation: either a literal string or an inflection map.
type TermText interface {
	isTermText()
	String() string
}

type TextString string

func (t TextString) isTermText() {}

func (t TextString) String() string {
	return string(t)
}

// An InflectionMap keys surface forms by grammatical case so the parser
// can conjugate a matched verb downstream. Every terminal rule of one
// verb shares a single map.
type InflectionMap struct {
	OneSg   string
	ThreeSg string
	Pl      string
	Past    string
}

func (m *InflectionMap) isTermText() {}

func (m *InflectionMap) String() string {
	return m.OneSg
}

func (m *InflectionMap) mapString(f func(string) string) *InflectionMap {
	return &InflectionMap{
		OneSg:   f(m.OneSg),
		ThreeSg: f(m.ThreeSg),
		Pl:      f(m.Pl),
		Past:    f(m.Past),
	}
}

// joinWords concatenates two surface strings with a single space,
// collapsing the separator when either side is empty.
func joinWords(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}

// concatText composes the display text of two adjacent insertable
// derivations.
func concatText(a, b TermText) TermText {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	switch at := a.(type) {
	case TextString:
		switch bt := b.(type) {
		case TextString:
			return TextString(joinWords(string(at), string(bt)))
		case *InflectionMap:
			return bt.mapString(func(form string) string {
				return joinWords(string(at), form)
			})
		}
	case *InflectionMap:
		switch bt := b.(type) {
		case TextString:
			return at.mapString(func(form string) string {
				return joinWords(form, string(bt))
			})
		case *InflectionMap:
			return &InflectionMap{
				OneSg:   joinWords(at.OneSg, bt.OneSg),
				ThreeSg: joinWords(at.ThreeSg, bt.ThreeSg),
				Pl:      joinWords(at.Pl, bt.Pl),
				Past:    joinWords(at.Past, bt.Past),
			}
		}
	}
	return a
}
