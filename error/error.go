package error

import (
	"fmt"
	"strings"
)

// GrammarError is an authoring-time failure bound to the grammar element
// that caused it.
type GrammarError struct {
	Cause  error
	Symbol string
	Detail string
}

func (e *GrammarError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Symbol != "" {
		fmt.Fprintf(&b, "; symbol: %v", e.Symbol)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, "; %v", e.Detail)
	}
	return b.String()
}

func (e *GrammarError) Unwrap() error {
	return e.Cause
}

type GrammarErrors []*GrammarError

func (e GrammarErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}
