package grammar

import "fmt"

// A Semantic is a named parse-time function attached to nonterminal rules.
// Semantics are value objects; the parser evaluates them, the compiler
// only tracks their cost and arity.
type Semantic struct {
	name      string
	cost      float64
	minParams int
	maxParams int
}

func (s *Semantic) Name() string   { return s.name }
func (s *Semantic) Cost() float64  { return s.cost }
func (s *Semantic) MinParams() int { return s.minParams }
func (s *Semantic) MaxParams() int { return s.maxParams }

// SemanticRegistry holds the named semantics of one grammar.
type SemanticRegistry struct {
	names map[string]*Semantic
}

func NewSemanticRegistry() *SemanticRegistry {
	return &SemanticRegistry{
		names: map[string]*Semantic{},
	}
}

func (r *SemanticRegistry) New(name string, cost float64, minParams, maxParams int) (*Semantic, error) {
	if name == "" {
		return nil, semErrIllFormedName
	}
	if _, ok := r.names[name]; ok {
		return nil, semErrDuplicateSem
	}
	if cost < 0 || minParams < 0 || maxParams < minParams {
		return nil, semErrIllFormedRule
	}
	sem := &Semantic{
		name:      name,
		cost:      cost,
		minParams: minParams,
		maxParams: maxParams,
	}
	r.names[name] = sem
	return sem, nil
}

func (r *SemanticRegistry) Lookup(name string) *Semantic {
	return r.names[name]
}

// Reduce composes two semantics into outer(inner(...)). The composite's
// cost is the sum of both costs and its arity is the inner semantic's,
// since the inner function receives the parse-time arguments. The outer
// semantic must accept the inner one as its single parameter.
func (r *SemanticRegistry) Reduce(outer, inner *Semantic) (*Semantic, error) {
	if outer == nil || inner == nil {
		return nil, semErrArityMismatch
	}
	if outer.maxParams < 1 || outer.minParams > 1 {
		return nil, semErrArityMismatch
	}
	return &Semantic{
		name:      fmt.Sprintf("%v(%v)", outer.name, inner.name),
		cost:      outer.cost + inner.cost,
		minParams: inner.minParams,
		maxParams: inner.maxParams,
	}, nil
}
