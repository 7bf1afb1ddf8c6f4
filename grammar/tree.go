package grammar

import (
	"fmt"
	"strings"
)

// A Tree is a (possibly partial) derivation reconstructed from a path's
// rule chain. Frontier nonterminals a path never expanded stay as
// childless nonterminal leaves.
type Tree struct {
	// Name is the nonterminal name; empty for terminal leaves.
	Name string

	// Terminal is the terminal string of a leaf; empty for nonterminals.
	Terminal string

	Children []*Tree
}

func (t *Tree) isTerminal() bool {
	return t.Name == ""
}

func (t *Tree) clone() *Tree {
	c := &Tree{
		Name:     t.Name,
		Terminal: t.Terminal,
	}
	for _, child := range t.Children {
		c.Children = append(c.Children, child.clone())
	}
	return c
}

func (t *Tree) equal(o *Tree) bool {
	if t.Name != o.Name || t.Terminal != o.Terminal || len(t.Children) != len(o.Children) {
		return false
	}
	for i, child := range t.Children {
		if !child.equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree on one line, s-expression style, for
// deduplication keys and terse diagnostics.
func (t *Tree) String() string {
	if t.isTerminal() {
		return fmt.Sprintf("%q", t.Terminal)
	}
	if len(t.Children) == 0 {
		return t.Name
	}
	parts := make([]string, 0, len(t.Children)+1)
	parts = append(parts, t.Name)
	for _, child := range t.Children {
		parts = append(parts, child.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Format renders the tree indented, one node per line.
func (t *Tree) Format() string {
	var b strings.Builder
	t.format(&b, 0)
	return b.String()
}

func (t *Tree) format(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
	if t.isTerminal() {
		fmt.Fprintf(b, "%q\n", t.Terminal)
		return
	}
	fmt.Fprintf(b, "%v\n", t.Name)
	for _, child := range t.Children {
		child.format(b, depth+1)
	}
}

// buildTree replays a path's rule chain as the leftmost derivation it
// recorded and returns the root tree.
func buildTree(root *Symbol, chain *ruleChain) *Tree {
	tree := &Tree{Name: root.name}
	// frontier mirrors enumeration order: the top node expands next,
	// right siblings of binary rules wait below it.
	frontier := []*Tree{tree}
	for _, r := range chain.slice() {
		node := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if r.kind == RuleKindTerminal {
			node.Children = []*Tree{{Terminal: r.terminal}}
			continue
		}
		for _, sym := range r.rhs {
			node.Children = append(node.Children, &Tree{Name: sym.name})
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			frontier = append(frontier, node.Children[i])
		}
	}
	return tree
}

// diffTrim prunes the subtrees two witnessing trees agree on, walking
// from the rightmost leaves upward, and returns the minimal differing
// pair. Both inputs are left intact.
func diffTrim(a, b *Tree) (*Tree, *Tree) {
	ta := a.clone()
	tb := b.clone()
	trimCommon(ta, tb)
	return ta, tb
}

// trimCommon drops trailing child pairs that are identical subtrees, then
// recurses into the rightmost remaining pair when both sides still agree
// on its root symbol.
func trimCommon(a, b *Tree) {
	for len(a.Children) > 0 && len(b.Children) > 0 {
		la := a.Children[len(a.Children)-1]
		lb := b.Children[len(b.Children)-1]
		if !la.equal(lb) {
			if la.Name != "" && la.Name == lb.Name {
				trimCommon(la, lb)
			}
			return
		}
		a.Children = a.Children[:len(a.Children)-1]
		b.Children = b.Children[:len(b.Children)-1]
	}
}
