// Package grammar supplies the compiled rule tables the PEG evaluator
// (package peg) runs against: the shared sub-grammars (identifiers,
// numeric literals, escapes, comments, punctuation, frontmatter fences)
// and, per edition, the prioritised list of top-level token-kind
// nonterminals to try.
package grammar

import "github.com/lukeod/rustlex/peg"

// Grammar is a compiled, edition-specific rule table. It implements
// peg.Lookup so an Evaluator can be built directly over it.
type Grammar struct {
	edition Edition
	rules   map[string]peg.Expr
}

// Edition reports which edition this Grammar was built for.
func (g *Grammar) Edition() Edition { return g.edition }

// Resolve implements peg.Lookup.
func (g *Grammar) Resolve(name string) (peg.Expr, bool) {
	e, ok := g.rules[name]
	return e, ok
}

// TopLevel returns the ordered list of token-kind nonterminal names the
// tokeniser driver should try, for this Grammar's edition.
func (g *Grammar) TopLevel() []string {
	return TopLevelNonterminals(g.edition)
}

// Build compiles the full rule table for ed.
func Build(ed Edition) *Grammar {
	rules := make(map[string]peg.Expr)
	merge := func(src map[string]peg.Expr) {
		for k, v := range src {
			rules[k] = v
		}
	}
	merge(identRules())
	merge(numericRules())
	merge(escapeRules())
	merge(commentRules())
	merge(punctuationRules())
	merge(frontmatterRules())
	merge(stringRules(ed))

	g := &Grammar{edition: ed, rules: rules}
	validate(g)
	return g
}

// validate panics if any top-level name, or any Nonterminal referenced
// transitively from one, has no definition. This runs once per Grammar
// at construction time rather than being checked lazily by the
// evaluator, so a missing rule is a load-time error, not a runtime
// lex failure indistinguishable from a genuine RejectionReason.
func validate(g *Grammar) {
	seen := make(map[string]bool)
	var walk func(e peg.Expr)
	walk = func(e peg.Expr) {
		switch n := e.(type) {
		case peg.Nonterminal:
			if seen[n.Name] {
				return
			}
			seen[n.Name] = true
			def, ok := g.rules[n.Name]
			if !ok {
				panic("grammar: undefined nonterminal " + n.Name)
			}
			walk(def)
		case peg.Sequence:
			for _, e := range n.Elems {
				walk(e)
			}
		case peg.Choice:
			for _, e := range n.Elems {
				walk(e)
			}
		case peg.Optional:
			walk(n.E)
		case peg.ZeroOrMore:
			walk(n.E)
		case peg.OneOrMore:
			walk(n.E)
		case peg.Bounded:
			walk(n.E)
		case peg.NegLookahead:
			walk(n.E)
		case peg.Mark:
			walk(n.E)
		case peg.Check:
			walk(n.E)
		}
	}
	for _, name := range g.TopLevel() {
		walk(peg.Rule(name))
	}
	walk(peg.Rule(FrontmatterFenceRule))
}
