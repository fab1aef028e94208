// Package peg implements a Parsing Expression Grammar evaluator specialised
// to the needs of this module: prioritised choice, ordered repetition
// without backtracking past a successful alternative, negative lookahead,
// and a back-reference extension (Mark/Check) used for raw-string
// hash-balancing and frontmatter fence-balancing. It has no notion of
// tokens or editions; those live in package grammar.
package peg

// ClassKind names one of the built-in terminal character classes.
type ClassKind int

const (
	ClassAny ClassKind = iota
	ClassDoublequote
	ClassBackslash
	ClassLF
	ClassCR
	ClassTab
	ClassPatternWhiteSpace
	ClassXIDStart
	ClassXIDContinue
	ClassEndOfInput
	ClassEmpty
)

// Expr is a grammar expression node. Exactly one of the concrete types
// below is ever constructed; Expr is a closed sum type over them, enforced
// by the unexported exprNode method.
type Expr interface {
	exprNode()
}

// Literal matches a fixed string of characters, case-sensitively.
type Literal struct{ S string }

// CharRange matches a single character in the inclusive range [Lo, Hi].
type CharRange struct{ Lo, Hi rune }

// Class matches a single character (or end-of-input, for ClassEndOfInput;
// or nothing, for ClassEmpty) belonging to a built-in predicate.
type Class struct{ Kind ClassKind }

// Nonterminal references another grammar rule by name. Its match, named
// after the rule, becomes a participating child match in the enclosing
// elaboration (see Match for the case where an enclosing nonterminal takes
// it over instead).
type Nonterminal struct{ Name string }

// Sequence matches Elems in order; it fails as soon as one element fails.
type Sequence struct{ Elems []Expr }

// Choice tries Elems in order and commits to the first success.
type Choice struct{ Elems []Expr }

// Optional matches E if possible, otherwise matches nothing (e?).
type Optional struct{ E Expr }

// ZeroOrMore greedily matches E as many times as possible, never
// backtracking once committed (e*).
type ZeroOrMore struct{ E Expr }

// OneOrMore is E ~ E* (e+).
type OneOrMore struct{ E Expr }

// Bounded greedily matches E up to N times (e{0,n}).
type Bounded struct {
	E Expr
	N int
}

// NegLookahead succeeds, consuming nothing, iff E would fail here (!e).
type NegLookahead struct{ E Expr }

// Mark evaluates E and, on success, binds ID to the consumed characters for
// the remainder of the enclosing token-kind attempt. A later successful Mark
// with the same ID replaces the binding for good; a binding made inside a
// choice alternative, optional or repetition step that then fails is
// discarded.
type Mark struct {
	ID string
	E  Expr
}

// Check evaluates E and succeeds only when E's consumed characters equal
// the current binding of ID, and that binding exists.
type Check struct {
	ID string
	E  Expr
}

func (Literal) exprNode()      {}
func (CharRange) exprNode()    {}
func (Class) exprNode()        {}
func (Nonterminal) exprNode()  {}
func (Sequence) exprNode()     {}
func (Choice) exprNode()       {}
func (Optional) exprNode()     {}
func (ZeroOrMore) exprNode()   {}
func (OneOrMore) exprNode()    {}
func (Bounded) exprNode()      {}
func (NegLookahead) exprNode() {}
func (Mark) exprNode()         {}
func (Check) exprNode()        {}

// Seq is a convenience constructor for Sequence.
func Seq(elems ...Expr) Expr { return Sequence{Elems: elems} }

// Alt is a convenience constructor for Choice.
func Alt(elems ...Expr) Expr { return Choice{Elems: elems} }

// Lit is a convenience constructor for Literal.
func Lit(s string) Expr { return Literal{S: s} }

// Rng is a convenience constructor for CharRange.
func Rng(lo, hi rune) Expr { return CharRange{Lo: lo, Hi: hi} }

// Rule is a convenience constructor for Nonterminal.
func Rule(name string) Expr { return Nonterminal{Name: name} }

// Not is a convenience constructor for NegLookahead.
func Not(e Expr) Expr { return NegLookahead{E: e} }

// Star is a convenience constructor for ZeroOrMore.
func Star(e Expr) Expr { return ZeroOrMore{E: e} }

// Plus is a convenience constructor for OneOrMore.
func Plus(e Expr) Expr { return OneOrMore{E: e} }

// Opt is a convenience constructor for Optional.
func Opt(e Expr) Expr { return Optional{E: e} }

// UpTo is a convenience constructor for Bounded.
func UpTo(e Expr, n int) Expr { return Bounded{E: e, N: n} }
