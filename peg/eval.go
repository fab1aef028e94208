package peg

import (
	"github.com/lukeod/rustlex/charstream"
	rlunicode "github.com/lukeod/rustlex/unicode"
)

// Lookup resolves a nonterminal name to its defining expression. Package
// grammar implements this over its compiled rule tables.
type Lookup interface {
	Resolve(name string) (Expr, bool)
}

// Match is a successful PEG match: how much was consumed, and the ordered
// list of participating named-nonterminal child matches (spec §3's "Match
// record"). Only Nonterminal results carry a non-empty Name; Children is
// always the nonterminal-level matches found directly inside this match,
// not a fully flattened tree — each child Match has its own Children for
// anything nested further. One exception: when a nonterminal's definition
// is itself a single nonterminal or a choice among nonterminals, the inner
// match is not kept as a child; the outer nonterminal takes it over,
// replacing its Name and keeping its Children.
type Match struct {
	Start   int
	CharLen int
	ByteLen int
	Name    string
	Children []Match
}

// End returns the character offset immediately after the match.
func (m Match) End() int { return m.Start + m.CharLen }

// Runes returns the characters this match consumed.
func (m Match) Runes(s *charstream.Stream) []rune {
	return s.Slice(m.Start, m.Start+m.CharLen)
}

// Child returns the named children matching name, in the order they
// occurred, or "did not participate" (empty slice).
func (m Match) Child(name string) []Match {
	var out []Match
	for _, c := range m.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first named child matching name, if any.
func (m Match) FirstChild(name string) (Match, bool) {
	for _, c := range m.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Match{}, false
}

// Evaluator runs grammar expressions against a character stream. One
// Evaluator is created per top-level token-kind attempt so that its mark
// context is scoped correctly (spec §3: "a Check consults the context of
// the enclosing token-kind match only").
type Evaluator struct {
	grammar Lookup
	marks   *markContext
}

// NewEvaluator creates an Evaluator bound to grammar, with a fresh mark
// context.
func NewEvaluator(grammar Lookup) *Evaluator {
	return &Evaluator{grammar: grammar, marks: newMarkContext()}
}

// Eval attempts to match e at the stream's current cursor position. On
// success it advances the cursor past the match and returns (Match, true).
// On failure the cursor is left unchanged and it returns (Match{}, false).
func (ev *Evaluator) Eval(s *charstream.Stream, e Expr) (Match, bool) {
	start := s.Pos()
	m, ok := ev.eval(s, e)
	if !ok {
		return Match{}, false
	}
	byteLen := s.ByteOffsetAt(start+m.CharLen) - s.ByteOffsetAt(start)
	m.Start = start
	m.ByteLen = byteLen
	return m, true
}

func (ev *Evaluator) eval(s *charstream.Stream, e Expr) (Match, bool) {
	switch n := e.(type) {
	case Literal:
		return ev.evalLiteral(s, n)
	case CharRange:
		return ev.evalCharRange(s, n)
	case Class:
		return ev.evalClass(s, n)
	case Nonterminal:
		return ev.evalNonterminal(s, n)
	case Sequence:
		return ev.evalSequence(s, n)
	case Choice:
		return ev.evalChoice(s, n)
	case Optional:
		return ev.evalOptional(s, n)
	case ZeroOrMore:
		return ev.evalZeroOrMore(s, n)
	case OneOrMore:
		return ev.evalOneOrMore(s, n)
	case Bounded:
		return ev.evalBounded(s, n)
	case NegLookahead:
		return ev.evalNegLookahead(s, n)
	case Mark:
		return ev.evalMark(s, n)
	case Check:
		return ev.evalCheck(s, n)
	default:
		panic("peg: unknown expression type")
	}
}

func (ev *Evaluator) evalLiteral(s *charstream.Stream, n Literal) (Match, bool) {
	want := []rune(n.S)
	for i, w := range want {
		c, ok := s.Peek(i)
		if !ok || c != w {
			return Match{}, false
		}
	}
	s.Advance(len(want))
	return Match{CharLen: len(want)}, true
}

func (ev *Evaluator) evalCharRange(s *charstream.Stream, n CharRange) (Match, bool) {
	c, ok := s.Peek(0)
	if !ok || c < n.Lo || c > n.Hi {
		return Match{}, false
	}
	s.Advance(1)
	return Match{CharLen: 1}, true
}

func (ev *Evaluator) evalClass(s *charstream.Stream, n Class) (Match, bool) {
	switch n.Kind {
	case ClassEmpty:
		return Match{}, true
	case ClassEndOfInput:
		if s.AtEnd() {
			return Match{}, true
		}
		return Match{}, false
	}
	c, ok := s.Peek(0)
	if !ok {
		return Match{}, false
	}
	if !classMatches(n.Kind, c) {
		return Match{}, false
	}
	s.Advance(1)
	return Match{CharLen: 1}, true
}

func classMatches(kind ClassKind, c rune) bool {
	switch kind {
	case ClassAny:
		return true
	case ClassDoublequote:
		return c == '"'
	case ClassBackslash:
		return c == '\\'
	case ClassLF:
		return c == '\n'
	case ClassCR:
		return c == '\r'
	case ClassTab:
		return c == '\t'
	case ClassPatternWhiteSpace:
		return rlunicode.IsPatternWhiteSpace(c)
	case ClassXIDStart:
		return rlunicode.IsXIDStart(c)
	case ClassXIDContinue:
		return rlunicode.IsXIDContinue(c)
	default:
		return false
	}
}

func (ev *Evaluator) evalNonterminal(s *charstream.Stream, n Nonterminal) (Match, bool) {
	def, ok := ev.grammar.Resolve(n.Name)
	if !ok {
		panic("peg: undefined nonterminal " + n.Name)
	}
	start := s.Pos()
	m, ok := ev.eval(s, def)
	if !ok {
		return Match{}, false
	}
	m.Start = start
	m.Name = n.Name
	return m, true
}

func (ev *Evaluator) evalSequence(s *charstream.Stream, n Sequence) (Match, bool) {
	start := s.Pos()
	total := 0
	var children []Match
	for _, elem := range n.Elems {
		m, ok := ev.eval(s, elem)
		if !ok {
			s.Restore(start)
			return Match{}, false
		}
		total += m.CharLen
		children = appendChildren(children, m)
	}
	return Match{CharLen: total, Children: children}, true
}

func (ev *Evaluator) evalChoice(s *charstream.Stream, n Choice) (Match, bool) {
	start := s.Pos()
	for _, elem := range n.Elems {
		snap := ev.marks.snapshot()
		m, ok := ev.eval(s, elem)
		if ok {
			return m, true
		}
		s.Restore(start)
		ev.marks.restore(snap)
	}
	return Match{}, false
}

func (ev *Evaluator) evalOptional(s *charstream.Stream, n Optional) (Match, bool) {
	start := s.Pos()
	snap := ev.marks.snapshot()
	m, ok := ev.eval(s, n.E)
	if !ok {
		s.Restore(start)
		ev.marks.restore(snap)
		return Match{}, true
	}
	return Match{CharLen: m.CharLen, Children: appendChildren(nil, m)}, true
}

func (ev *Evaluator) evalZeroOrMore(s *charstream.Stream, n ZeroOrMore) (Match, bool) {
	total := 0
	var children []Match
	for {
		start := s.Pos()
		snap := ev.marks.snapshot()
		m, ok := ev.eval(s, n.E)
		if !ok {
			s.Restore(start)
			ev.marks.restore(snap)
			break
		}
		if m.CharLen == 0 {
			// A zero-width match would loop forever; the shipped grammars
			// never hit this (every repeated sub-expression consumes at
			// least one character on success), but stop defensively.
			break
		}
		total += m.CharLen
		children = appendChildren(children, m)
	}
	return Match{CharLen: total, Children: children}, true
}

func (ev *Evaluator) evalOneOrMore(s *charstream.Stream, n OneOrMore) (Match, bool) {
	first, ok := ev.eval(s, n.E)
	if !ok {
		return Match{}, false
	}
	rest, _ := ev.eval(s, ZeroOrMore{E: n.E})
	children := appendChildren(appendChildren(nil, first), rest.Children...)
	return Match{CharLen: first.CharLen + rest.CharLen, Children: children}, true
}

func (ev *Evaluator) evalBounded(s *charstream.Stream, n Bounded) (Match, bool) {
	total := 0
	var children []Match
	for i := 0; i < n.N; i++ {
		start := s.Pos()
		snap := ev.marks.snapshot()
		m, ok := ev.eval(s, n.E)
		if !ok {
			s.Restore(start)
			ev.marks.restore(snap)
			break
		}
		if m.CharLen == 0 {
			break
		}
		total += m.CharLen
		children = appendChildren(children, m)
	}
	return Match{CharLen: total, Children: children}, true
}

func (ev *Evaluator) evalNegLookahead(s *charstream.Stream, n NegLookahead) (Match, bool) {
	start := s.Pos()
	snap := ev.marks.snapshot()
	_, ok := ev.eval(s, n.E)
	s.Restore(start)
	ev.marks.restore(snap)
	if ok {
		return Match{}, false
	}
	return Match{}, true
}

func (ev *Evaluator) evalMark(s *charstream.Stream, n Mark) (Match, bool) {
	start := s.Pos()
	m, ok := ev.eval(s, n.E)
	if !ok {
		return Match{}, false
	}
	ev.marks.set(n.ID, markBinding{start: start, charLen: m.CharLen})
	return m, true
}

func (ev *Evaluator) evalCheck(s *charstream.Stream, n Check) (Match, bool) {
	binding, ok := ev.marks.get(n.ID)
	if !ok {
		return Match{}, false
	}
	start := s.Pos()
	m, ok := ev.eval(s, n.E)
	if !ok {
		return Match{}, false
	}
	if m.CharLen != binding.charLen {
		s.Restore(start)
		return Match{}, false
	}
	if !runesEqual(s, start, binding.start, m.CharLen) {
		s.Restore(start)
		return Match{}, false
	}
	return m, true
}

func runesEqual(s *charstream.Stream, a, b, n int) bool {
	sa := s.Slice(a, a+n)
	sb := s.Slice(b, b+n)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func appendChildren(acc []Match, ms ...Match) []Match {
	for _, m := range ms {
		if m.Name != "" {
			acc = append(acc, m)
		} else {
			acc = append(acc, m.Children...)
		}
	}
	return acc
}
