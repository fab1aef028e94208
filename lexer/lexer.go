// Package lexer implements the "T" component: the driver
// that loops the PEG evaluator (package peg) over the grammar (package
// grammar) and dispatches each successful match to the reprocessor
// (package reprocess), turning a character sequence into a token stream
// or the first rejection encountered.
package lexer

import (
	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/reprocess"
	"github.com/lukeod/rustlex/token"
)

// Tokenize runs the normal-mode loop over chars: at each position, try
// ed's top-level token-kind nonterminals in priority order, commit to the
// first success, and reprocess it. The loop terminates because every
// successful iteration consumes at least one character — no top-level
// nonterminal in the shipped grammars has a zero-length successful match.
func Tokenize(chars []rune, ed grammar.Edition) ([]token.Token, *reprocess.RejectionReason) {
	g := grammar.Build(ed)
	s := charstream.New(chars)
	var tokens []token.Token
	for !s.AtEnd() {
		tok, rej := step(s, g)
		if rej != nil {
			return nil, rej
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// step attempts every top-level nonterminal, in priority order, at s's
// current position, and reprocesses whichever wins.
func step(s *charstream.Stream, g *grammar.Grammar) (token.Token, *reprocess.RejectionReason) {
	start := s.Pos()
	for _, name := range g.TopLevel() {
		ev := peg.NewEvaluator(g)
		m, ok := ev.Eval(s, peg.Rule(name))
		if ok {
			return reprocess.Reprocess(name, m, s)
		}
		s.Restore(start)
	}
	return token.Token{}, &reprocess.RejectionReason{
		Tag:    reprocess.LexFail,
		Offset: s.ByteOffset(),
		Detail: "no token-kind nonterminal matched here",
	}
}

// FirstNonWhitespaceToken runs one iteration at a time, skipping
// Whitespace and non-doc line/block comments, and returns the first
// substantive token — or ok=false if the input is exhausted or a
// rejection is hit first. Package cleanup uses this to decide whether a
// "#!" prefix is a shebang line or the start of an inner attribute,
// without committing to removing anything.
func FirstNonWhitespaceToken(chars []rune, ed grammar.Edition) (token.Token, bool) {
	g := grammar.Build(ed)
	s := charstream.New(chars)
	for !s.AtEnd() {
		tok, rej := step(s, g)
		if rej != nil {
			return token.Token{}, false
		}
		if tok.Kind == token.Whitespace {
			continue
		}
		if (tok.Kind == token.LineComment || tok.Kind == token.BlockComment) && tok.Style == token.NonDoc {
			continue
		}
		return tok, true
	}
	return token.Token{}, false
}
