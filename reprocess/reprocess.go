// Package reprocess implements the "R" component: given a
// successful PEG match for one of the top-level token-kind nonterminals, it
// either rejects the match (returning a *RejectionReason) or turns it into
// a fully attributed token.Token — decoding escapes, applying NFC to
// identifiers, validating digit alphabets, and classifying comment style.
//
// A PEG match only establishes shape; every semantic reprocessing rule
// belongs here, not in package grammar.
package reprocess

import (
	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
)

// alwaysReject names the top-level nonterminals that, by construction,
// never produce a token: a successful match of one of these is itself the
// failure signal (an unterminated comment, a reserved syntax shape staked
// out for a future edition, or the unterminated-literal catch-all).
var alwaysReject = map[string]string{
	"Unterminated_block_comment": "unterminated block comment",
	"Unterminated_literal":       "unterminated literal",
	"Reserved_float":             "reserved float syntax (trailing '.' after exponent/fraction)",
	"Reserved_prefix_2015":       "reserved identifier prefix",
	"Reserved_prefix_2021":       "reserved identifier prefix",
	"Reserved_guard_2024":        "reserved reservation guard",
}

// Reprocess turns a successful match of the named top-level nonterminal
// into a token, or rejects it. kindName must be one of the names returned
// by (*grammar.Grammar).TopLevel() for the edition m was matched under.
func Reprocess(kindName string, m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	if detail, ok := alwaysReject[kindName]; ok {
		return token.Token{}, lexFail(s.ByteOffsetAt(m.Start), kindName, detail)
	}

	var tok token.Token
	var rej *RejectionReason
	switch kindName {
	case "Whitespace":
		tok = token.Token{Kind: token.Whitespace}
	case "Line_comment":
		tok, rej = lineComment(m, s)
	case "Block_comment":
		tok, rej = blockComment(m, s)
	case "Punctuation":
		tok = token.Token{Kind: token.Punctuation, Mark: m.Runes(s)[0]}
	case "Identifier":
		tok, rej = identifier(m, s)
	case "Raw_identifier":
		tok, rej = rawIdentifier(m, s)
	case "Lifetime_or_label":
		tok, rej = lifetimeOrLabel(m, s)
	case "Raw_lifetime_or_label":
		tok, rej = rawLifetimeOrLabel(m, s)
	case "Single_quoted_literal":
		tok, rej = singleQuotedLiteral(m, s)
	case "Double_quoted_literal":
		tok, rej = doubleQuotedLiteral(m, s)
	case "Raw_double_quoted_literal":
		tok, rej = rawDoubleQuotedLiteral(m, s)
	case "Integer_literal":
		tok, rej = integerLiteral(m, s)
	case "Float_literal":
		tok, rej = floatLiteral(m, s)
	default:
		return token.Token{}, lexFail(s.ByteOffsetAt(m.Start), kindName, "no reprocessing rule registered for this nonterminal")
	}
	if rej != nil {
		// The per-kind functions report the match's character offset;
		// RejectionReason.Offset is a byte offset.
		rej.Offset = s.ByteOffsetAt(m.Start)
		return token.Token{}, rej
	}

	tok.CharOffset = m.Start
	tok.CharLen = m.CharLen
	tok.ByteOffset = s.ByteOffsetAt(m.Start)
	tok.ByteLen = m.ByteLen
	return tok, nil
}
