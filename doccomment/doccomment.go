// Package doccomment implements the "D" component: a post
// pass over the tokeniser's output that lowers doc comments into the token
// sequence an attribute macro would already expect, so downstream
// consumers never need to special-case LineComment/BlockComment style.
package doccomment

import "github.com/lukeod/rustlex/token"

// Lower walks toks and replaces every inner-doc or outer-doc
// LineComment/BlockComment with the fixed token sequence an equivalent
// attribute would lower to:
//
//	Punctuation(#) Whitespace(" ") [Punctuation(!) for inner-doc only]
//	Punctuation([) Identifier("doc") Punctuation(=) Whitespace(" ")
//	RawStringLiteral(body) Punctuation(])
//
// Non-doc comments and every other token are left untouched.
func Lower(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if !isDocComment(tok) {
			out = append(out, tok)
			continue
		}
		out = append(out, lowered(tok)...)
	}
	return out
}

func isDocComment(tok token.Token) bool {
	if tok.Kind != token.LineComment && tok.Kind != token.BlockComment {
		return false
	}
	return tok.Style == token.InnerDoc || tok.Style == token.OuterDoc
}

func lowered(tok token.Token) []token.Token {
	at := tok.CharOffset
	seq := []token.Token{
		punct('#', at),
		whitespace(at),
	}
	if tok.Style == token.InnerDoc {
		seq = append(seq, punct('!', at))
	}
	seq = append(seq,
		punct('[', at),
		ident("doc", at),
		punct('=', at),
		whitespace(at),
		rawString(tok.Body, at),
		punct(']', at),
	)
	return seq
}

func punct(mark rune, at int) token.Token {
	return token.Token{Kind: token.Punctuation, Mark: mark, CharOffset: at}
}

func whitespace(at int) token.Token {
	return token.Token{Kind: token.Whitespace, CharOffset: at}
}

func ident(name string, at int) token.Token {
	return token.Token{Kind: token.Identifier, RepresentedIdent: name, CharOffset: at}
}

func rawString(body string, at int) token.Token {
	return token.Token{Kind: token.RawStringLiteral, RepresentedString: body, Suffix: "", CharOffset: at}
}
