package reprocess

import (
	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
)

// singleQuotedLiteral dispatches Single_quoted_literal into CharacterLiteral
// or ByteLiteral. The optional "b" prefix is matched by an Optional inside
// the grammar's Sequence and so leaves no named child behind; the only way
// to tell the two apart is to look at the first matched character directly.
func singleQuotedLiteral(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	runes := m.Runes(s)
	isByte := runes[0] == 'b'

	comp, ok := decodeComponent(mustChild(m, "LITERAL_COMPONENT"), s)
	if !ok {
		return token.Token{}, lexFail(m.Start, "Single_quoted_literal", "malformed literal component")
	}
	suffix := suffixOf(m, s)
	if suffix == "_" {
		return token.Token{}, lexFail(m.Start, "Single_quoted_literal", "suffix _ is reserved")
	}

	if isByte {
		if comp.kind == unicodeEscape || !comp.hasByte {
			return token.Token{}, lexFail(m.Start, "Single_quoted_literal", "byte literal component has no represented byte")
		}
		return token.Token{Kind: token.ByteLiteral, RepresentedByte: comp.byteVal, Suffix: suffix}, nil
	}
	if !comp.hasChar {
		return token.Token{}, lexFail(m.Start, "Single_quoted_literal", "character literal component has no represented character")
	}
	if comp.kind == nonEscape && (comp.char == '\n' || comp.char == '\r' || comp.char == '\t') {
		return token.Token{}, lexFail(m.Start, "Single_quoted_literal", "unescaped control character in character literal")
	}
	return token.Token{Kind: token.CharacterLiteral, RepresentedCharacter: comp.char, Suffix: suffix}, nil
}

// mustChild returns the first named child of the given name, or a zero
// Match if none exists — callers treat the zero Match's failure to decode
// as a lex failure rather than panicking, since an absent component means
// the grammar and reprocessor have drifted out of sync, not that the user
// wrote something invalid.
func mustChild(m peg.Match, name string) peg.Match {
	c, _ := m.FirstChild(name)
	return c
}

// doubleQuotedLiteral dispatches Double_quoted_literal into StringLiteral,
// ByteStringLiteral or CStringLiteral. As with Single_quoted_literal, the
// winning alternative's own name (dq_string/dq_bytestring/dq_cstring) is
// overwritten by the time evaluation reaches this match, so dispatch reads
// the leading character instead: a plain string starts with '"', a byte
// string with 'b', a C string with 'c'.
func doubleQuotedLiteral(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	lead := m.Runes(s)[0]
	comps, ok := decodeComponents(m, s)
	if !ok {
		return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "malformed literal component")
	}
	suffix := suffixOf(m, s)
	if suffix == "_" {
		return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "suffix _ is reserved")
	}

	switch lead {
	case 'b':
		return byteStringFromComponents(m, comps, suffix)
	case 'c':
		return cStringFromComponents(m, comps, suffix)
	default:
		return stringFromComponents(m, comps, suffix)
	}
}

func stringFromComponents(m peg.Match, comps []component, suffix string) (token.Token, *RejectionReason) {
	var sb []rune
	for _, c := range comps {
		if c.kind == stringContinuation {
			continue
		}
		if !c.hasChar {
			return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "string component has no represented character")
		}
		if c.kind == nonEscape && c.char == '\r' {
			return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "bare carriage return in string content")
		}
		sb = append(sb, c.char)
	}
	return token.Token{Kind: token.StringLiteral, RepresentedString: string(sb), Suffix: suffix}, nil
}

func byteStringFromComponents(m peg.Match, comps []component, suffix string) (token.Token, *RejectionReason) {
	var out []byte
	for _, c := range comps {
		if c.kind == stringContinuation {
			continue
		}
		if c.kind == unicodeEscape || !c.hasByte {
			return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "byte string component has no represented byte")
		}
		if c.kind == nonEscape && c.byteVal == '\r' {
			return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "bare carriage return in byte string content")
		}
		out = append(out, c.byteVal)
	}
	return token.Token{Kind: token.ByteStringLiteral, RepresentedBytes: out, Suffix: suffix}, nil
}

// cStringFromComponents builds a C string's byte content: characters
// contribute their UTF-8 encoding, hex escapes contribute their raw byte
// value directly (so c"\xFF" is the single byte 0xFF, not invalid UTF-8
// rejected outright) — a NUL byte is never permitted, from any source.
func cStringFromComponents(m peg.Match, comps []component, suffix string) (token.Token, *RejectionReason) {
	var out []byte
	for _, c := range comps {
		switch c.kind {
		case stringContinuation:
			continue
		case hexEscape:
			if c.byteVal == 0 {
				return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "NUL byte in C string content")
			}
			out = append(out, c.byteVal)
		default:
			if !c.hasChar {
				return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "C string component has no represented character")
			}
			if c.char == 0 {
				return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "NUL byte in C string content")
			}
			if c.kind == nonEscape && c.char == '\r' {
				return token.Token{}, lexFail(m.Start, "Double_quoted_literal", "bare carriage return in C string content")
			}
			out = append(out, []byte(string(c.char))...)
		}
	}
	return token.Token{Kind: token.CStringLiteral, RepresentedBytes: out, Suffix: suffix}, nil
}
