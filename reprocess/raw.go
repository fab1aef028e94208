package reprocess

import (
	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
)

// rawDoubleQuotedLiteral dispatches Raw_double_quoted_literal into
// RawStringLiteral, RawByteStringLiteral or RawCStringLiteral. Raw literals
// never process escapes, so unlike doubleQuotedLiteral there is no
// component decoding here — RAW_CONTENT's characters are the represented
// value, verbatim. Dispatch again reads the leading character(s): a raw
// string starts with 'r', a raw byte string with 'b' ("br"), a raw C
// string with 'c' ("cr") — the same trick as doubleQuotedLiteral, and for
// the same reason (the inner raw_string/raw_bytestring/raw_cstring name is
// overwritten by the time this match is seen).
func rawDoubleQuotedLiteral(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	lead := m.Runes(s)[0]
	content, ok := m.FirstChild("RAW_CONTENT")
	if !ok {
		return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "no raw content matched")
	}
	runes := content.Runes(s)
	suffix := suffixOf(m, s)
	if suffix == "_" {
		return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "suffix _ is reserved")
	}

	switch lead {
	case 'b':
		return rawByteString(m, runes, suffix)
	case 'c':
		return rawCString(m, runes, suffix)
	default:
		return rawString(m, runes, suffix)
	}
}

func rawString(m peg.Match, runes []rune, suffix string) (token.Token, *RejectionReason) {
	for _, r := range runes {
		if r == '\r' {
			return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "bare carriage return in raw string content")
		}
	}
	return token.Token{Kind: token.RawStringLiteral, RepresentedString: string(runes), Suffix: suffix}, nil
}

func rawByteString(m peg.Match, runes []rune, suffix string) (token.Token, *RejectionReason) {
	out := make([]byte, 0, len(runes))
	for _, r := range runes {
		if r == '\r' {
			return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "bare carriage return in raw byte string content")
		}
		if r > 0x7F {
			return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "non-ASCII character in raw byte string content")
		}
		out = append(out, byte(r))
	}
	return token.Token{Kind: token.RawByteStringLiteral, RepresentedBytes: out, Suffix: suffix}, nil
}

func rawCString(m peg.Match, runes []rune, suffix string) (token.Token, *RejectionReason) {
	var out []byte
	for _, r := range runes {
		if r == 0 {
			return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "NUL byte in raw C string content")
		}
		if r == '\r' {
			return token.Token{}, lexFail(m.Start, "Raw_double_quoted_literal", "bare carriage return in raw C string content")
		}
		out = append(out, []byte(string(r))...)
	}
	return token.Token{Kind: token.RawCStringLiteral, RepresentedBytes: out, Suffix: suffix}, nil
}
