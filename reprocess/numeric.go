package reprocess

import (
	"strings"

	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
)

func suffixOf(m peg.Match, s *charstream.Stream) string {
	if c, ok := m.FirstChild("SUFFIX"); ok {
		return string(c.Runes(s))
	}
	// SUFFIX_NO_E wraps its own SUFFIX child one level down.
	if c, ok := m.FirstChild("SUFFIX_NO_E"); ok {
		if inner, ok := c.FirstChild("SUFFIX"); ok {
			return string(inner.Runes(s))
		}
	}
	return ""
}

func integerLiteral(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	var base token.Base
	var digitsMatch peg.Match
	var found bool
	for name, b := range map[string]token.Base{
		"IntHexDigits": token.Hex,
		"IntOctDigits": token.Oct,
		"IntBinDigits": token.Bin,
		"IntDecDigits": token.Dec,
	} {
		if c, ok := m.FirstChild(name); ok {
			base, digitsMatch, found = b, c, true
			break
		}
	}
	if !found {
		return token.Token{}, lexFail(m.Start, "Integer_literal", "no digit run matched")
	}
	digits := string(digitsMatch.Runes(s))
	suffix := suffixOf(m, s)
	if suffix == "_" {
		return token.Token{}, lexFail(m.Start, "Integer_literal", "suffix _ is reserved")
	}

	if allUnderscores(digits) {
		return token.Token{}, lexFail(m.Start, "Integer_literal", "digits consist entirely of _")
	}
	switch base {
	case token.Bin:
		if !digitsOnly(digits, "01_") {
			return token.Token{}, lexFail(m.Start, "Integer_literal", "binary digits outside 0/1/_")
		}
	case token.Oct:
		if !digitsOnly(digits, "01234567_") {
			return token.Token{}, lexFail(m.Start, "Integer_literal", "octal digits outside 0-7/_")
		}
	}

	return token.Token{
		Kind:    token.IntegerLiteral,
		IntBase: base,
		Digits:  digits,
		Suffix:  suffix,
	}, nil
}

func allUnderscores(s string) bool {
	for _, c := range s {
		if c != '_' {
			return false
		}
	}
	return true
}

func digitsOnly(s, alphabet string) bool {
	for _, c := range s {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}

func floatLiteral(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	body := string(m.Runes(s))
	suffix := suffixOf(m, s)
	if suffix == "_" {
		return token.Token{}, lexFail(m.Start, "Float_literal", "suffix _ is reserved")
	}
	body = strings.TrimSuffix(body, suffix)
	return token.Token{
		Kind:      token.FloatLiteral,
		FloatBody: body,
		Suffix:    suffix,
	}, nil
}
