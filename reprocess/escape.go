package reprocess

import (
	"strconv"
	"strings"

	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
)

type componentKind int

const (
	nonEscape componentKind = iota
	simpleEscape
	hexEscape
	unicodeEscape
	stringContinuation
)

// component is one decoded LITERAL_COMPONENT from the escape sub-grammar:
// a non-escape, a simple/hex/Unicode escape, or a
// string-continuation. hasChar/hasByte record whether a represented
// character/byte exists for this component — a Unicode escape past
// U+007F has a character but no byte, a Unicode escape with no valid
// scalar value has neither, and so on.
type component struct {
	kind    componentKind
	hasChar bool
	char    rune
	hasByte bool
	byteVal byte
}

var simpleEscapeTable = map[rune]rune{
	'0':  0,
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
}

// decodeComponent works out which alternative of LITERAL_COMPONENT matched
// and computes its represented character/byte. The alternative's own name
// does not survive evaluation (the LITERAL_COMPONENT nonterminal takes
// over its match), so the alternative is read off the matched characters:
// no leading backslash is a non-escape, backslash-LF a string-continuation,
// any other two-character match a simple escape, "\x" a hex escape and
// "\u" a Unicode escape. ok is false only if m does not look like a
// LITERAL_COMPONENT match at all (a grammar/reprocessor mismatch, not a
// user-facing rejection).
func decodeComponent(m peg.Match, s *charstream.Stream) (component, bool) {
	text := m.Runes(s)
	if len(text) == 0 || (text[0] == '\\' && len(text) < 2) {
		return component{}, false
	}
	if text[0] != '\\' {
		r := text[0]
		comp := component{kind: nonEscape, hasChar: true, char: r}
		if r <= 0x7F {
			comp.hasByte = true
			comp.byteVal = byte(r)
		}
		return comp, true
	}
	if len(text) == 2 && text[1] != '\n' {
		r, ok := simpleEscapeTable[text[1]]
		if !ok {
			return component{}, false
		}
		comp := component{kind: simpleEscape, hasChar: true, char: r, hasByte: true, byteVal: byte(r)}
		return comp, true
	}
	if text[1] == 'x' {
		v, err := strconv.ParseUint(string(text[2:4]), 16, 8)
		if err != nil {
			return component{}, false
		}
		comp := component{kind: hexEscape, hasByte: true, byteVal: byte(v)}
		if v <= 0x7F {
			comp.hasChar = true
			comp.char = rune(v)
		}
		return comp, true
	}
	if text[1] == 'u' {
		inner := strings.TrimSuffix(strings.TrimPrefix(string(text), `\u{`), "}")
		inner = strings.ReplaceAll(inner, "_", "")
		comp := component{kind: unicodeEscape}
		if inner == "" {
			return comp, true
		}
		v, err := strconv.ParseUint(inner, 16, 32)
		if err != nil {
			return comp, true
		}
		if isValidScalarValue(uint32(v)) {
			comp.hasChar = true
			comp.char = rune(v)
		}
		return comp, true
	}
	if text[1] == '\n' {
		return component{kind: stringContinuation}, true
	}
	return component{}, false
}

// isValidScalarValue reports whether v is a Unicode scalar value: in
// 0..=0x10FFFF and not a surrogate.
func isValidScalarValue(v uint32) bool {
	if v > 0x10FFFF {
		return false
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return false
	}
	return true
}

// decodeComponents decodes every LITERAL_COMPONENT child of m, in order.
func decodeComponents(m peg.Match, s *charstream.Stream) ([]component, bool) {
	children := m.Child("LITERAL_COMPONENT")
	out := make([]component, 0, len(children))
	for _, c := range children {
		comp, ok := decodeComponent(c, s)
		if !ok {
			return nil, false
		}
		out = append(out, comp)
	}
	return out, true
}
