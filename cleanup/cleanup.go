// Package cleanup implements the "C" component: the
// pre-tokenising pipeline that turns raw bytes into the cleaned character
// sequence everything downstream operates on. Each step either transforms
// the sequence or rejects outright; a rejection here is fatal to
// tokenisation and is reported the same way a tokenisation failure is.
package cleanup

import (
	"unicode/utf8"

	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/lexer"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/reprocess"
	"github.com/lukeod/rustlex/token"
)

// Mode selects how much of the cleanup pipeline runs.
type Mode int

const (
	ModeNone Mode = iota
	ModeShebang
	ModeShebangAndFrontmatter
)

const byteOrderMark = rune(0xFEFF)

// Clean runs the full pipeline over input for the given edition and mode,
// returning the cleaned character stream or the first rejection
// encountered. Steps run in the fixed order decode, BOM strip, CRLF
// normalisation, shebang removal, frontmatter removal; the first three
// always run, the last two only when mode calls for them.
func Clean(input []byte, ed grammar.Edition, mode Mode) (*charstream.Stream, *reprocess.RejectionReason) {
	chars, rej := decode(input)
	if rej != nil {
		return nil, rej
	}
	chars = stripBOM(chars)
	chars = normalizeCRLF(chars)

	if mode == ModeNone {
		return charstream.New(chars), nil
	}

	chars = removeShebang(chars, ed)

	if mode == ModeShebangAndFrontmatter {
		chars, rej = removeFrontmatter(chars, ed)
		if rej != nil {
			return nil, rej
		}
	}
	return charstream.New(chars), nil
}

// decode interprets input as UTF-8, rejecting with a BadUTF8 tag (offset
// pointing at the first byte of the first ill-formed sequence) if it is
// not well-formed.
func decode(input []byte) ([]rune, *reprocess.RejectionReason) {
	chars := make([]rune, 0, len(input))
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &reprocess.RejectionReason{
				Tag:    reprocess.BadUTF8,
				Offset: i,
				Detail: "ill-formed UTF-8 sequence",
			}
		}
		chars = append(chars, r)
		i += size
	}
	return chars, nil
}

func stripBOM(chars []rune) []rune {
	if len(chars) > 0 && chars[0] == byteOrderMark {
		return chars[1:]
	}
	return chars
}

// normalizeCRLF replaces every maximal non-overlapping CR LF pair with
// LF; an isolated CR (not immediately followed by LF) is preserved. A
// CR CR LF run therefore yields CR LF: the first CR is isolated and
// preserved, the second CR and the LF form the pair that collapses.
func normalizeCRLF(chars []rune) []rune {
	out := make([]rune, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		if chars[i] == '\r' && i+1 < len(chars) && chars[i+1] == '\n' {
			out = append(out, '\n')
			i++
			continue
		}
		out = append(out, chars[i])
	}
	return out
}

// removeShebang strips a leading shebang line. It only looks at a literal
// "#!" prefix; everything else is left untouched.
func removeShebang(chars []rune, ed grammar.Edition) []rune {
	if len(chars) < 2 || chars[0] != '#' || chars[1] != '!' {
		return chars
	}
	tail := chars[2:]
	tok, found := lexer.FirstNonWhitespaceToken(tail, ed)
	if found && tok.Kind == token.Punctuation && tok.Mark == '[' {
		return chars
	}
	for i, c := range chars {
		if c == '\n' {
			return chars[i+1:]
		}
	}
	return nil
}

// removeFrontmatter strips a leading frontmatter block. A successful match
// of the frontmatter grammar removes the consumed prefix; otherwise, a
// conservative reserved-fence check rejects inputs that look like a
// malformed frontmatter block rather than silently tokenising the dashes
// as punctuation.
func removeFrontmatter(chars []rune, ed grammar.Edition) ([]rune, *reprocess.RejectionReason) {
	g := grammar.Build(ed)
	s := charstream.New(chars)
	ev := peg.NewEvaluator(g)
	if m, ok := ev.Eval(s, peg.Rule(grammar.FrontmatterFenceRule)); ok {
		return chars[m.CharLen:], nil
	}
	if looksLikeFrontmatter(chars) {
		return nil, &reprocess.RejectionReason{
			Tag:    reprocess.FrontmatterMalformed,
			Offset: 0,
			Detail: "input begins with a dash fence but is not a well-formed frontmatter block",
		}
	}
	return chars, nil
}

// looksLikeFrontmatter is the conservative reserved pattern: an opening
// line of three or more dashes, which commits the input to being a
// frontmatter block even if the rest of it fails to parse as one.
func looksLikeFrontmatter(chars []rune) bool {
	n := 0
	for n < len(chars) && chars[n] == '-' {
		n++
	}
	return n >= 3
}
