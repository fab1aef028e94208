package main

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// coarseLexer is a deliberately imprecise second tokeniser, built on the
// teacher's own parsing library rather than the PEG engine it is meant to
// cross-check: a regex-based lexer.SimpleRule definition recognising only
// whitespace, line/block comments, quoted-literal regions, and runs of
// identifier-ish or punctuation-ish characters. It does not balance raw
// string hashes, validate escapes, or distinguish token kinds beyond this
// coarse grouping — that precision is exactly what the fine-grained
// tokeniser exists to add.
var coarseLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
	{Name: "LineComment", Pattern: `//[^\n]*`},
	{Name: "BlockComment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "RawQuoted", Pattern: `[bc]?r#*"([^"]|"(?!#))*"#*`},
	{Name: "DoubleQuoted", Pattern: `[bc]?"(\\.|[^"\\])*"`},
	{Name: "SingleQuoted", Pattern: `b?'(\\.|[^'\\])*'`},
	{Name: "IdentRun", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "NumberRun", Pattern: `[0-9][0-9a-zA-Z_.]*`},
	{Name: "PunctRun", Pattern: `[;,.(){}\[\]@#~?:$=!<>\-&|+*/^%]+`},
})

// coarseToken is one coarse-lexer token reduced to what the extent
// round-trip check needs: a byte offset, a byte length, and the rule name
// that produced it.
type coarseToken struct {
	Name       string
	ByteOffset int
	ByteLen    int
}

var coarseTokenNames = buildCoarseTokenNames()

func buildCoarseTokenNames() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, typ := range coarseLexer.Symbols() {
		names[typ] = name
	}
	return names
}

// lexCoarse runs coarseLexer over input and returns every token up to EOF.
func lexCoarse(input []byte) ([]coarseToken, error) {
	lex, err := coarseLexer.LexBytes("coarse", input)
	if err != nil {
		return nil, err
	}
	var out []coarseToken
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == lexer.EOF {
			break
		}
		out = append(out, coarseToken{
			Name:       coarseTokenNames[tok.Type],
			ByteOffset: tok.Pos.Offset,
			ByteLen:    len(tok.Value),
		})
	}
	return out, nil
}
