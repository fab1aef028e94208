package grammar

import "github.com/lukeod/rustlex/peg"

// punctuationMarks are the single-character punctuation tokens. Gluing
// adjacent marks into multi-character operators (e.g. "::", "->", "..") is
// tree-building's job, not the lexer's — out of scope here, so every mark
// is exactly one character.
const punctuationMarks = ";,.(){}[]@#~?:$=!<>-&|+*/^%"

func punctuationRules() map[string]peg.Expr {
	alts := make([]peg.Expr, 0, len(punctuationMarks))
	for _, c := range punctuationMarks {
		alts = append(alts, peg.Lit(string(c)))
	}
	return map[string]peg.Expr{
		"Punctuation": peg.Alt(alts...),
	}
}
