package grammar

import "github.com/lukeod/rustlex/peg"

// commentRules defines Whitespace and both comment token kinds. Comment
// and whitespace grammar is edition-independent.
func commentRules() map[string]peg.Expr {
	return map[string]peg.Expr{
		"Whitespace": peg.Plus(peg.Class{Kind: peg.ClassPatternWhiteSpace}),

		"Line_comment": peg.Seq(
			peg.Lit("//"),
			peg.Star(peg.Seq(peg.Not(peg.Class{Kind: peg.ClassLF}), peg.Class{Kind: peg.ClassAny})),
		),

		// A block comment's content may itself contain a nested, balanced
		// block comment; BlockCommentBody recurses into Block_comment so
		// that a "*/" belonging to an inner comment does not close the
		// outer one.
		"BlockCommentBody": peg.Star(peg.Alt(
			peg.Rule("Block_comment"),
			peg.Seq(
				peg.Not(peg.Lit("*/")),
				peg.Not(peg.Lit("/*")),
				peg.Class{Kind: peg.ClassAny},
			),
		)),
		"Block_comment": peg.Seq(
			peg.Lit("/*"),
			peg.Rule("BlockCommentBody"),
			peg.Lit("*/"),
		),
		// If any comment in a nested chain is left unclosed, Block_comment
		// fails outright (PEG does not backtrack into trying a shorter
		// body), and control falls here: consume what a balanced comment
		// would have consumed, with no closing "*/" required, and always
		// reject. This is what makes "/* xyz /*/" a lex failure rather
		// than a comment that happens to swallow a stray "*/" oddly.
		"Unterminated_block_comment": peg.Seq(
			peg.Lit("/*"),
			peg.Rule("BlockCommentBody"),
		),
	}
}
