package grammar

import "github.com/lukeod/rustlex/peg"

// identRules are edition-independent: XID_Start/XID_Continue do not vary by
// edition, only which top-level forms are tried and in what order does.
func identRules() map[string]peg.Expr {
	return map[string]peg.Expr{
		"IDENT_START": peg.Alt(peg.Class{Kind: peg.ClassXIDStart}, peg.Lit("_")),
		"IDENT": peg.Seq(
			peg.Rule("IDENT_START"),
			peg.Star(peg.Class{Kind: peg.ClassXIDContinue}),
		),
		"SUFFIX": peg.Rule("IDENT"),
		"SUFFIX_NO_E": peg.Seq(
			peg.Not(peg.Alt(peg.Lit("e"), peg.Lit("E"))),
			peg.Rule("SUFFIX"),
		),

		"Identifier":      peg.Rule("IDENT"),
		"Raw_identifier":  peg.Seq(peg.Lit("r#"), peg.Rule("IDENT")),
		"Lifetime_or_label": peg.Seq(
			peg.Lit("'"),
			peg.Rule("IDENT"),
			peg.Not(peg.Lit("'")),
		),
		"Raw_lifetime_or_label": peg.Seq(
			peg.Lit("'r#"),
			peg.Rule("IDENT"),
			peg.Not(peg.Lit("'")),
		),

		// Reserved prefix forms: an identifier directly followed by a quote
		// or hash with no intervening whitespace. They always reject; they
		// exist so that a later edition introducing a new string-literal
		// prefix (the way 2021 introduced c"..") does not change how an
		// older edition tokenises the same bytes into something else
		// entirely — the shape is claimed from the start.
		"Reserved_prefix_2015": peg.Seq(
			peg.Rule("IDENT"),
			peg.Alt(peg.Lit("#"), peg.Lit(`"`), peg.Lit("'")),
		),
		"Reserved_prefix_2021": peg.Seq(
			peg.Rule("IDENT"),
			peg.Alt(peg.Lit("#"), peg.Lit(`"`), peg.Lit("'")),
		),
		"Reserved_guard_2024": peg.Alt(peg.Lit("##"), peg.Lit(`#"`)),
	}
}
