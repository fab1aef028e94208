package grammar

import "github.com/lukeod/rustlex/peg"

// escapeRules defines the LITERAL_COMPONENT sub-grammar shared by every
// quoted literal kind. Package
// reprocess tells from the matched characters which alternative
// (NON_ESCAPE / SIMPLE_ESCAPE / HEX_ESCAPE / UNICODE_ESCAPE /
// STRING_CONTINUATION) matched, and computes the represented character or
// byte; the grammar only establishes the shape.
func escapeRules() map[string]peg.Expr {
	hexDigit := peg.Alt(peg.Rng('0', '9'), peg.Rng('a', 'f'), peg.Rng('A', 'F'))

	return map[string]peg.Expr{
		"HEX_DIGIT": hexDigit,

		"NON_ESCAPE": peg.Seq(
			peg.Not(peg.Class{Kind: peg.ClassBackslash}),
			peg.Class{Kind: peg.ClassAny},
		),
		"SIMPLE_ESCAPE": peg.Alt(
			peg.Lit(`\0`), peg.Lit(`\t`), peg.Lit(`\n`), peg.Lit(`\r`),
			peg.Lit(`\"`), peg.Lit(`\'`), peg.Lit(`\\`),
		),
		"HEX_ESCAPE": peg.Seq(peg.Lit(`\x`), peg.Rule("HEX_DIGIT"), peg.Rule("HEX_DIGIT")),
		// Up to six hex digits total between the braces; underscores may
		// appear anywhere after the first digit and count against that
		// same six-character budget.
		"UNICODE_ESCAPE": peg.Seq(
			peg.Lit(`\u{`),
			peg.Rule("HEX_DIGIT"),
			peg.UpTo(peg.Alt(peg.Rule("HEX_DIGIT"), peg.Lit("_")), 5),
			peg.Lit("}"),
		),
		"STRING_CONTINUATION": peg.Seq(
			peg.Lit(`\`),
			peg.Class{Kind: peg.ClassLF},
			peg.Star(peg.Alt(
				peg.Class{Kind: peg.ClassTab},
				peg.Class{Kind: peg.ClassLF},
				peg.Class{Kind: peg.ClassCR},
				peg.Lit(" "),
			)),
		),
		"LITERAL_COMPONENT": peg.Alt(
			peg.Rule("STRING_CONTINUATION"),
			peg.Rule("UNICODE_ESCAPE"),
			peg.Rule("HEX_ESCAPE"),
			peg.Rule("SIMPLE_ESCAPE"),
			peg.Rule("NON_ESCAPE"),
		),
	}
}

// quotedContent matches the body of a "..."-delimited literal: any run of
// LITERAL_COMPONENTs that stops before the closing quote.
func quotedContent() peg.Expr {
	return peg.Star(peg.Seq(peg.Not(peg.Lit(`"`)), peg.Rule("LITERAL_COMPONENT")))
}

func quotedForm(prefix string, name string) (string, peg.Expr) {
	var pre peg.Expr
	if prefix == "" {
		pre = peg.Class{Kind: peg.ClassEmpty}
	} else {
		pre = peg.Lit(prefix)
	}
	return name, peg.Seq(pre, peg.Lit(`"`), quotedContent(), peg.Lit(`"`), peg.Opt(peg.Rule("SUFFIX")))
}

// stringRules builds Single_quoted_literal, Double_quoted_literal,
// Raw_double_quoted_literal and Unterminated_literal. The double-quoted
// forms vary by edition only in which prefixes they accept: 2015/2018
// take no prefix (string) or "b" (byte string); 2021/2024 add "c" (C
// string) and, for the raw form, "cr".
func stringRules(ed Edition) map[string]peg.Expr {
	rules := map[string]peg.Expr{
		"Single_quoted_literal": peg.Seq(
			peg.Opt(peg.Lit("b")),
			peg.Lit("'"),
			peg.Seq(peg.Not(peg.Lit("'")), peg.Rule("LITERAL_COMPONENT")),
			peg.Lit("'"),
			peg.Opt(peg.Rule("SUFFIX")),
		),
		// Reserves quote-opened shapes that no earlier literal rule
		// completed: a '"' (optionally right after an identifier) together
		// with the rest of the input, and a "'" that starts neither a
		// character literal nor a lifetime/label, up to the next quote or
		// line end (this covers the "'ab'c" shape, where neither
		// Single_quoted_literal nor Lifetime_or_label matches because two
		// characters sit between the quotes).
		"Unterminated_literal": peg.Alt(
			peg.Seq(peg.Opt(peg.Rule("IDENT")), peg.Lit(`"`), peg.Star(peg.Class{Kind: peg.ClassAny})),
			peg.Seq(peg.Not(peg.Rule("Lifetime_or_label")), peg.Lit("'"), peg.Star(peg.Seq(peg.Not(peg.Lit("'")), peg.Not(peg.Class{Kind: peg.ClassLF}), peg.Class{Kind: peg.ClassAny}))),
		),
	}

	var dqForms []peg.Expr
	name, expr := quotedForm("", "dq_string")
	rules[name] = expr
	dqForms = append(dqForms, peg.Rule(name))
	name, expr = quotedForm("b", "dq_bytestring")
	rules[name] = expr
	dqForms = append(dqForms, peg.Rule(name))
	if ed != E2015 {
		name, expr = quotedForm("c", "dq_cstring")
		rules[name] = expr
		dqForms = append(dqForms, peg.Rule(name))
	}
	rules["Double_quoted_literal"] = peg.Alt(dqForms...)

	rules["RAW_CONTENT"] = peg.Star(peg.Seq(
		peg.Not(peg.Seq(peg.Lit(`"`), peg.Check{ID: "rawhashes", E: peg.Rule("HASHES")})),
		peg.Class{Kind: peg.ClassAny},
	))
	rawForm := func(prefix, name string) (string, peg.Expr) {
		return name, peg.Seq(
			peg.Lit(prefix),
			peg.Mark{ID: "rawhashes", E: peg.Rule("HASHES")},
			peg.Lit(`"`),
			peg.Rule("RAW_CONTENT"),
			peg.Lit(`"`),
			peg.Check{ID: "rawhashes", E: peg.Rule("HASHES")},
			peg.Opt(peg.Rule("SUFFIX")),
		)
	}
	var rawForms []peg.Expr
	name, expr = rawForm("r", "raw_string")
	rules[name] = expr
	rawForms = append(rawForms, peg.Rule(name))
	name, expr = rawForm("br", "raw_bytestring")
	rules[name] = expr
	rawForms = append(rawForms, peg.Rule(name))
	if ed != E2015 {
		name, expr = rawForm("cr", "raw_cstring")
		rules[name] = expr
		rawForms = append(rawForms, peg.Rule(name))
	}
	rules["Raw_double_quoted_literal"] = peg.Alt(rawForms...)

	rules["HASHES"] = peg.UpTo(peg.Lit("#"), 255)

	return rules
}
