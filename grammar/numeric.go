package grammar

import "github.com/lukeod/rustlex/peg"

// numericRules defines Integer_literal and Float_literal. Neither varies
// by edition.
//
// Integer digit runs after a 0b/0o prefix are matched loosely — any
// run of decimal digits, ASCII letters, or underscores — rather than
// restricted to the base's own digit alphabet. That lets e.g. "0b1e2"
// reach the reprocessor as a single binary-literal attempt (digits
// "1e2") instead of splitting into a 3-character integer plus a
// "e2" suffix; package reprocess is what actually rejects digits
// outside the base's alphabet. After 0x the digit run is hex digits and
// underscores only, so in "0xFFu8" the "u8" is left for SUFFIX.
func numericRules() map[string]peg.Expr {
	digit := peg.Rng('0', '9')
	alphaLo := peg.Rng('a', 'z')
	alphaHi := peg.Rng('A', 'Z')
	looseDigit := peg.Alt(digit, alphaLo, alphaHi, peg.Lit("_"))
	hexDigitOrSep := peg.Alt(digit, peg.Rng('a', 'f'), peg.Rng('A', 'F'), peg.Lit("_"))
	decDigit := digit

	return map[string]peg.Expr{
		"DEC_DIGIT": decDigit,
		"DEC_DIGITS": peg.Seq(
			decDigit,
			peg.Star(peg.Alt(decDigit, peg.Lit("_"))),
		),

		"IntBinDigits": peg.Star(looseDigit),
		"IntOctDigits": peg.Star(looseDigit),
		"IntHexDigits": peg.Star(hexDigitOrSep),
		"IntDecDigits": peg.Rule("DEC_DIGITS"),

		"Integer_literal": peg.Alt(
			peg.Seq(peg.Lit("0x"), peg.Rule("IntHexDigits"), peg.Opt(peg.Rule("SUFFIX"))),
			peg.Seq(peg.Lit("0o"), peg.Rule("IntOctDigits"), peg.Opt(peg.Rule("SUFFIX"))),
			peg.Seq(peg.Lit("0b"), peg.Rule("IntBinDigits"), peg.Opt(peg.Rule("SUFFIX"))),
			peg.Seq(peg.Rule("IntDecDigits"), peg.Opt(peg.Rule("SUFFIX_NO_E"))),
		),

		"FLOAT_EXPONENT": peg.Seq(
			peg.Alt(peg.Lit("e"), peg.Lit("E")),
			peg.Opt(peg.Alt(peg.Lit("+"), peg.Lit("-"))),
			peg.Rule("DEC_DIGITS"),
		),
		// 1.2, 1.2e3, 1e3, and the bare-trailing-dot form 1. — guarded so
		// a following "." or identifier start reads as 1 .. 2 or 1 . x
		// instead of swallowing the dot as part of the number
		//.
		"FloatWithDotAndExp": peg.Seq(
			peg.Rule("DEC_DIGITS"),
			peg.Lit("."),
			peg.Rule("DEC_DIGITS"),
			peg.Opt(peg.Rule("FLOAT_EXPONENT")),
		),
		"FloatWithoutDot": peg.Seq(
			peg.Rule("DEC_DIGITS"),
			peg.Rule("FLOAT_EXPONENT"),
		),
		"FloatTrailingDot": peg.Seq(
			peg.Rule("DEC_DIGITS"),
			peg.Lit("."),
			peg.Not(peg.Lit(".")),
			peg.Not(peg.Rule("IDENT_START")),
		),
		"Float_literal": peg.Seq(
			peg.Alt(
				peg.Rule("FloatWithDotAndExp"),
				peg.Rule("FloatWithoutDot"),
				peg.Rule("FloatTrailingDot"),
			),
			peg.Opt(peg.Rule("SUFFIX")),
		),
		// A float body immediately followed by another "." reserves the
		// space instead of lexing as float, ".", and whatever comes next —
		// there is no valid Rust expression shaped like "1.0.1" today, and
		// silently splitting it would make a later addition of such syntax
		// a breaking change in how existing source tokenises.
		"Reserved_float": peg.Seq(
			peg.Alt(peg.Rule("FloatWithDotAndExp"), peg.Rule("FloatWithoutDot")),
			peg.Lit("."),
		),
	}
}
