package unicode

// patternWhiteSpace is the fixed Pattern_White_Space set from the glossary:
// {U+0009, U+000A, U+000B, U+000C, U+000D, U+0020, U+0085, U+200E, U+200F,
// U+2028, U+2029}. This property is explicitly "fixed" by Unicode (it never
// grows across versions), so a literal set is normative, not a
// simplification.
var patternWhiteSpace = map[rune]struct{}{
	0x0009: {},
	0x000A: {},
	0x000B: {},
	0x000C: {},
	0x000D: {},
	0x0020: {},
	0x0085: {},
	0x200E: {},
	0x200F: {},
	0x2028: {},
	0x2029: {},
}

// IsPatternWhiteSpace reports whether c is in the fixed Pattern_White_Space
// set.
func IsPatternWhiteSpace(c rune) bool {
	_, ok := patternWhiteSpace[c]
	return ok
}
