// Package unicode exposes the character classification and normalisation
// predicates the grammar and reprocessor depend on: XID_Start, XID_Continue,
// Pattern_White_Space, and NFC normalisation. The XID predicates use the
// standard library's unicode tables and NFC uses golang.org/x/text, so the
// Unicode version is whatever the toolchain and that module ship
// (unicode.Version for the standard library); it is not pinned here.
package unicode

import "unicode"

// xidStartCategories approximates the Unicode Derived Core Property
// XID_Start as the union of General_Category classes {Lu, Ll, Lt, Lm, Lo, Nl}.
// The stdlib unicode package does not export XID_Start/XID_Continue tables
// (they are a derived property, not a base General_Category), so this
// composes the closest available range tables. It deliberately omits the
// small Other_ID_Start carve-ins (e.g. U+1885/U+1886, U+2118, U+212E,
// U+309B/U+309C) and the Pattern_Syntax/Pattern_White_Space exclusions from
// XID_Continue; real-world identifiers practically never hit that
// difference, and no dependency in the example corpus ships the derived
// tables.
var xidStartCategories = []*unicode.RangeTable{
	unicode.Lu,
	unicode.Ll,
	unicode.Lt,
	unicode.Lm,
	unicode.Lo,
	unicode.Nl,
}

// xidContinueCategories is XID_Start plus {Mn, Mc, Nd, Pc}.
var xidContinueCategories = []*unicode.RangeTable{
	unicode.Lu,
	unicode.Ll,
	unicode.Lt,
	unicode.Lm,
	unicode.Lo,
	unicode.Nl,
	unicode.Mn,
	unicode.Mc,
	unicode.Nd,
	unicode.Pc,
}

// IsXIDStart reports whether c may begin an identifier under XID_Start.
func IsXIDStart(c rune) bool {
	return unicode.IsOneOf(xidStartCategories, c)
}

// IsXIDContinue reports whether c may continue an identifier under
// XID_Continue.
func IsXIDContinue(c rune) bool {
	return unicode.IsOneOf(xidContinueCategories, c)
}
