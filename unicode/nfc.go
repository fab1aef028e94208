package unicode

import "golang.org/x/text/unicode/norm"

// ToNFC returns the Unicode Normalization Form C (UAX #15) of s, using the
// Unicode version bundled with golang.org/x/text at build time.
func ToNFC(s string) string {
	return norm.NFC.String(s)
}

// IsNFC reports whether s is already in Normalization Form C. The
// tokeniser itself does not call it; the reprocessor applies ToNFC.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}
