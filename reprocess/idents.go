package reprocess

import (
	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
	rlunicode "github.com/lukeod/rustlex/unicode"
)

// rawKeywordExclusions are identifiers that cannot follow "r#" or "'r#":
// they already have a non-raw meaning the raw form would do nothing to
// escape. See grammar_test.go's TestRawIdentifierRejectsNothingAtGrammarLevel,
// which documents that "r#crate" is grammatically a Raw_identifier and this
// package is what rejects it.
var rawKeywordExclusions = map[string]bool{
	"_":     true,
	"crate": true,
	"self":  true,
	"super": true,
	"Self":  true,
}

func identifier(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	raw := string(m.Runes(s))
	return token.Token{Kind: token.Identifier, RepresentedIdent: rlunicode.ToNFC(raw)}, nil
}

func rawIdentifier(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	raw := string(m.Runes(s)[2:]) // strip the "r#" prefix
	normalized := rlunicode.ToNFC(raw)
	if rawKeywordExclusions[normalized] {
		return token.Token{}, lexFail(m.Start, "Raw_identifier", "r#"+normalized+" is not a valid raw identifier")
	}
	return token.Token{Kind: token.RawIdentifier, RepresentedIdent: normalized}, nil
}

// lifetimeOrLabel's Name is the source characters as written: unlike
// identifiers, lifetime/label names are not NFC-normalized — only
// Identifier and Raw_identifier carry RepresentedIdent through NFC.
func lifetimeOrLabel(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	name := string(m.Runes(s)[1:]) // drop leading "'"
	return token.Token{Kind: token.LifetimeOrLabel, Name: name}, nil
}

func rawLifetimeOrLabel(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	runes := m.Runes(s)
	name := string(runes[3:]) // drop leading "'r#"
	if rawKeywordExclusions[name] {
		return token.Token{}, lexFail(m.Start, "Raw_lifetime_or_label", "'r#"+name+" is not a valid raw lifetime")
	}
	return token.Token{Kind: token.RawLifetimeOrLabel, Name: name}, nil
}
