package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lukeod/rustlex"
	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/token"
)

// expectedToken is the YAML-facing shape of a single expected token. Only
// the fields relevant to Kind need to be set; the rest are ignored by
// matches.
type expectedToken struct {
	Kind    string `yaml:"kind"`
	Style   string `yaml:"style,omitempty"`
	Body    string `yaml:"body,omitempty"`
	Mark    string `yaml:"mark,omitempty"`
	Ident   string `yaml:"ident,omitempty"`
	Name    string `yaml:"name,omitempty"`
	Char    string `yaml:"char,omitempty"`
	Byte    *int   `yaml:"byte,omitempty"`
	Str     string `yaml:"str,omitempty"`
	Bytes   []int  `yaml:"bytes,omitempty"`
	Base    string `yaml:"base,omitempty"`
	Digits  string `yaml:"digits,omitempty"`
	Float   string `yaml:"float,omitempty"`
	Suffix  string `yaml:"suffix,omitempty"`
}

// fixture is one conformance case: an input under a given edition/cleaning
// mode, and either the token sequence it must produce or the rejection tag
// it must fail with.
type fixture struct {
	Name             string          `yaml:"name"`
	Input            string          `yaml:"input"`
	Edition          string          `yaml:"edition"`
	Cleaning         string          `yaml:"cleaning,omitempty"`
	LowerDocComments bool            `yaml:"lower_doc_comments,omitempty"`
	Expect           string          `yaml:"expect"` // "accept" or "reject"
	Tokens           []expectedToken `yaml:"tokens,omitempty"`
	RejectionTag     string          `yaml:"rejection_tag,omitempty"`
}

func loadFixtures(dir string) ([]fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading fixture directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var all []fixture
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading fixture file %s: %w", path, err)
		}
		var cases []fixture
		if err := yaml.Unmarshal(data, &cases); err != nil {
			return nil, fmt.Errorf("parsing fixture file %s: %w", path, err)
		}
		all = append(all, cases...)
	}
	return all, nil
}

// options resolves the fixture's edition/cleaning strings, defaulting
// cleaning to "none" when unset.
func (f fixture) options() (rustlex.Options, error) {
	ed, err := grammar.ParseEdition(f.Edition)
	if err != nil {
		return rustlex.Options{}, fmt.Errorf("fixture %s: %w", f.Name, err)
	}
	cleaning := f.Cleaning
	if cleaning == "" {
		cleaning = "none"
	}
	cl, err := parseCleaning(cleaning)
	if err != nil {
		return rustlex.Options{}, fmt.Errorf("fixture %s: %w", f.Name, err)
	}
	return rustlex.Options{Edition: ed, Cleaning: cl, LowerDocComments: f.LowerDocComments}, nil
}

func (et expectedToken) matches(tok token.Token) bool {
	if et.Kind != tok.Kind.String() {
		return false
	}
	switch tok.Kind {
	case token.LineComment, token.BlockComment:
		return et.Style == tok.Style.String() && et.Body == tok.Body
	case token.Punctuation:
		return len(et.Mark) == 1 && rune(et.Mark[0]) == tok.Mark
	case token.Identifier, token.RawIdentifier:
		return et.Ident == tok.RepresentedIdent
	case token.LifetimeOrLabel, token.RawLifetimeOrLabel:
		return et.Name == tok.Name
	case token.CharacterLiteral:
		return []rune(et.Char) != nil && []rune(et.Char)[0] == tok.RepresentedCharacter && et.Suffix == tok.Suffix
	case token.ByteLiteral:
		return et.Byte != nil && byte(*et.Byte) == tok.RepresentedByte && et.Suffix == tok.Suffix
	case token.StringLiteral, token.RawStringLiteral:
		return et.Str == tok.RepresentedString && et.Suffix == tok.Suffix
	case token.ByteStringLiteral, token.RawByteStringLiteral, token.CStringLiteral, token.RawCStringLiteral:
		return intsEqualBytes(et.Bytes, tok.RepresentedBytes) && et.Suffix == tok.Suffix
	case token.IntegerLiteral:
		return et.Base == tok.IntBase.String() && et.Digits == tok.Digits && et.Suffix == tok.Suffix
	case token.FloatLiteral:
		return et.Float == tok.FloatBody && et.Suffix == tok.Suffix
	case token.Whitespace:
		return true
	default:
		return true
	}
}

func intsEqualBytes(want []int, got []byte) bool {
	if len(want) != len(got) {
		return false
	}
	for i, w := range want {
		if byte(w) != got[i] {
			return false
		}
	}
	return true
}
