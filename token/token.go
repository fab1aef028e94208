// Package token defines the fine-grained Rust token kinds and their typed
// attribute payloads. A Token owns its attribute data —
// decoded strings/bytes, which differ from the source bytes once escape
// processing and NFC normalisation have run.
package token

import "fmt"

// Kind tags which attribute payload a Token carries.
type Kind int

const (
	Whitespace Kind = iota
	LineComment
	BlockComment
	Punctuation
	Identifier
	RawIdentifier
	LifetimeOrLabel
	RawLifetimeOrLabel
	CharacterLiteral
	ByteLiteral
	StringLiteral
	RawStringLiteral
	ByteStringLiteral
	RawByteStringLiteral
	CStringLiteral
	RawCStringLiteral
	IntegerLiteral
	FloatLiteral
)

var kindNames = map[Kind]string{
	Whitespace:            "Whitespace",
	LineComment:           "LineComment",
	BlockComment:          "BlockComment",
	Punctuation:           "Punctuation",
	Identifier:            "Identifier",
	RawIdentifier:         "RawIdentifier",
	LifetimeOrLabel:       "LifetimeOrLabel",
	RawLifetimeOrLabel:    "RawLifetimeOrLabel",
	CharacterLiteral:      "CharacterLiteral",
	ByteLiteral:           "ByteLiteral",
	StringLiteral:         "StringLiteral",
	RawStringLiteral:      "RawStringLiteral",
	ByteStringLiteral:     "ByteStringLiteral",
	RawByteStringLiteral:  "RawByteStringLiteral",
	CStringLiteral:        "CStringLiteral",
	RawCStringLiteral:     "RawCStringLiteral",
	IntegerLiteral:        "IntegerLiteral",
	FloatLiteral:          "FloatLiteral",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CommentStyle classifies a Line/BlockComment.
type CommentStyle int

const (
	NonDoc CommentStyle = iota
	InnerDoc
	OuterDoc
)

func (s CommentStyle) String() string {
	switch s {
	case NonDoc:
		return "NonDoc"
	case InnerDoc:
		return "InnerDoc"
	case OuterDoc:
		return "OuterDoc"
	default:
		return fmt.Sprintf("CommentStyle(%d)", int(s))
	}
}

// Base is the radix of an IntegerLiteral.
type Base int

const (
	Dec Base = iota
	Bin
	Oct
	Hex
)

func (b Base) String() string {
	switch b {
	case Dec:
		return "Dec"
	case Bin:
		return "Bin"
	case Oct:
		return "Oct"
	case Hex:
		return "Hex"
	default:
		return fmt.Sprintf("Base(%d)", int(b))
	}
}

// Token is one fine-grained token: its kind, its source extent (character
// offset/length and byte offset/length into the cleaned input), and the
// kind-specific attributes (e.g. Mark for Punctuation, Digits/Base/Suffix
// for a numeric literal). Only the fields relevant to Kind are meaningful;
// the zero value of the rest is not part of the contract.
type Token struct {
	Kind Kind

	// Extent into the cleaned character sequence.
	CharOffset int
	CharLen    int
	ByteOffset int
	ByteLen    int

	// LineComment, BlockComment
	Style CommentStyle
	Body  string

	// Punctuation
	Mark rune

	// Identifier, RawIdentifier
	RepresentedIdent string

	// LifetimeOrLabel, RawLifetimeOrLabel
	Name string

	// CharacterLiteral
	RepresentedCharacter rune

	// ByteLiteral
	RepresentedByte byte

	// StringLiteral, RawStringLiteral
	RepresentedString string

	// ByteStringLiteral, RawByteStringLiteral, CStringLiteral,
	// RawCStringLiteral — a C string's content is a byte sequence built
	// from UTF-8 encodings of characters, not a sequence-of-char
	//, so it shares this field rather than
	// RepresentedString.
	RepresentedBytes []byte

	// IntegerLiteral
	IntBase Base
	Digits  string

	// FloatLiteral
	FloatBody string

	// CharacterLiteral, ByteLiteral, every string literal kind,
	// IntegerLiteral, FloatLiteral
	Suffix string
}

// End returns the character offset immediately after the token.
func (t Token) End() int { return t.CharOffset + t.CharLen }
