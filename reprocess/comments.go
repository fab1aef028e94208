package reprocess

import (
	"strings"

	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
)

// lineCommentStyle derives doc-comment style from the content after the
// leading "//": a third slash (so the
// comment reads "///...") is outer-doc with the fourth character onward as
// body; "//!..." is inner-doc; anything else, including a run of
// additional slashes ("////"), is non-doc with an empty body — body is
// only meaningful for doc comments.
func lineCommentStyle(raw string) (token.CommentStyle, string) {
	switch {
	case strings.HasPrefix(raw, "//"):
		return token.NonDoc, ""
	case strings.HasPrefix(raw, "/"):
		return token.OuterDoc, raw[1:]
	case strings.HasPrefix(raw, "!"):
		return token.InnerDoc, raw[1:]
	default:
		return token.NonDoc, ""
	}
}

// blockCommentStyle mirrors lineCommentStyle for the content between "/*"
// and "*/": "**" makes it non-doc (so "/**/" and "/***/" are ordinary
// comments, never doc comments), a single "*" followed by at least one
// more character is outer-doc, "!" is inner-doc, everything else non-doc.
func blockCommentStyle(raw string) (token.CommentStyle, string) {
	runes := []rune(raw)
	switch {
	case strings.HasPrefix(raw, "**"):
		return token.NonDoc, ""
	case len(runes) >= 2 && runes[0] == '*':
		return token.OuterDoc, string(runes[1:])
	case strings.HasPrefix(raw, "!"):
		return token.InnerDoc, raw[1:]
	default:
		return token.NonDoc, ""
	}
}

func lineComment(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	raw := string(m.Runes(s)[2:]) // drop leading "//"
	style, body := lineCommentStyle(raw)
	if strings.ContainsRune(body, '\r') {
		return token.Token{}, lexFail(m.Start, "Line_comment", "bare carriage return in doc comment body")
	}
	return token.Token{Kind: token.LineComment, Style: style, Body: body}, nil
}

func blockComment(m peg.Match, s *charstream.Stream) (token.Token, *RejectionReason) {
	runes := m.Runes(s)
	raw := string(runes[2 : len(runes)-2]) // drop leading "/*" and trailing "*/"
	style, body := blockCommentStyle(raw)
	if strings.ContainsRune(body, '\r') {
		return token.Token{}, lexFail(m.Start, "Block_comment", "bare carriage return in doc comment body")
	}
	return token.Token{Kind: token.BlockComment, Style: style, Body: body}, nil
}
