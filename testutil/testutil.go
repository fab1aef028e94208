// Package testutil collects small testify-based helpers shared across the
// module's test suites, mirrored on the shape of a typical parser test
// helper package: a must-succeed constructor, a type/kind assertion, and a
// search helper over the result.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lukeod/rustlex"
	"github.com/lukeod/rustlex/token"
)

// MustTokenize tokenises input under opts and fails the test immediately
// if it is rejected, ensuring callers that need a valid token stream as a
// fixture never have to handle the rejection case themselves.
func MustTokenize(t *testing.T, input string, opts rustlex.Options) []token.Token {
	t.Helper()
	toks, rej := rustlex.Tokenize([]byte(input), opts)
	require.Nil(t, rej, "MustTokenize failed unexpectedly for input:\n%s\nrejection: %v", input, rej)
	return toks
}

// MustReject tokenises input under opts and fails the test if it is
// accepted, returning the rejection for further inspection.
func MustReject(t *testing.T, input string, opts rustlex.Options) *rustlex.RejectionReason {
	t.Helper()
	toks, rej := rustlex.Tokenize([]byte(input), opts)
	require.NotNil(t, rej, "MustReject expected a rejection for input:\n%s\nbut got tokens: %#v", input, toks)
	return rej
}

// AssertKind checks that tok has the expected Kind, reporting the failure
// through t.Errorf so the test can continue checking other tokens.
func AssertKind(t *testing.T, expected token.Kind, tok token.Token) {
	t.Helper()
	if tok.Kind != expected {
		t.Errorf("AssertKind failed: expected %s, got %s", expected, tok.Kind)
	}
}

// FindToken returns the first token of the given kind in toks, failing the
// test immediately if none exists.
func FindToken(t *testing.T, toks []token.Token, kind token.Kind) token.Token {
	t.Helper()
	for _, tok := range toks {
		if tok.Kind == kind {
			return tok
		}
	}
	require.FailNowf(t, "token not found", "no token of kind %s in %d tokens", kind, len(toks))
	return token.Token{}
}
