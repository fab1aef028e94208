// Package rustlex tokenises Rust source text into a fine-grained token
// stream: a PEG evaluator specialised to the Rust token grammar, a cleanup
// pipeline ahead of it, and a reprocessing stage that turns raw matches
// into typed token attributes.
package rustlex

import (
	"github.com/lukeod/rustlex/cleanup"
	"github.com/lukeod/rustlex/doccomment"
	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/lexer"
	"github.com/lukeod/rustlex/reprocess"
	"github.com/lukeod/rustlex/token"
)

// Edition selects which Rust edition's token grammar to apply. E2015
// covers both 2015 and 2018: their tokenisation is identical.
type Edition = grammar.Edition

const (
	E2015 = grammar.E2015
	E2021 = grammar.E2021
	E2024 = grammar.E2024
)

// CleaningMode selects how much of the cleanup pipeline (§4.3) runs ahead
// of tokenisation.
type CleaningMode = cleanup.Mode

const (
	CleaningNone                  CleaningMode = cleanup.ModeNone
	CleaningShebang               CleaningMode = cleanup.ModeShebang
	CleaningShebangAndFrontmatter CleaningMode = cleanup.ModeShebangAndFrontmatter
)

// Options controls a single Tokenize call.
type Options struct {
	Edition          Edition
	Cleaning         CleaningMode
	LowerDocComments bool
}

// RejectionReason is the taxonomy-tagged error Tokenize returns on failure
//: BadUTF8 during decode, FrontmatterMalformed when a
// reserved dash fence fails to parse as frontmatter, or LexFail for
// everything the grammar or reprocessor rejects.
type RejectionReason = reprocess.RejectionReason

const (
	BadUTF8              = reprocess.BadUTF8
	FrontmatterMalformed = reprocess.FrontmatterMalformed
	LexFail              = reprocess.LexFail
)

// Tokenize cleans input per opts.Cleaning, runs the tokeniser driver over
// the result for opts.Edition, and — if opts.LowerDocComments is set —
// lowers doc comments into their equivalent attribute token sequence
// (§4.8). It returns the earliest rejection encountered, cleanup failures
// included, rather than attempting any recovery.
func Tokenize(input []byte, opts Options) ([]token.Token, *RejectionReason) {
	s, rej := cleanup.Clean(input, opts.Edition, opts.Cleaning)
	if rej != nil {
		return nil, rej
	}
	toks, rej := lexer.Tokenize(s.Remaining(), opts.Edition)
	if rej != nil {
		return nil, rej
	}
	if opts.LowerDocComments {
		toks = doccomment.Lower(toks)
	}
	return toks, nil
}
