package main

import (
	"fmt"

	"github.com/lukeod/rustlex"
	"github.com/lukeod/rustlex/grammar"
)

func currentOptions() (rustlex.Options, error) {
	ed, err := grammar.ParseEdition(flagEdition)
	if err != nil {
		return rustlex.Options{}, err
	}
	cl, err := parseCleaning(flagCleaning)
	if err != nil {
		return rustlex.Options{}, err
	}
	return rustlex.Options{Edition: ed, Cleaning: cl, LowerDocComments: flagLowerDocComments}, nil
}

func parseCleaning(s string) (rustlex.CleaningMode, error) {
	switch s {
	case "none":
		return rustlex.CleaningNone, nil
	case "shebang":
		return rustlex.CleaningShebang, nil
	case "shebang-and-frontmatter":
		return rustlex.CleaningShebangAndFrontmatter, nil
	default:
		return 0, fmt.Errorf("unknown cleaning mode %q", s)
	}
}
