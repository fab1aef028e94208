package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukeod/rustlex"
	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/token"
)

var declCompareCmd = &cobra.Command{
	Use:   "decl-compare <file>",
	Short: "Tokenise a file under 2015, 2021 and 2024 and report the first edition-kind divergence",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify <file>")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		cleaning, err := parseCleaning(flagCleaning)
		if err != nil {
			return err
		}

		editions := []grammar.Edition{grammar.E2015, grammar.E2021, grammar.E2024}
		results := make(map[grammar.Edition][]string)
		for _, ed := range editions {
			toks, rej := rustlex.Tokenize(data, rustlex.Options{Edition: ed, Cleaning: cleaning})
			if rej != nil {
				results[ed] = []string{"REJECTED:" + rej.Tag.String()}
				continue
			}
			results[ed] = kindSequence(toks)
		}

		diverged := false
		for i := 1; i < len(editions); i++ {
			prev, cur := editions[i-1], editions[i]
			if idx, ok := firstStringDivergence(results[prev], results[cur]); ok {
				diverged = true
				fmt.Printf("%s vs %s diverge at index %d\n", prev, cur, idx)
			}
		}
		if diverged {
			os.Exit(3)
		}
		log.Info("no edition divergence")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(declCompareCmd)
}

func kindSequence(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind.String()
	}
	return out
}

func firstStringDivergence(a, b []string) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}
