package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukeod/rustlex"
	"github.com/lukeod/rustlex/token"
)

var compareCmd = &cobra.Command{
	Use:   "compare <file-a> <file-b>",
	Short: "Tokenise two files under the same options and report the first point where their kind sequences diverge",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("need to specify <file-a> <file-b>")
		}
		opts, err := currentOptions()
		if err != nil {
			return err
		}
		a, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		toksA, rejA := rustlex.Tokenize(a, opts)
		toksB, rejB := rustlex.Tokenize(b, opts)
		if rejA != nil || rejB != nil {
			fmt.Printf("%s: %v\n%s: %v\n", args[0], rejA, args[1], rejB)
			os.Exit(3)
		}
		if idx, ok := firstDivergence(toksA, toksB); ok {
			fmt.Printf("diverges at token %d: %s vs %s\n", idx, kindAt(toksA, idx), kindAt(toksB, idx))
			os.Exit(3)
		}
		log.Info("token-kind sequences agree")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func firstDivergence(a, b []token.Token) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Kind != b[i].Kind {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}

func kindAt(toks []token.Token, i int) string {
	if i >= len(toks) {
		return "<end of stream>"
	}
	return toks[i].Kind.String()
}
