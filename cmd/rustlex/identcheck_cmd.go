package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukeod/rustlex"
	"github.com/lukeod/rustlex/token"
)

var identCheckCmd = &cobra.Command{
	Use:   "identcheck <file>",
	Short: "Classify a newline-delimited list of candidate names as Identifier, RawIdentifier-only, or rejected",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify <file>")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		opts, err := currentOptions()
		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(f)
		rejected := 0
		for scanner.Scan() {
			name := strings.TrimSpace(scanner.Text())
			if name == "" {
				continue
			}
			status := classifyIdent(name, opts)
			if status == "rejected" {
				rejected++
			}
			if flagFailuresOnly && status != "rejected" {
				continue
			}
			fmt.Printf("%s\t%s\n", status, name)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		if rejected > 0 {
			os.Exit(3)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(identCheckCmd)
}

// classifyIdent reports whether name tokenises as a single plain
// Identifier, failing that whether r#name tokenises as a single
// RawIdentifier, or neither ("rejected"). The tokeniser has no keyword
// list, so keywords such as fn classify as "identifier".
func classifyIdent(name string, opts rustlex.Options) string {
	toks, rej := rustlex.Tokenize([]byte(name), opts)
	if rej == nil && len(toks) == 1 && toks[0].Kind == token.Identifier {
		return "identifier"
	}
	rawToks, rawRej := rustlex.Tokenize([]byte("r#"+name), opts)
	if rawRej == nil && len(rawToks) == 1 && rawToks[0].Kind == token.RawIdentifier {
		return "raw-identifier-only"
	}
	return "rejected"
}
