package main

import (
	"errors"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/lukeod/rustlex"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Tokenise a file and pretty-print the resulting token stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify <file>")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		opts, err := currentOptions()
		if err != nil {
			return err
		}
		toks, rej := rustlex.Tokenize(data, opts)
		if rej != nil {
			log.WithField("file", args[0]).Errorf("rejected: %v", rej)
			os.Exit(3)
		}
		repr.Println(toks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
