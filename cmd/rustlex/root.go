package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "rustlex",
		Short:        "rustlex",
		SilenceUsage: true,
		Long:         `Reference CLI for the rustlex edition-parameterised Rust lexer.`,
	}

	flagEdition          string
	flagCleaning         string
	flagLowerDocComments bool
	flagShort            bool
	flagXfail            bool
	flagFailuresOnly     bool
	flagDetails          string

	log = logrus.StandardLogger()
)

// Execute registers the persistent flags shared by every subcommand and
// runs the command tree.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&flagEdition, "edition", "2021", "Rust edition: 2015, 2021, or 2024")
	rootCmd.PersistentFlags().StringVar(&flagCleaning, "cleaning", "none", "cleanup mode: none, shebang, or shebang-and-frontmatter")
	rootCmd.PersistentFlags().BoolVar(&flagLowerDocComments, "lower-doc-comments", false, "lower doc comments into their attribute token sequence")
	rootCmd.PersistentFlags().BoolVar(&flagShort, "short", false, "print a one-line summary per case instead of full detail")
	rootCmd.PersistentFlags().BoolVar(&flagXfail, "xfail", false, "invert pass/fail: a case that does not match its expectation counts as a pass")
	rootCmd.PersistentFlags().BoolVar(&flagFailuresOnly, "failures-only", false, "only print cases that did not match expectations")
	rootCmd.PersistentFlags().StringVar(&flagDetails, "details", "failures", "when to print full token dumps: always, failures, or never")
	return rootCmd.Execute()
}
