package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// proptestCmd runs the same fixture-driven harness as test. It exists as a
// distinct subcommand for compatibility with the documented CLI surface;
// it is a fixture runner, not a fuzzer — true generative/property testing
// is out of scope.
var proptestCmd = &cobra.Command{
	Use:   "proptest <fixture-dir>",
	Short: "Run the fixture harness, reporting aggregate pass/fail counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify <fixture-dir>")
		}
		cases, err := loadFixtures(args[0])
		if err != nil {
			return err
		}
		passed, failed := runFixtures(cases)
		log.WithFields(map[string]interface{}{
			"passed": passed,
			"failed": failed,
			"total":  passed + failed,
		}).Info("proptest run complete")
		if failed > 0 {
			os.Exit(3)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(proptestCmd)
}
