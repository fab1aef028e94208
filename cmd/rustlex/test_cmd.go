package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/lukeod/rustlex"
)

var testCmd = &cobra.Command{
	Use:   "test <fixture-dir>",
	Short: "Run the fixture-driven conformance harness over a directory of YAML cases",
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
		if failed > 0 {
			os.Exit(3)
		}
		log.WithFields(map[string]interface{}{"passed": passed, "failed": failed}).Info("fixture run complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}

// runFixtures tokenises every case, compares the outcome against its
// expectation, and prints according to --short/--failures-only/--details.
// It returns the pass/fail counts.
func runFixtures(cases []fixture) (passed, failed int) {
	for _, c := range cases {
		ok, detail := runFixture(c)
		if flagXfail {
			ok = !ok
		}
		if ok {
			passed++
		} else {
			failed++
		}
		if flagFailuresOnly && ok {
			continue
		}
		printFixtureResult(c, ok, detail)
	}
	return passed, failed
}

func runFixture(c fixture) (ok bool, detail string) {
	opts, err := c.options()
	if err != nil {
		return false, err.Error()
	}
	toks, rej := rustlex.Tokenize([]byte(c.Input), opts)
	switch c.Expect {
	case "reject":
		if rej == nil {
			return false, "expected rejection, got acceptance"
		}
		if c.RejectionTag != "" && c.RejectionTag != rej.Tag.String() {
			return false, fmt.Sprintf("expected rejection tag %s, got %s", c.RejectionTag, rej.Tag)
		}
		return true, ""
	case "accept":
		if rej != nil {
			return false, fmt.Sprintf("expected acceptance, got rejection: %v", rej)
		}
		if len(c.Tokens) != len(toks) {
			return false, fmt.Sprintf("expected %d tokens, got %d", len(c.Tokens), len(toks))
		}
		for i, want := range c.Tokens {
			if !want.matches(toks[i]) {
				return false, fmt.Sprintf("token %d: expected kind %s, got mismatch", i, want.Kind)
			}
		}
		return true, ""
	default:
		return false, fmt.Sprintf("fixture %s: invalid expect %q", c.Name, c.Expect)
	}
}

func printFixtureResult(c fixture, ok bool, detail string) {
	status := "PASS"
	if !ok {
		status = "FAIL"
	}
	if flagShort {
		fmt.Printf("%s %s\n", status, c.Name)
		return
	}
	fmt.Printf("%s %s: %s\n", status, c.Name, c.Input)
	if detail != "" {
		fmt.Printf("  %s\n", detail)
	}
	if shouldShowDetails(ok) {
		toks, _ := rustlex.Tokenize([]byte(c.Input), mustOptions(c))
		repr.Println(toks)
	}
}

func shouldShowDetails(ok bool) bool {
	switch flagDetails {
	case "always":
		return true
	case "failures":
		return !ok
	default:
		return false
	}
}

func mustOptions(c fixture) rustlex.Options {
	opts, _ := c.options()
	return opts
}
