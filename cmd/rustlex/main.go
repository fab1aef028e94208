// Command rustlex is the reference binary for the rustlex library: it
// exposes the tokeniser, the fixture-driven conformance harness, and a
// handful of cross-check tools as cobra subcommands.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
