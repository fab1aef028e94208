package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukeod/rustlex"
)

// coarseCmd runs both tokenisers over the same input and checks that their
// token extents cover the input identically — an independent extent
// round-trip cross-check (Testable Property 1) that shares no code with
// the PEG engine it is checking.
var coarseCmd = &cobra.Command{
	Use:   "coarse <file>",
	Short: "Cross-check the fine-grained tokeniser against a second, coarser regex-based lexer",
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

		fine, rej := rustlex.Tokenize(data, opts)
		if rej != nil {
			log.Errorf("fine-grained tokeniser rejected input: %v", rej)
			os.Exit(3)
		}
		coarse, err := lexCoarse(data)
		if err != nil {
			return fmt.Errorf("coarse lexer failed: %w", err)
		}

		fineBytes := 0
		for _, tok := range fine {
			fineBytes += tok.ByteLen
		}
		coarseBytes := 0
		for _, tok := range coarse {
			coarseBytes += tok.ByteLen
		}
		if fineBytes != coarseBytes || fineBytes != len(data) {
			fmt.Printf("extent mismatch: fine covers %d bytes, coarse covers %d bytes, input is %d bytes\n",
				fineBytes, coarseBytes, len(data))
			os.Exit(3)
		}
		log.WithFields(map[string]interface{}{
			"fine_tokens":   len(fine),
			"coarse_tokens": len(coarse),
		}).Info("extents agree")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coarseCmd)
}
