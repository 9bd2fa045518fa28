package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/b97tsk/primer"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay every demo twice and compare transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := primer.NewRunner(buildCatalog(), cfg, logger, io.Discard)
		if err != nil {
			return err
		}

		results, err := r.Verify(cmd.Context())
		if err != nil {
			return err
		}

		bad := 0
		for _, res := range results {
			switch {
			case res.Err != nil:
				bad++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %-10s %v\n", res.Code, res.Err)
			case res.Drifted:
				bad++
				fmt.Fprintf(cmd.OutOrStdout(), "DRIFT %-10s transcripts differ\n", res.Code)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", res.Code)
			}
		}

		if bad != 0 {
			return fmt.Errorf("%d lesson(s) not deterministic", bad)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
