package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/b97tsk/primer"
)

var runAll bool

var runCmd = &cobra.Command{
	Use:   "run [lesson...]",
	Short: "Play lessons in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := primer.NewRunner(buildCatalog(), cfg, logger, cmd.OutOrStdout(),
			primer.WithProgressWriter(os.Stderr))
		if err != nil {
			return err
		}
		if runAll {
			return r.RunAll()
		}
		if len(args) == 0 {
			return errors.New("name a lesson or pass --all; see primer list")
		}
		return r.Run(args...)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "play every lesson in order")
	rootCmd.AddCommand(runCmd)
}
