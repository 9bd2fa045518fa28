package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, l := range buildCatalog().All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-28s %s\n",
				l.Code, l.Title, strings.Join(l.Topics, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
