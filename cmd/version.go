package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version of chyp8",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chyp8 %s", version)
		if commit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s, %s)", commit, date)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	},
}
