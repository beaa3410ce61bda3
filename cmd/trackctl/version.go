package main

import (
	"fmt"

	"github.com/philipparndt/gotrack/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "trackctl", version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
