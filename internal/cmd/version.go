package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "livingdoc %s (commit %s, built %s)\n",
			Version, Commit, Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
