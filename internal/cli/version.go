package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of eslint-config-tsr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "eslint-config-tsr %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
