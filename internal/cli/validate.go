package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate tsr.yaml and report errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(opts)
		if err != nil {
			return err
		}
		if _, err := loadAndValidateConfig(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
