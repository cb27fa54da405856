package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const usageHint = "This command only accepts one argument --init. Try again with `eslint-config-tsr --init`."

var Version = "dev"

type options struct {
	init        bool
	dir         string
	configPath  string
	dryRun      bool
	yes         bool
	manager     string
	skipInstall bool
	noColor     bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "eslint-config-tsr",
	Short: "Migrate a project's ESLint and Prettier config to the tsr preset",
	Long: `Replace a project's legacy ESLint and Prettier configuration with
.eslintrc.json and .prettierrc.json files built on the tsr preset, then
optionally install the required dev dependencies.

Run with --init inside the project directory.`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !opts.init {
			fmt.Fprintln(cmd.OutOrStdout(), usageHint)
			return nil
		}
		return runInit(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&opts.init, "init", false, "migrate the project in --dir to the tsr preset")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the planned changes and a diff without touching any file")
	f.BoolVarP(&opts.yes, "yes", "y", false, "install dependencies without asking")
	f.StringVar(&opts.manager, "manager", "", "package manager to install with (npm, pnpm or yarn)")
	f.BoolVar(&opts.skipInstall, "skip-install", false, "never install dependencies")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.dir, "dir", "C", ".", "project directory to migrate")
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to config file (default <dir>/tsr.yaml)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
