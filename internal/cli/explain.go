package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const explainText = `eslint-config-tsr: migrate a project to the tsr lint preset

PURPOSE
  eslint-config-tsr --init replaces a project's legacy ESLint and Prettier
  configuration with two new files: .eslintrc.json, which extends the tsr
  preset, and .prettierrc.json, a fixed formatter config. Ignore patterns
  from the old lint config are carried over. Afterwards it offers to install
  the dev dependencies the preset needs.

COMMANDS
  --init      Run the migration in the current directory (or -C <dir>).
              Without --init the command prints a usage hint and changes
              nothing.
  schema      Output the JSON Schema of tsr.yaml to stdout.
  validate    Validate tsr.yaml and print specific errors, or "valid".
  version     Print the version.
  explain     Print this reference (what you are reading now).

MIGRATION
  1. Resolve the legacy config. Only these exact names count, first match
     wins: .eslintrc.js, .eslintrc.cjs, .eslintrc.yaml, .eslintrc.yml,
     .eslintrc.json.
  2. Extract the ignore patterns from its text. A line like
     "ignorePattern": ["dist"] is carried over as is (single quotes become
     double quotes). Otherwise any ignorePattern...[...] text is reduced to
     its bracketed list and written as "ignorePatterns": [...].
  3. Remove every file whose name contains .eslintrc, .prettierrc or
     .prettier.config. The fragments are regular expressions, so "." matches
     any character: my.eslintrc.bak.txt is removed too. Directories are
     never removed.
  4. Append the new .eslintrc.json, then .prettierrc.json.

  Each removal and write is reported on its own line. A failure is reported
  and the remaining steps still run; the exit status is non-zero if anything
  failed.

FLAGS
  -C, --dir          project directory (default .)
  -c, --config       config file (default <dir>/tsr.yaml)
      --dry-run      print the plan and a diff of both output files, change nothing
  -y, --yes          install dependencies without asking
      --manager      npm, pnpm or yarn; skips the package manager question
      --skip-install never install dependencies
      --no-color     plain output

  When stdin is not a terminal the install step is skipped unless --yes is
  given. --yes without a manager installs with npm.

PROTECTING FILES (.tsrkeep)
  Names matching a pattern in <dir>/.tsrkeep (gitignore syntax) are left in
  place and reported as "keep".

CONFIG FORMAT (tsr.yaml, optional)
  preset: tsr                          # "extends" of .eslintrc.json
  parser: "@typescript-eslint/parser"  # "parser" of .eslintrc.json
  manager: pnpm                        # npm, pnpm or yarn
  packages:                            # dev dependencies to install
    - eslint
    - prettier
  sweep:                               # name fragments selecting files to remove
    - .eslintrc
    - .prettierrc
    - .prettier.config

  Keys that are absent keep their defaults. Unknown keys are errors.`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print a reference for eslint-config-tsr",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
