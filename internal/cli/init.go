package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/re-cinq/eslint-config-tsr/internal/config"
	"github.com/re-cinq/eslint-config-tsr/internal/install"
	"github.com/re-cinq/eslint-config-tsr/internal/keep"
	"github.com/re-cinq/eslint-config-tsr/internal/migrate"
	"github.com/re-cinq/eslint-config-tsr/internal/prompt"
	"github.com/re-cinq/eslint-config-tsr/internal/report"
	"github.com/re-cinq/eslint-config-tsr/internal/workspace"
)

const (
	confirmInstall = "Do you want to install the required packages now?"
	chooseManager  = "Choose a package manager to install dependencies:"
)

// isInteractive reports whether answers can be read from in.
var isInteractive = func(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && prompt.Interactive(f)
}

// runInit migrates the project directory and then offers to install the
// preset's dependencies.
func runInit(ctx context.Context, in io.Reader, out, errOut io.Writer, o options) error {
	dir, err := resolveDir(o)
	if err != nil {
		return err
	}
	cfgPath, err := resolveConfigPath(o)
	if err != nil {
		return err
	}
	cfg, err := loadAndValidateConfig(cfgPath)
	if err != nil {
		return err
	}
	manager, err := chosenManager(o, cfg)
	if err != nil {
		return err
	}

	protect, err := keep.Load(dir)
	if err != nil {
		return err
	}
	migOpts := cfg.Options()
	migOpts.Protect = protect

	ws := workspace.New(dir)
	m, err := migrate.Plan(ws, migOpts)
	if err != nil {
		return fmt.Errorf("planning migration: %w", err)
	}
	for _, w := range m.Warnings {
		workspace.Warn("%s", w)
	}

	p := report.New(out, !o.noColor)

	if o.dryRun {
		p.Plan(m, currentOutputs(ws))
		return nil
	}

	rep := migrate.Apply(ws, m)
	p.Report(rep)

	applyErr := rep.Err()
	installErr := installPackages(ctx, in, out, errOut, p, dir, cfg.Packages, manager, o)
	switch {
	case applyErr != nil && installErr != nil:
		return fmt.Errorf("%w; %w", applyErr, installErr)
	case applyErr != nil:
		return applyErr
	case installErr != nil:
		return installErr
	}
	fmt.Fprintf(out, "\nDone. %d removed, %d written.\n", len(rep.Removed()), len(rep.Written()))
	return nil
}

// chosenManager returns the manager named by --manager or the config, or ""
// when the user should be asked.
func chosenManager(o options, cfg *config.Config) (install.Manager, error) {
	name := o.manager
	if name == "" {
		name = cfg.Manager
	}
	if name == "" {
		return "", nil
	}
	return install.ParseManager(name)
}

// currentOutputs reads the output files that already exist, for diffing.
func currentOutputs(ws *workspace.Dir) map[string]string {
	current := make(map[string]string)
	for _, name := range []string{migrate.LintConfigFile, migrate.FormatterConfigFile} {
		if !ws.Exists(name) {
			continue
		}
		text, err := ws.ReadText(name)
		if err != nil {
			workspace.Warn("%s", err)
			continue
		}
		current[name] = text
	}
	return current
}

func installPackages(ctx context.Context, in io.Reader, out, errOut io.Writer, p *report.Printer, dir string, pkgs []string, m install.Manager, o options) error {
	if len(pkgs) == 0 {
		return nil
	}
	fmt.Fprintf(out, "\nThe following dependencies are required:\n\n%s\n\n", strings.Join(pkgs, " "))
	if o.skipInstall {
		return nil
	}

	if !o.yes {
		if !isInteractive(in) {
			p.Line("skip", "install (stdin is not a terminal, pass --yes to install)")
			return nil
		}
		pr := prompt.New(in, out)
		ok, err := pr.Confirm(confirmInstall)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if m == "" {
			managers := install.Managers()
			names := make([]string, len(managers))
			for i, mg := range managers {
				names[i] = string(mg)
			}
			idx, err := pr.Select(chooseManager, names)
			if err != nil {
				return fmt.Errorf("choosing package manager: %w", err)
			}
			m = managers[idx]
		}
	}
	if m == "" {
		m = install.NPM
	}

	p.Line("run", strings.Join(install.Args(m, pkgs), " "))
	return install.Run(ctx, dir, m, pkgs, out, errOut)
}
