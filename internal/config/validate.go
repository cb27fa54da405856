package config

import (
	"fmt"

	"github.com/re-cinq/eslint-config-tsr/internal/install"
	"github.com/re-cinq/eslint-config-tsr/internal/migrate"
)

// Validate checks a loaded Config for semantic errors beyond what Load catches.
// Returns a list of human-readable error strings, one per issue.
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Preset == "" {
		errs = append(errs, "preset: required field is empty")
	}
	if cfg.Parser == "" {
		errs = append(errs, "parser: required field is empty")
	}
	if cfg.Manager != "" {
		if _, err := install.ParseManager(cfg.Manager); err != nil {
			errs = append(errs, fmt.Sprintf("manager: %s", err))
		}
	}

	for i, p := range cfg.Packages {
		if p == "" {
			errs = append(errs, fmt.Sprintf("packages[%d]: empty package name", i))
		}
	}

	for i, f := range cfg.Sweep {
		if f == "" {
			errs = append(errs, fmt.Sprintf("sweep[%d]: empty fragment matches every file", i))
			continue
		}
		if _, err := migrate.CompileSweep([]string{f}); err != nil {
			errs = append(errs, fmt.Sprintf("sweep[%d]: %s", i, err))
		}
	}

	return errs
}
