package cli

import (
	"fmt"
	"path/filepath"

	"github.com/re-cinq/eslint-config-tsr/internal/config"
	"github.com/re-cinq/eslint-config-tsr/internal/workspace"
)

// loadAndValidateConfig loads a config file and validates it, printing errors to stderr.
func loadAndValidateConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		workspace.LogError("Error: %s", err)
		return nil, err
	}

	errs := config.Validate(cfg)
	if len(errs) > 0 {
		for _, e := range errs {
			workspace.LogError("Error: %s", e)
		}
		return nil, fmt.Errorf("%d validation error(s)", len(errs))
	}

	return cfg, nil
}

// resolveDir returns the absolute project directory.
func resolveDir(o options) (string, error) {
	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return dir, nil
}

// resolveConfigPath returns --config, or tsr.yaml inside the project directory.
func resolveConfigPath(o options) (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	dir, err := resolveDir(o)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.DefaultFile), nil
}
