package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/re-cinq/eslint-config-tsr/internal/migrate"
)

// DefaultFile is the config file looked up inside the target directory.
const DefaultFile = "tsr.yaml"

type Config struct {
	Preset   string   `yaml:"preset"`
	Parser   string   `yaml:"parser"`
	Packages []string `yaml:"packages"`
	Manager  string   `yaml:"manager,omitempty"`
	Sweep    []string `yaml:"sweep"`
}

var defaultPackages = []string{
	"prettier",
	"prettier-plugin-tailwindcss",
	"prettier-plugin-sort-json",
	"eslint-config-tsr",
	"@stylistic/eslint-plugin",
	"@typescript-eslint/eslint-plugin",
	"eslint",
	"eslint-plugin-tailwindcss",
	"eslint-plugin-hooks",
	"eslint-plugin-perfectionist",
	"eslint-plugin-react",
	"eslint-plugin-react-hooks",
	"eslint-plugin-sort-react-dependency-arrays",
	"eslint-plugin-unused-imports",
	"@typescript-eslint/parser",
	"eslint-config-prettier",
}

// Defaults returns the configuration used when no tsr.yaml exists.
func Defaults() *Config {
	return &Config{
		Preset:   migrate.DefaultPreset,
		Parser:   migrate.DefaultParser,
		Packages: append([]string(nil), defaultPackages...),
		Sweep:    migrate.DefaultSweep(),
	}
}

// Load reads path over the defaults. A missing file yields Defaults; keys
// absent from the file keep their default values. Unknown keys are errors.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into migration options.
func (c *Config) Options() migrate.Options {
	return migrate.Options{
		Preset: c.Preset,
		Parser: c.Parser,
		Sweep:  c.Sweep,
	}
}
