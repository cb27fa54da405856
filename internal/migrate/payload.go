package migrate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// LintConfigFile is the lint config written by a migration.
	LintConfigFile = ".eslintrc.json"
	// FormatterConfigFile is the formatter config written by a migration.
	FormatterConfigFile = ".prettierrc.json"

	DefaultPreset = "tsr"
	DefaultParser = "@typescript-eslint/parser"
)

//go:embed templates/prettierrc.json
var formatterTemplate string

// LintPayload renders the new lint config. The clause is appended as an extra
// top-level field only when it is non-empty.
func LintPayload(opts Options, clause Clause) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  \"extends\": %q,\n", opts.preset())
	fmt.Fprintf(&b, "  \"parser\": %q", opts.parser())
	if !clause.Empty() {
		b.WriteString(",\n  ")
		b.WriteString(clause.Text)
	}
	b.WriteString("\n}")
	return b.String()
}

// FormatterPayload returns the fixed formatter config.
func FormatterPayload() string {
	return formatterTemplate
}

// ValidPayload reports an error if text is not a single JSON object.
func ValidPayload(text string) error {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return fmt.Errorf("payload is not a JSON object: %w", err)
	}
	return nil
}
