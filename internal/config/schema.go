package config

import "encoding/json"

// Schema returns a JSON Schema describing tsr.yaml as indented JSON.
func Schema() []byte {
	stringList := func(desc string) map[string]any {
		return map[string]any{
			"type":        "array",
			"description": desc,
			"items":       map[string]any{"type": "string", "minLength": 1},
		}
	}

	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "tsr.yaml",
		"description":          "Optional configuration for eslint-config-tsr --init. Every key is optional; absent keys keep their defaults.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"preset": map[string]any{
				"type":        "string",
				"description": "Value of \"extends\" in the generated .eslintrc.json.",
				"default":     "tsr",
			},
			"parser": map[string]any{
				"type":        "string",
				"description": "Value of \"parser\" in the generated .eslintrc.json.",
				"default":     "@typescript-eslint/parser",
			},
			"packages": stringList("Development dependencies offered for installation after the migration, in install order."),
			"manager": map[string]any{
				"type":        "string",
				"description": "Package manager used without asking. When unset the user is prompted.",
				"enum":        []string{"npm", "pnpm", "yarn"},
			},
			"sweep": stringList("Name fragments, compiled as regular expressions, that select old config files for removal. Any file whose name contains a match is deleted."),
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}
