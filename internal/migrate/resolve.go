package migrate

// LegacyBase is the base name shared by every legacy ESLint config file.
const LegacyBase = ".eslintrc"

// legacyExtensions lists recognized legacy config extensions, highest priority first.
var legacyExtensions = [...]string{"js", "cjs", "yaml", "yml", "json"}

// LegacyExtensions returns the recognized legacy extensions in priority order.
func LegacyExtensions() []string {
	return append([]string(nil), legacyExtensions[:]...)
}

// ResolveLegacyFile returns the legacy config file with the highest-priority
// extension present in names, or "" if there is none.
// Only exact "<base>.<ext>" names count. Listing order does not matter.
func ResolveLegacyFile(names []string) string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	for _, ext := range legacyExtensions {
		candidate := LegacyBase + "." + ext
		if present[candidate] {
			return candidate
		}
	}
	return ""
}
