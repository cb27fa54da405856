// Package workspace provides the file-system side of a migration and the
// shared stderr helpers used by the command layer.
package workspace

import (
	"fmt"
	"os"
)

// LogError writes a formatted line to stderr.
func LogError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Warn writes a "warning: " prefixed line to stderr.
func Warn(format string, args ...any) {
	LogError("warning: "+format, args...)
}
