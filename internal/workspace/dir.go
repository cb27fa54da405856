package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/re-cinq/eslint-config-tsr/internal/migrate"
)

// Dir is a migrate.Workspace rooted at a single directory.
type Dir struct {
	root string
}

// New returns a Dir rooted at root.
func New(root string) *Dir {
	return &Dir{root: root}
}

// Path returns the path of name inside the workspace.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.root, name)
}

// Entries lists the workspace directory without recursing.
func (d *Dir) Entries() ([]migrate.Entry, error) {
	des, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", d.root, err)
	}
	entries := make([]migrate.Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, migrate.Entry{Name: de.Name(), Dir: de.IsDir()})
	}
	return entries, nil
}

// ReadText returns the contents of name.
func (d *Dir) ReadText(name string) (string, error) {
	data, err := os.ReadFile(d.Path(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Remove unlinks name.
func (d *Dir) Remove(name string) error {
	return os.Remove(d.Path(name))
}

// Append appends text to name, creating it if needed.
func (d *Dir) Append(name, text string) error {
	f, err := os.OpenFile(d.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Exists reports whether name is present in the workspace.
func (d *Dir) Exists(name string) bool {
	_, err := os.Stat(d.Path(name))
	return err == nil
}
