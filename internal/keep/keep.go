package keep

import (
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

// File is the name of the file listing names the sweep must leave in place.
const File = ".tsrkeep"

// Matcher checks names against .tsrkeep patterns.
type Matcher struct {
	gi *gitignore.GitIgnore
}

// Load loads .tsrkeep from the given directory.
// Returns a Matcher that matches nothing if no .tsrkeep exists.
func Load(dir string) (*Matcher, error) {
	path := filepath.Join(dir, File)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Matcher{}, nil
	}

	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	return &Matcher{gi: gi}, nil
}

// Protects reports whether name matches a .tsrkeep pattern.
func (m *Matcher) Protects(name string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(name)
}
