// Package migrate replaces legacy ESLint and Prettier configuration with
// configs that extend a shared preset.
//
// The pipeline is: list entries -> resolve legacy file -> read -> extract
// ignore patterns -> synthesize payloads -> sweep old files -> write new ones.
// Plan does everything up to the sweep without mutating anything; Apply
// performs the sweep and writes, recording one Result per operation.
package migrate

import (
	"fmt"
)

// Entry is a single name in the working directory.
type Entry struct {
	Name string
	Dir  bool
}

// Workspace is the file-system surface a migration reads from and acts on.
// It is rooted at a single directory and never recurses.
type Workspace interface {
	Entries() ([]Entry, error)
	ReadText(name string) (string, error)
	Remove(name string) error
	Append(name, text string) error
}

// Protector decides whether a swept name must be left in place.
type Protector interface {
	Protects(name string) bool
}

// Options carries the fixed settings injected at startup.
type Options struct {
	Preset  string
	Parser  string
	Sweep   []string
	Protect Protector
}

func (o Options) preset() string {
	if o.Preset == "" {
		return DefaultPreset
	}
	return o.Preset
}

func (o Options) parser() string {
	if o.Parser == "" {
		return DefaultParser
	}
	return o.Parser
}

func (o Options) sweep() []string {
	if o.Sweep == nil {
		return DefaultSweep()
	}
	return o.Sweep
}

// Migration is the computed, not yet applied, set of changes.
type Migration struct {
	// LegacyFile is the resolved legacy config, or "" if none was found.
	LegacyFile string
	Clause     Clause

	LintConfig      string
	FormatterConfig string

	// Remove lists swept names in listing order.
	Remove []string
	// Kept lists swept names left in place by the Protector.
	Kept []string
	// Skipped lists matching directories, which are never removed.
	Skipped []string

	Warnings []string
}

// Plan computes a Migration from the current contents of ws.
// Only listing errors and invalid sweep fragments are returned; an unreadable
// legacy file is downgraded to a warning and treated as empty.
func Plan(ws Workspace, opts Options) (*Migration, error) {
	entries, err := ws.Entries()
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	var files, dirs []string
	for _, e := range entries {
		if e.Dir {
			dirs = append(dirs, e.Name)
		} else {
			files = append(files, e.Name)
		}
	}

	m := &Migration{LegacyFile: ResolveLegacyFile(files)}

	var text string
	if m.LegacyFile != "" {
		text, err = ws.ReadText(m.LegacyFile)
		if err != nil {
			m.Warnings = append(m.Warnings, fmt.Sprintf("could not read %s, ignore patterns not carried over: %v", m.LegacyFile, err))
			text = ""
		}
	}

	m.Clause = ExtractIgnorePatterns(text)
	m.LintConfig = LintPayload(opts, m.Clause)
	m.FormatterConfig = FormatterPayload()
	if err := ValidPayload(m.LintConfig); err != nil {
		m.Warnings = append(m.Warnings, fmt.Sprintf("%s will not be valid JSON (carried over %s): %v", LintConfigFile, m.Clause.Text, err))
	}

	targets, err := SweepTargets(files, opts.sweep())
	if err != nil {
		return nil, err
	}
	for _, t := range targets {
		if opts.Protect != nil && opts.Protect.Protects(t) {
			m.Kept = append(m.Kept, t)
			continue
		}
		m.Remove = append(m.Remove, t)
	}

	m.Skipped, err = SweepTargets(dirs, opts.sweep())
	if err != nil {
		return nil, err
	}

	removed := make(map[string]bool, len(m.Remove))
	for _, n := range m.Remove {
		removed[n] = true
	}
	for _, out := range []string{LintConfigFile, FormatterConfigFile} {
		if contains(files, out) && !removed[out] {
			m.Warnings = append(m.Warnings, fmt.Sprintf("%s exists and is not swept, new content will be appended to it", out))
		}
	}

	return m, nil
}

// Apply removes every swept name and then writes both payloads.
// A failed operation is recorded and never stops the ones after it.
func Apply(ws Workspace, m *Migration) *Report {
	r := &Report{}
	for _, n := range m.Kept {
		r.add(ActionKeep, n, nil)
	}
	for _, n := range m.Skipped {
		r.add(ActionSkip, n, nil)
	}
	for _, n := range m.Remove {
		r.add(ActionRemove, n, ws.Remove(n))
	}
	r.add(ActionWrite, LintConfigFile, ws.Append(LintConfigFile, m.LintConfig))
	r.add(ActionWrite, FormatterConfigFile, ws.Append(FormatterConfigFile, m.FormatterConfig))
	return r
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
