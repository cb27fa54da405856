// Package report renders migration plans and results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/re-cinq/eslint-config-tsr/internal/migrate"
)

// verbWidth pads action verbs so paths line up.
const verbWidth = 6

// Printer writes styled report lines to a single writer.
type Printer struct {
	w io.Writer

	header lipgloss.Style
	remove lipgloss.Style
	write  lipgloss.Style
	keep   lipgloss.Style
	fail   lipgloss.Style
	added  lipgloss.Style
	gone   lipgloss.Style
}

// New returns a Printer for w. Colors are used only when color is true and w
// is a terminal that supports them.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		remove: r.NewStyle().Foreground(lipgloss.Color("204")),
		write:  r.NewStyle().Foreground(lipgloss.Color("78")),
		keep:   r.NewStyle().Foreground(lipgloss.Color("81")),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("197")),
		added:  r.NewStyle().Foreground(lipgloss.Color("78")),
		gone:   r.NewStyle().Foreground(lipgloss.Color("204")),
	}
}

func (p *Printer) styleFor(verb string) lipgloss.Style {
	switch migrate.Action(verb) {
	case migrate.ActionRemove:
		return p.remove
	case migrate.ActionWrite:
		return p.write
	case migrate.ActionKeep, migrate.ActionSkip:
		return p.keep
	}
	if verb == "fail" {
		return p.fail
	}
	return p.header
}

// Line prints "  <verb> <text>" with the verb styled and padded.
func (p *Printer) Line(verb, text string) {
	pad := ""
	if n := verbWidth - len(verb); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(p.w, "  %s%s %s\n", p.styleFor(verb).Render(verb), pad, text)
}

// Header prints a bold heading line.
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.w, p.header.Render(text))
}

// Report prints one line per operation in the order they happened.
func (p *Printer) Report(r *migrate.Report) {
	for _, res := range r.Results {
		if res.Err != nil {
			p.Line("fail", fmt.Sprintf("%s %s: %v", res.Action, res.Path, res.Err))
			continue
		}
		p.Line(string(res.Action), res.Path+note(res.Action))
	}
}

func note(a migrate.Action) string {
	switch a {
	case migrate.ActionKeep:
		return " (protected)"
	case migrate.ActionSkip:
		return " (directory)"
	}
	return ""
}

// Plan prints what Apply would do and a line diff of each output file
// against current, which maps file names to their contents on disk.
func (p *Printer) Plan(m *migrate.Migration, current map[string]string) {
	p.Header("Dry run, nothing will be changed")
	if m.LegacyFile != "" {
		p.Line("read", fmt.Sprintf("%s (ignore patterns: %s)", m.LegacyFile, describeClause(m.Clause)))
	}
	for _, n := range m.Kept {
		p.Line(string(migrate.ActionKeep), n+note(migrate.ActionKeep))
	}
	for _, n := range m.Skipped {
		p.Line(string(migrate.ActionSkip), n+note(migrate.ActionSkip))
	}
	for _, n := range m.Remove {
		p.Line(string(migrate.ActionRemove), n)
	}

	removed := make(map[string]bool, len(m.Remove))
	for _, n := range m.Remove {
		removed[n] = true
	}
	outputs := []struct{ name, text string }{
		{migrate.LintConfigFile, m.LintConfig},
		{migrate.FormatterConfigFile, m.FormatterConfig},
	}
	for _, out := range outputs {
		p.Line(string(migrate.ActionWrite), out.name)
		old := current[out.name]
		next := out.text
		if !removed[out.name] {
			next = old + out.text
		}
		p.Diff(old, next)
	}
}

func describeClause(c migrate.Clause) string {
	if c.Empty() {
		return "none"
	}
	return fmt.Sprintf("%s, %s match", c.Text, c.Strategy)
}

// Diff prints a line diff from old to next, indented under the last line.
func (p *Printer) Diff(old, next string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, next)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(p.w, "    "+p.added.Render("+ "+line))
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(p.w, "    "+p.gone.Render("- "+line))
			default:
				fmt.Fprintln(p.w, "      "+line)
			}
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
