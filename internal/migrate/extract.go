package migrate

import (
	"regexp"
	"strings"
)

// Strategy identifies which matcher produced an ignore-pattern clause.
type Strategy int

const (
	StrategyNone Strategy = iota
	// StrategyStrict matched a quoted "ignorePattern" key; the captured key is kept verbatim.
	StrategyStrict
	// StrategyLoose matched an unquoted key; the emitted key is always "ignorePatterns".
	StrategyLoose
)

func (s Strategy) String() string {
	switch s {
	case StrategyStrict:
		return "strict"
	case StrategyLoose:
		return "loose"
	default:
		return "none"
	}
}

// sameLine matches a run of characters that stays on one line. Carriage
// returns and the Unicode line and paragraph separators end a line as well
// as "\n", so "." cannot be used.
const sameLine = `[^\r\n\x{2028}\x{2029}]*`

var (
	strictIgnorePattern = regexp.MustCompile(`"ignorePattern"` + sameLine + `\[` + sameLine + `\]`)
	looseIgnorePattern  = regexp.MustCompile(`ignorePattern` + sameLine + `\[` + sameLine + `\]`)
	bracketedList       = regexp.MustCompile(`\[` + sameLine + `\]`)
)

// Clause is a key/value fragment carried from a legacy config into the new one.
// The zero value is the empty clause.
type Clause struct {
	Text     string
	Strategy Strategy
}

// Empty reports whether the clause carries nothing forward.
func (c Clause) Empty() bool {
	return c.Text == ""
}

func (c Clause) String() string {
	return c.Text
}

// ExtractIgnorePatterns pulls the ignore-pattern declaration out of raw legacy
// config text. It never fails; no match yields the empty clause.
//
// The strict path keeps whatever key spelling it captured ("ignorePattern"),
// while the loose path always emits "ignorePatterns".
func ExtractIgnorePatterns(text string) Clause {
	if m := strictIgnorePattern.FindString(text); m != "" {
		return Clause{Text: normalizeQuotes(m), Strategy: StrategyStrict}
	}
	if m := looseIgnorePattern.FindString(text); m != "" {
		if list := bracketedList.FindString(m); list != "" {
			return Clause{Text: `"ignorePatterns": ` + normalizeQuotes(list), Strategy: StrategyLoose}
		}
	}
	return Clause{}
}

func normalizeQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `"`)
}
