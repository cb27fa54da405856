package migrate

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidFragment is returned when a sweep fragment is not a valid pattern.
var ErrInvalidFragment = errors.New("invalid sweep fragment")

// DefaultSweep returns the name fragments swept before new configs are written:
// the lint config base name and both historical formatter config spellings.
func DefaultSweep() []string {
	return []string{LegacyBase, ".prettierrc", ".prettier.config"}
}

// CompileSweep compiles fragments as unanchored regular expressions.
// Fragments are not escaped, so "." matches any character.
func CompileSweep(fragments []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(fragments))
	for _, f := range fragments {
		re, err := regexp.Compile(f)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidFragment, f, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// SweepTargets returns, in listing order, every name matching any fragment
// anywhere in the name. Matching is deliberately broad: "my.eslintrc.bak.txt"
// is a target of ".eslintrc".
func SweepTargets(names, fragments []string) ([]string, error) {
	res, err := CompileSweep(fragments)
	if err != nil {
		return nil, err
	}
	var targets []string
	for _, n := range names {
		for _, re := range res {
			if re.MatchString(n) {
				targets = append(targets, n)
				break
			}
		}
	}
	return targets, nil
}
