package life

import (
	"fmt"
	"regexp"
	"strconv"

	"lifegrid/pkg/core"
)

// Rule is a birth/survival rule for the binary family.
//
// Survival is kept as an inclusive range taken from the first and last digit
// of the S group, so "S1357" survives on any count in [1,7] rather than only
// the listed odd counts. B3/S23 and other contiguous rules are unaffected.
type Rule struct {
	Birth       int
	SurvivalMin int
	SurvivalMax int
}

// DefaultRule returns Conway's B3/S23.
func DefaultRule() Rule {
	return Rule{Birth: 3, SurvivalMin: 2, SurvivalMax: 3}
}

var ruleSyntax = regexp.MustCompile(`^B([0-9]+)/S([0-9]+)$`)

// ParseRule parses a rule of the form B<digits>/S<digits>. The B group is read
// as a single number.
func ParseRule(s string) (Rule, error) {
	m := ruleSyntax.FindStringSubmatch(s)
	if m == nil {
		return Rule{}, core.InvalidRuleFormatf("%q does not match B<digits>/S<digits>", s)
	}
	birth, err := strconv.Atoi(m[1])
	if err != nil {
		return Rule{}, core.InvalidRuleFormatf("birth count %q: %v", m[1], err)
	}
	survival := m[2]
	return Rule{
		Birth:       birth,
		SurvivalMin: int(survival[0] - '0'),
		SurvivalMax: int(survival[len(survival)-1] - '0'),
	}, nil
}

// MustParseRule is ParseRule for constant rule strings.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String formats the rule so that ParseRule returns it unchanged.
func (r Rule) String() string {
	return fmt.Sprintf("B%d/S%d%d", r.Birth, r.SurvivalMin, r.SurvivalMax)
}

// Survives reports whether a live cell with total live neighbors stays on.
func (r Rule) Survives(total int) bool {
	return total >= r.SurvivalMin && total <= r.SurvivalMax
}

// Born reports whether a dead cell with total live neighbors turns on.
func (r Rule) Born(total int) bool {
	return total == r.Birth
}
