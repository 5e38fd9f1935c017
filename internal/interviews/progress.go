package interviews

import "math"

// Expected answer counts per interview type. The upgraded count is the lite
// set plus the long-form modules answered after the upgrade.
const (
	expectedLite     = 37
	expectedDeep     = 150
	expectedUpgraded = 37 + 144
)

// ExpectedAnswerCount returns the fixed expected answer count for a type.
func ExpectedAnswerCount(interviewType string) int {
	switch interviewType {
	case TypeDeep:
		return expectedDeep
	case TypeLiteUpgraded:
		return expectedUpgraded
	default:
		return expectedLite
	}
}

// Completeness returns the data-completeness percentage for the interview,
// capped at 100.
func (i *Interview) Completeness() int {
	expected := ExpectedAnswerCount(i.Type)
	if expected <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(i.AnsweredCount()) / float64(expected)))
	if pct > 100 {
		return 100
	}
	return pct
}
