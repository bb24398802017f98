package insights

import (
	"strings"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// The completion gate decides whether enough intake data exists to attempt
// insight generation. Each of the four sections contributes 25 points to a
// 0-100 completion score, but the score alone doesn't open the gate: basic
// context must be present together with at least one other section, because
// a name-and-birth-date-only record carries no planning signal.

// sectionPointValue is what each present section adds to the completion score.
const sectionPointValue = 25

// HasBasicContext reports whether the basic-context section is usable:
// at least a first name and a birth date.
func HasBasicContext(p *intake.Profile) bool {
	if p == nil || p.Basics == nil {
		return false
	}
	return strings.TrimSpace(p.Basics.FirstName) != "" && p.Basics.BirthDate != nil
}

// HasValues reports whether the values section is usable: a non-empty top 5.
func HasValues(p *intake.Profile) bool {
	if p == nil || p.Values == nil {
		return false
	}
	return len(p.Values.Top5) > 0
}

// HasGoals reports whether the goals section is usable: at least one goal.
func HasGoals(p *intake.Profile) bool {
	if p == nil || p.Goals == nil {
		return false
	}
	return len(p.Goals.Goals) > 0
}

// HasPurpose reports whether the purpose section is usable: a non-empty
// final statement.
func HasPurpose(p *intake.Profile) bool {
	if p == nil || p.Purpose == nil {
		return false
	}
	return strings.TrimSpace(p.Purpose.Statement) != ""
}

// CompletionPercentage returns the 0-100 completion score: 25 points per
// present section.
func CompletionPercentage(p *intake.Profile) int {
	score := 0
	for _, present := range []bool{HasBasicContext(p), HasValues(p), HasGoals(p), HasPurpose(p)} {
		if present {
			score += sectionPointValue
		}
	}
	return score
}

// HasEnoughData reports whether insight generation should be attempted.
// The gate opens only when basic context is present together with at least
// one other section — which also guarantees the completion score is >= 50,
// comfortably clearing the 25-point floor.
func HasEnoughData(p *intake.Profile) bool {
	if !HasBasicContext(p) {
		return false
	}
	return HasValues(p) || HasGoals(p) || HasPurpose(p)
}

// StatusMessage returns guidance text keyed by completion score. It always
// returns a message, regardless of whether the gate passes.
func StatusMessage(p *intake.Profile) string {
	score := CompletionPercentage(p)
	switch {
	case score < 25:
		return "Not enough discovery data yet. Complete your basic information plus at " +
			"least one discovery section (values, goals, or purpose) to unlock insights."
	case score < 75:
		return "Discovery in progress. Insights are available but reflect a partial " +
			"picture — complete the remaining sections to sharpen them."
	default:
		return "Comprehensive discovery profile. Insights reflect your full picture " +
			"of values, goals, and purpose."
	}
}

// MissingDataSuggestions returns one short imperative suggestion per absent
// section, in fixed order: basic info, values, goals, purpose. The list is
// built the same way whether or not the gate passes; a fully complete
// profile yields an empty list.
func MissingDataSuggestions(p *intake.Profile) []string {
	var suggestions []string

	if !HasBasicContext(p) {
		// A first name without a birth date gets the more specific nudge —
		// the birth date is what the age-based rules need.
		if p != nil && p.Basics != nil && strings.TrimSpace(p.Basics.FirstName) != "" {
			suggestions = append(suggestions, "Add your birth date so age-based planning rules can apply")
		} else {
			suggestions = append(suggestions, "Complete your basic information, starting with your name and birth date")
		}
	}
	if !HasValues(p) {
		suggestions = append(suggestions, "Sort the values cards and pick your top 5")
	}
	if !HasGoals(p) {
		suggestions = append(suggestions, "Add at least one financial goal with its priority and time horizon")
	}
	if !HasPurpose(p) {
		suggestions = append(suggestions, "Write your financial purpose statement")
	}

	return suggestions
}

// inputSummary builds the summary block embedded in every result.
func inputSummary(p *intake.Profile) InputSummary {
	return InputSummary{
		HasBasicContext:      HasBasicContext(p),
		HasValues:            HasValues(p),
		HasGoals:             HasGoals(p),
		HasPurpose:           HasPurpose(p),
		CompletionPercentage: CompletionPercentage(p),
	}
}
