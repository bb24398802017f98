package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

func TestCompletionPercentage_CountsPresentSections(t *testing.T) {
	tests := []struct {
		name    string
		profile *intake.Profile
		want    int
	}{
		{"nil profile", nil, 0},
		{"empty profile", &intake.Profile{}, 0},
		{"basics only", basicsProfile(45), 25},
		{"basics and values", withValues(basicsProfile(45), "travel"), 50},
		{"three sections", withPurpose(withValues(basicsProfile(45), "travel")), 75},
		{"all four", fullProfile(), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionPercentage(tt.profile))
		})
	}
}

func TestHasBasicContext_NeedsNameAndBirthDate(t *testing.T) {
	assert.False(t, HasBasicContext(nil))
	assert.False(t, HasBasicContext(&intake.Profile{}))
	assert.False(t, HasBasicContext(&intake.Profile{
		Basics: &intake.BasicContext{FirstName: "Dana"},
	}))
	assert.False(t, HasBasicContext(&intake.Profile{
		Basics: &intake.BasicContext{FirstName: "   ", BirthDate: birthDateForAge(40)},
	}))
	assert.True(t, HasBasicContext(basicsProfile(40)))
}

func TestSectionPresence_EmptySectionsDontCount(t *testing.T) {
	// A present-but-empty section struct is treated as absent.
	p := &intake.Profile{
		Values:  &intake.ValuesDiscovery{},
		Goals:   &intake.FinancialGoals{},
		Purpose: &intake.FinancialPurpose{Statement: "  "},
	}
	assert.False(t, HasValues(p))
	assert.False(t, HasGoals(p))
	assert.False(t, HasPurpose(p))
	assert.Equal(t, 0, CompletionPercentage(p))
}

func TestStatusMessage_TiersByScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  *intake.Profile
		contains string
	}{
		{"empty", &intake.Profile{}, "Not enough discovery data"},
		{"half complete", withValues(basicsProfile(45), "travel"), "Discovery in progress"},
		{"three quarters", withPurpose(withValues(basicsProfile(45), "travel")), "Comprehensive discovery profile"},
		{"complete", fullProfile(), "Comprehensive discovery profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, StatusMessage(tt.profile), tt.contains)
		})
	}
}

func TestMissingDataSuggestions_FixedOrderOnePerSection(t *testing.T) {
	got := MissingDataSuggestions(&intake.Profile{})
	assert.Len(t, got, 4)
	assert.Contains(t, got[0], "basic information")
	assert.Contains(t, got[1], "values")
	assert.Contains(t, got[2], "goal")
	assert.Contains(t, got[3], "purpose")
}

func TestMissingDataSuggestions_BirthDateSpecificNudge(t *testing.T) {
	// A first name without a birth date gets the birth-date wording instead
	// of the generic basic-info one.
	p := &intake.Profile{Basics: &intake.BasicContext{FirstName: "Dana"}}
	got := MissingDataSuggestions(p)
	assert.NotEmpty(t, got)
	assert.Contains(t, got[0], "birth date")
	assert.False(t, strings.Contains(got[0], "starting with your name"))
}

func TestMissingDataSuggestions_CompleteProfileYieldsNone(t *testing.T) {
	assert.Empty(t, MissingDataSuggestions(fullProfile()))
}
