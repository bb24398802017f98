package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

func longFlexibleGoal(id string) intake.Goal {
	return intake.Goal{
		ID: id, Category: intake.GoalRetirement, Priority: intake.PriorityMedium,
		Horizon: intake.HorizonLong, Flexibility: intake.FlexFlexible,
	}
}

// --- Income strategy ---

func TestDeriveIncomeStrategy_SecurityValuesMeanStability(t *testing.T) {
	e := newTestEngine()
	p := withValues(basicsProfile(45), "financial_security", "stability", "travel")

	got := e.deriveIncomeStrategy(p)

	assert.Equal(t, IncomeStabilityFocused, got.Value)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
	assert.Contains(t, got.Rationale, "Security")
}

func TestDeriveIncomeStrategy_GuaranteeLeanAloneIsMediumConfidence(t *testing.T) {
	e := newTestEngine()
	p := withPurpose(basicsProfile(45),
		intake.TradeoffLeaning{Axis: intake.AxisGuaranteesVsGrowth, Toward: "guarantees", Strength: 4})

	got := e.deriveIncomeStrategy(p)

	assert.Equal(t, IncomeStabilityFocused, got.Value)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
}

func TestDeriveIncomeStrategy_LongFlexibleGoalsMeanGrowth(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45), longFlexibleGoal("g1"), longFlexibleGoal("g2"))

	got := e.deriveIncomeStrategy(p)

	assert.Equal(t, IncomeGrowthFocused, got.Value)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
}

func TestDeriveIncomeStrategy_GrowthLeanPlusLongGoalsIsHighConfidence(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45), longFlexibleGoal("g1"))
	withPurpose(p, intake.TradeoffLeaning{Axis: intake.AxisGuaranteesVsGrowth, Toward: "growth", Strength: 3})

	got := e.deriveIncomeStrategy(p)

	assert.Equal(t, IncomeGrowthFocused, got.Value)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestDeriveIncomeStrategy_NoSignalsDefaultsBalancedLow(t *testing.T) {
	e := newTestEngine()
	p := withPurpose(basicsProfile(45)) // statement only, no tradeoffs

	got := e.deriveIncomeStrategy(p)

	assert.Equal(t, IncomeBalanced, got.Value)
	assert.Equal(t, ConfidenceLow, got.Confidence)
	assert.Contains(t, got.Rationale, "default")
}

func TestDeriveIncomeStrategy_WeakLeanIsIgnored(t *testing.T) {
	e := newTestEngine()
	// Strength below the lean threshold carries no signal.
	p := withPurpose(basicsProfile(45),
		intake.TradeoffLeaning{Axis: intake.AxisGuaranteesVsGrowth, Toward: "guarantees", Strength: 2})

	got := e.deriveIncomeStrategy(p)

	assert.Equal(t, IncomeBalanced, got.Value)
}

// --- Timing sensitivity ---

func TestDeriveTimingSensitivity_UrgentGoalMeansHigh(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45), intake.Goal{
		ID: "g1", Category: intake.GoalMajorPurchase, Priority: intake.PriorityHigh,
		Horizon: intake.HorizonShort, Flexibility: intake.FlexFlexible,
	})

	got := e.deriveTimingSensitivity(p)

	assert.Equal(t, SensitivityHigh, got.Value)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestDeriveTimingSensitivity_NearRetirementMeansHigh(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(63), longFlexibleGoal("g1"))

	got := e.deriveTimingSensitivity(p)

	assert.Equal(t, SensitivityHigh, got.Value)
	assert.Contains(t, got.Rationale, "near-retirement")
}

func TestDeriveTimingSensitivity_AllRelaxedGoalsMeanLow(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45), longFlexibleGoal("g1"), intake.Goal{
		ID: "g2", Category: intake.GoalLegacyGiving, Priority: intake.PriorityLow,
		Horizon: intake.HorizonOngoing, Flexibility: intake.FlexDeferrable,
	})

	got := e.deriveTimingSensitivity(p)

	assert.Equal(t, SensitivityLow, got.Value)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestDeriveTimingSensitivity_MixedHorizonsMeanMedium(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45), longFlexibleGoal("g1"), intake.Goal{
		ID: "g2", Category: intake.GoalMajorPurchase, Priority: intake.PriorityMedium,
		Horizon: intake.HorizonShort, Flexibility: intake.FlexFlexible,
	})

	got := e.deriveTimingSensitivity(p)

	assert.Equal(t, SensitivityMedium, got.Value)
}

func TestDeriveTimingSensitivity_NoGoalsNoAgeDefaultsMediumLow(t *testing.T) {
	e := newTestEngine()
	p := &intake.Profile{Basics: &intake.BasicContext{FirstName: "Dana"}}

	got := e.deriveTimingSensitivity(p)

	assert.Equal(t, SensitivityMedium, got.Value)
	assert.Equal(t, ConfidenceLow, got.Confidence)
}

// --- Planning flexibility ---

func TestDerivePlanningFlexibility_MostlyFlexibleGoalsMeanHigh(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45),
		longFlexibleGoal("g1"), longFlexibleGoal("g2"), longFlexibleGoal("g3"))

	got := e.derivePlanningFlexibility(p)

	assert.Equal(t, FlexibilityHigh, got.Value)
	assert.Equal(t, ConfidenceHigh, got.Confidence)
}

func TestDerivePlanningFlexibility_MostlyFixedGoalsMeanLow(t *testing.T) {
	e := newTestEngine()
	fixed := intake.Goal{
		ID: "g1", Category: intake.GoalMajorPurchase, Priority: intake.PriorityHigh,
		Horizon: intake.HorizonShort, Flexibility: intake.FlexFixed,
	}
	fixed2, fixed3 := fixed, fixed
	fixed2.ID, fixed3.ID = "g2", "g3"
	p := withGoals(basicsProfile(45), fixed, fixed2, fixed3)

	got := e.derivePlanningFlexibility(p)

	assert.Equal(t, FlexibilityLow, got.Value)
}

func TestDerivePlanningFlexibility_DependentsDemoteOneNotch(t *testing.T) {
	e := newTestEngine()
	p := withGoals(basicsProfile(45), longFlexibleGoal("g1"), longFlexibleGoal("g2"))
	p.Basics.Dependents = []intake.Dependent{
		{Relationship: "child", FinanciallyDependent: true},
		{Relationship: "child", FinanciallyDependent: true},
	}

	got := e.derivePlanningFlexibility(p)

	assert.Equal(t, FlexibilityModerate, got.Value)
	assert.Contains(t, got.Rationale, "dependents")
}

func TestDerivePlanningFlexibility_NoGoalsDefaultsModerateLow(t *testing.T) {
	e := newTestEngine()

	got := e.derivePlanningFlexibility(basicsProfile(45))

	assert.Equal(t, FlexibilityModerate, got.Value)
	assert.Equal(t, ConfidenceLow, got.Confidence)
}

// --- Complexity tolerance ---

func TestDeriveComplexityTolerance_FromSimplicityAxis(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		toward   string
		strength int
		want     ToleranceLevel
		wantConf Confidence
	}{
		{"strong optimization lean", "optimization", 5, ToleranceHigh, ConfidenceHigh},
		{"moderate optimization lean", "optimization", 3, ToleranceHigh, ConfidenceMedium},
		{"simplicity lean", "simplicity", 3, ToleranceLow, ConfidenceMedium},
		{"strong simplicity lean", "simplicity", 4, ToleranceLow, ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := withPurpose(basicsProfile(45), intake.TradeoffLeaning{
				Axis: intake.AxisSimplicityVsOptimization, Toward: tt.toward, Strength: tt.strength,
			})
			got := e.deriveComplexityTolerance(p)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.wantConf, got.Confidence)
		})
	}
}

func TestDeriveComplexityTolerance_NoSignalDefaultsModerateLow(t *testing.T) {
	e := newTestEngine()

	got := e.deriveComplexityTolerance(basicsProfile(45))

	assert.Equal(t, ToleranceModerate, got.Value)
	assert.Equal(t, ConfidenceLow, got.Confidence)
}

// --- Guidance level ---

func TestDeriveGuidanceLevel_FromDelegateAxis(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		toward   string
		strength int
		want     GuidanceLevel
		wantConf Confidence
	}{
		{"strong delegate lean", "delegate", 5, GuidanceAdvisorLed, ConfidenceHigh},
		{"delegate lean", "delegate", 3, GuidanceAdvisorLed, ConfidenceMedium},
		{"control lean", "control", 3, GuidanceSelfDirected, ConfidenceMedium},
		{"strong control lean", "control", 4, GuidanceSelfDirected, ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := withPurpose(basicsProfile(45), intake.TradeoffLeaning{
				Axis: intake.AxisDelegateVsControl, Toward: tt.toward, Strength: tt.strength,
			})
			got := e.deriveGuidanceLevel(p)
			assert.Equal(t, tt.want, got.Value)
			assert.Equal(t, tt.wantConf, got.Confidence)
		})
	}
}

func TestDeriveGuidanceLevel_NoSignalDefaultsCollaborativeLow(t *testing.T) {
	e := newTestEngine()

	got := e.deriveGuidanceLevel(basicsProfile(45))

	assert.Equal(t, GuidanceCollaborative, got.Value)
	assert.Equal(t, ConfidenceLow, got.Confidence)
}

// --- Full profile assembly ---

func TestBuildStrategyProfile_AllDimensionsAlwaysPopulated(t *testing.T) {
	e := newTestEngine()

	// Minimal gate-passing data still produces all five dimensions.
	sp := e.buildStrategyProfile(withPurpose(basicsProfile(45)))

	assert.NotEmpty(t, sp.IncomeStrategy.Value)
	assert.NotEmpty(t, sp.TimingSensitivity.Value)
	assert.NotEmpty(t, sp.PlanningFlexibility.Value)
	assert.NotEmpty(t, sp.ComplexityTolerance.Value)
	assert.NotEmpty(t, sp.GuidanceLevel.Value)
	assert.NotEmpty(t, sp.Summary)
}

func TestSummarize_NamesAllFiveDimensions(t *testing.T) {
	e := newTestEngine()
	sp := e.buildStrategyProfile(fullProfile())

	assert.Contains(t, sp.Summary, "stability-focused")
	assert.Contains(t, sp.Summary, "timing sensitivity")
	assert.Contains(t, sp.Summary, "planning flexibility")
	assert.Contains(t, sp.Summary, "complexity tolerance")
	assert.Contains(t, sp.Summary, "advisor-led")
}
