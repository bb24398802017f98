package insights

import (
	"fmt"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// The strategy profile generator maps intake signals to five independent
// behavioral dimensions. Every rule here is table- or threshold-driven;
// when the signals feeding a dimension are absent, the dimension falls back
// to a conservative default at low confidence rather than being dropped.

// minSecurityCards is how many top-5 cards in the security category count
// as a dominant security signal.
const minSecurityCards = 2

// leanThreshold is the minimum tradeoff strength (1-5) treated as a real
// leaning rather than noise.
const leanThreshold = 3

// strongLeanThreshold is the strength at which a leaning alone supports
// high confidence.
const strongLeanThreshold = 4

// buildStrategyProfile derives all five dimensions plus the summary line.
func (e *Engine) buildStrategyProfile(p *intake.Profile) StrategyProfile {
	sp := StrategyProfile{
		IncomeStrategy:      e.deriveIncomeStrategy(p),
		TimingSensitivity:   e.deriveTimingSensitivity(p),
		PlanningFlexibility: e.derivePlanningFlexibility(p),
		ComplexityTolerance: e.deriveComplexityTolerance(p),
		GuidanceLevel:       e.deriveGuidanceLevel(p),
	}
	sp.Summary = summarize(sp)
	return sp
}

// --- Signal helpers ---

// top5CategoryCounts tallies value categories across the client's top-5
// cards. Unknown card ids are skipped, not errors.
func top5CategoryCounts(p *intake.Profile) map[intake.ValueCategory]int {
	counts := make(map[intake.ValueCategory]int)
	if p == nil || p.Values == nil {
		return counts
	}
	for _, id := range p.Values.Top5 {
		if cat, ok := intake.CategoryOf(id); ok {
			counts[cat]++
		}
	}
	return counts
}

// leaning returns the client's leaning along one tradeoff axis, and false
// when the purpose section or that axis is absent.
func leaning(p *intake.Profile, axis intake.TradeoffAxis) (intake.TradeoffLeaning, bool) {
	if p == nil || p.Purpose == nil {
		return intake.TradeoffLeaning{}, false
	}
	for _, l := range p.Purpose.Tradeoffs {
		if l.Axis == axis && l.Strength >= leanThreshold {
			return l, true
		}
	}
	return intake.TradeoffLeaning{}, false
}

// goalsSkewLongAndFlexible reports whether a non-empty goal list is mostly
// long/ongoing horizon and mostly non-fixed flexibility.
func goalsSkewLongAndFlexible(goals []intake.Goal) bool {
	if len(goals) == 0 {
		return false
	}
	long, flexible := 0, 0
	for _, g := range goals {
		if g.Horizon == intake.HorizonLong || g.Horizon == intake.HorizonOngoing {
			long++
		}
		if g.Flexibility != intake.FlexFixed {
			flexible++
		}
	}
	return long*2 > len(goals) && flexible*2 > len(goals)
}

// --- Income strategy orientation ---

func (e *Engine) deriveIncomeStrategy(p *intake.Profile) Dimension[IncomeOrientation] {
	goals := p.GoalList()
	secCount := top5CategoryCounts(p)[intake.CategorySecurity]
	guaranteeLean, hasGuaranteeLean := leaning(p, intake.AxisGuaranteesVsGrowth)
	leansGuarantees := hasGuaranteeLean && guaranteeLean.Toward == "guarantees"
	leansGrowth := hasGuaranteeLean && guaranteeLean.Toward == "growth"
	longFlexible := goalsSkewLongAndFlexible(goals)

	switch {
	case secCount >= minSecurityCards || leansGuarantees:
		conf := ConfidenceMedium
		if secCount >= minSecurityCards && !longFlexible {
			conf = ConfidenceHigh
		}
		rationale := "Security-category values dominate your top 5"
		if leansGuarantees {
			rationale = "You lean toward guaranteed income over growth"
			if secCount >= minSecurityCards {
				rationale = "Security-category values dominate your top 5 and you lean toward guaranteed income"
			}
		}
		return Dimension[IncomeOrientation]{Value: IncomeStabilityFocused, Confidence: conf, Rationale: rationale}

	case longFlexible || leansGrowth:
		conf := ConfidenceMedium
		if longFlexible && leansGrowth {
			conf = ConfidenceHigh
		}
		rationale := "Your goals skew long-horizon and flexible"
		if leansGrowth && !longFlexible {
			rationale = "You lean toward growth over guarantees"
		}
		return Dimension[IncomeOrientation]{Value: IncomeGrowthFocused, Confidence: conf, Rationale: rationale}

	default:
		conf := ConfidenceMedium
		rationale := "Mixed signals across values and goals; a balanced income approach fits"
		if !HasValues(p) && !hasGuaranteeLean {
			conf = ConfidenceLow
			rationale = "No risk-comfort signals recorded yet; balanced is the default assumption"
		}
		return Dimension[IncomeOrientation]{Value: IncomeBalanced, Confidence: conf, Rationale: rationale}
	}
}

// --- Timing sensitivity ---

func (e *Engine) deriveTimingSensitivity(p *intake.Profile) Dimension[SensitivityLevel] {
	goals := p.GoalList()
	nearRetirement := e.isNearRetirement(p)
	hasAge := false
	if p != nil {
		_, hasAge = p.Basics.Age(e.clock())
	}

	urgentGoal := false
	for _, g := range goals {
		if g.Priority == intake.PriorityHigh && (g.Horizon == intake.HorizonShort || g.Flexibility == intake.FlexFixed) {
			urgentGoal = true
			break
		}
	}

	if urgentGoal || nearRetirement {
		conf := ConfidenceMedium
		if len(goals) > 0 && hasAge {
			conf = ConfidenceHigh
		}
		rationale := "A high-priority goal is short-horizon or fixed"
		if nearRetirement {
			rationale = "You are within the near-retirement age band"
			if urgentGoal {
				rationale = "You are near retirement age with a high-priority short-horizon or fixed goal"
			}
		}
		return Dimension[SensitivityLevel]{Value: SensitivityHigh, Confidence: conf, Rationale: rationale}
	}

	if len(goals) > 0 {
		allRelaxed := true
		for _, g := range goals {
			if g.Horizon == intake.HorizonShort || g.Horizon == intake.HorizonMid || g.Flexibility == intake.FlexFixed {
				allRelaxed = false
				break
			}
		}
		if allRelaxed {
			conf := ConfidenceMedium
			if hasAge {
				conf = ConfidenceHigh
			}
			return Dimension[SensitivityLevel]{
				Value:      SensitivityLow,
				Confidence: conf,
				Rationale:  "All goals are long-horizon or ongoing and none are fixed",
			}
		}
		return Dimension[SensitivityLevel]{
			Value:      SensitivityMedium,
			Confidence: ConfidenceMedium,
			Rationale:  "Goals mix near and far horizons without a high-priority deadline",
		}
	}

	conf := ConfidenceMedium
	rationale := "No urgent goals recorded and you are outside the near-retirement band"
	if !hasAge {
		conf = ConfidenceLow
		rationale = "No goals or birth date recorded; medium sensitivity is the default assumption"
	}
	return Dimension[SensitivityLevel]{Value: SensitivityMedium, Confidence: conf, Rationale: rationale}
}

// --- Planning flexibility ---

func (e *Engine) derivePlanningFlexibility(p *intake.Profile) Dimension[FlexibilityLevel] {
	goals := p.GoalList()
	dependents := 0
	if p != nil && p.Basics != nil {
		dependents = len(p.Basics.Dependents)
	}

	if len(goals) == 0 {
		return Dimension[FlexibilityLevel]{
			Value:      FlexibilityModerate,
			Confidence: ConfidenceLow,
			Rationale:  "No goals recorded; moderate flexibility is the default assumption",
		}
	}

	nonFixed := 0
	for _, g := range goals {
		if g.Flexibility != intake.FlexFixed {
			nonFixed++
		}
	}
	ratio := float64(nonFixed) / float64(len(goals))

	var value FlexibilityLevel
	var rationale string
	switch {
	case ratio >= 0.7:
		value = FlexibilityHigh
		rationale = "Most of your goals are flexible or deferrable"
	case ratio < 0.3:
		value = FlexibilityLow
		rationale = "Most of your goals are fixed in amount and timing"
	default:
		value = FlexibilityModerate
		rationale = "Your goals mix fixed and flexible commitments"
	}

	// Dependents reduce room to maneuver: two or more pull the assessment
	// down one notch.
	if dependents >= 2 && value != FlexibilityLow {
		if value == FlexibilityHigh {
			value = FlexibilityModerate
		} else {
			value = FlexibilityLow
		}
		rationale += fmt.Sprintf("; %d dependents reduce room to adjust", dependents)
	}

	conf := ConfidenceMedium
	if len(goals) >= 3 {
		conf = ConfidenceHigh
	}
	return Dimension[FlexibilityLevel]{Value: value, Confidence: conf, Rationale: rationale}
}

// --- Complexity tolerance ---

func (e *Engine) deriveComplexityTolerance(p *intake.Profile) Dimension[ToleranceLevel] {
	l, ok := leaning(p, intake.AxisSimplicityVsOptimization)
	if !ok {
		return Dimension[ToleranceLevel]{
			Value:      ToleranceModerate,
			Confidence: ConfidenceLow,
			Rationale:  "No planning-preference signals recorded; moderate tolerance is the default assumption",
		}
	}

	conf := ConfidenceMedium
	if l.Strength >= strongLeanThreshold {
		conf = ConfidenceHigh
	}
	if l.Toward == "optimization" {
		return Dimension[ToleranceLevel]{
			Value:      ToleranceHigh,
			Confidence: conf,
			Rationale:  "You lean toward optimization over simplicity",
		}
	}
	return Dimension[ToleranceLevel]{
		Value:      ToleranceLow,
		Confidence: conf,
		Rationale:  "You lean toward simplicity over optimization",
	}
}

// --- Guidance level ---

func (e *Engine) deriveGuidanceLevel(p *intake.Profile) Dimension[GuidanceLevel] {
	l, ok := leaning(p, intake.AxisDelegateVsControl)
	if !ok {
		// Conservative default: assume the client wants a collaborative
		// advisor relationship until decision-style signals say otherwise.
		return Dimension[GuidanceLevel]{
			Value:      GuidanceCollaborative,
			Confidence: ConfidenceLow,
			Rationale:  "No decision-style signals recorded; collaborative guidance is the conservative default",
		}
	}

	conf := ConfidenceMedium
	if l.Strength >= strongLeanThreshold {
		conf = ConfidenceHigh
	}
	if l.Toward == "delegate" {
		return Dimension[GuidanceLevel]{
			Value:      GuidanceAdvisorLed,
			Confidence: conf,
			Rationale:  "You lean toward delegating financial decisions",
		}
	}
	return Dimension[GuidanceLevel]{
		Value:      GuidanceSelfDirected,
		Confidence: conf,
		Rationale:  "You lean toward keeping control of financial decisions",
	}
}

// --- Summary assembly ---

// Display labels for summary text. Pure string lookup, no further logic.
var (
	incomeLabels = map[IncomeOrientation]string{
		IncomeStabilityFocused: "a stability-focused",
		IncomeBalanced:         "a balanced",
		IncomeGrowthFocused:    "a growth-focused",
	}
	sensitivityLabels = map[SensitivityLevel]string{
		SensitivityHigh:   "high",
		SensitivityMedium: "medium",
		SensitivityLow:    "low",
	}
	flexibilityLabels = map[FlexibilityLevel]string{
		FlexibilityHigh:     "high",
		FlexibilityModerate: "moderate",
		FlexibilityLow:      "low",
	}
	toleranceLabels = map[ToleranceLevel]string{
		ToleranceHigh:     "high",
		ToleranceModerate: "moderate",
		ToleranceLow:      "low",
	}
	guidanceLabels = map[GuidanceLevel]string{
		GuidanceSelfDirected:  "self-directed",
		GuidanceCollaborative: "collaborative",
		GuidanceAdvisorLed:    "advisor-led",
	}
)

// summarize concatenates the five dimension labels into one sentence.
func summarize(sp StrategyProfile) string {
	return fmt.Sprintf(
		"Your profile suggests %s income approach with %s timing sensitivity, "+
			"%s planning flexibility, %s complexity tolerance, and %s guidance.",
		incomeLabels[sp.IncomeStrategy.Value],
		sensitivityLabels[sp.TimingSensitivity.Value],
		flexibilityLabels[sp.PlanningFlexibility.Value],
		toleranceLabels[sp.ComplexityTolerance.Value],
		guidanceLabels[sp.GuidanceLevel.Value],
	)
}
