package insights

import (
	"fmt"
	"sort"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// The focus ranker scores the nine planning domains from value-category
// mappings, goal-category mappings, and contextual boosts, then assigns a
// total order (score descending, domainOrder as tie-break) and banded
// importance. Every domain gets a rationale, including zero-score domains.

// valueCategoryDomains maps each value category to the domains it boosts.
// A card contributes its boost to every mapped domain.
var valueCategoryDomains = map[intake.ValueCategory][]FocusDomain{
	intake.CategorySecurity:  {DomainRetirementIncome, DomainInsuranceRisk, DomainCashFlowDebt},
	intake.CategoryFamily:    {DomainEstateLegacy, DomainInsuranceRisk},
	intake.CategoryFreedom:   {DomainRetirementIncome, DomainCashFlowDebt},
	intake.CategoryGrowth:    {DomainInvestmentStrategy, DomainBusinessCareer},
	intake.CategoryHealth:    {DomainHealthcareLTC, DomainInsuranceRisk},
	intake.CategoryLegacy:    {DomainEstateLegacy, DomainTaxOptimization},
	intake.CategoryPurpose:   {DomainEstateLegacy, DomainBusinessCareer},
	intake.CategoryLifestyle: {DomainCashFlowDebt, DomainInvestmentStrategy},
	intake.CategoryCommunity: {DomainEstateLegacy, DomainTaxOptimization},
}

// goalCategoryDomains maps each goal category to the domains it boosts.
var goalCategoryDomains = map[intake.GoalCategory][]FocusDomain{
	intake.GoalRetirement:      {DomainRetirementIncome, DomainInvestmentStrategy, DomainTaxOptimization},
	intake.GoalMajorPurchase:   {DomainCashFlowDebt, DomainInvestmentStrategy},
	intake.GoalDebtFreedom:     {DomainCashFlowDebt},
	intake.GoalFamilySupport:   {DomainEstateLegacy, DomainInsuranceRisk, DomainCashFlowDebt},
	intake.GoalTravelLifestyle: {DomainCashFlowDebt, DomainInvestmentStrategy},
	intake.GoalHealthcare:      {DomainHealthcareLTC, DomainInsuranceRisk},
	intake.GoalLegacyGiving:    {DomainEstateLegacy, DomainTaxOptimization},
	intake.GoalCareerBusiness:  {DomainBusinessCareer, DomainBenefitsOptimization},
}

// domainTally is the per-domain working state during ranking.
type domainTally struct {
	score            int
	valueConnections []string
	goalConnections  []string
	riskFactors      []string
	// dominant contributing factor, tracked for the rationale
	topFactor      string
	topFactorBoost int
}

func (t *domainTally) add(boost int, factor string) {
	t.score += boost
	if boost > t.topFactorBoost {
		t.topFactorBoost = boost
		t.topFactor = factor
	}
}

// isNearRetirement reports whether the client's age is within the
// configured window of the retirement age (or past it).
func (e *Engine) isNearRetirement(p *intake.Profile) bool {
	if p == nil {
		return false
	}
	age, ok := p.Basics.Age(e.clock())
	if !ok {
		return false
	}
	return age >= e.weights.RetirementAge-e.weights.NearRetirementWindowYears
}

// buildFocusRanking runs the full ranking algorithm over the intake record.
func (e *Engine) buildFocusRanking(p *intake.Profile) FocusRanking {
	w := e.weights

	// Step 1: every domain starts at zero with empty connections.
	tallies := make(map[FocusDomain]*domainTally, len(domainOrder))
	for _, d := range domainOrder {
		tallies[d] = &domainTally{}
	}

	// Step 2: value-category boosts. Top-5 cards weigh more than cards that
	// only made the top 10; a card in both lists counts once, at the top-5
	// weight.
	if p != nil && p.Values != nil {
		inTop5 := make(map[string]bool, len(p.Values.Top5))
		for _, id := range p.Values.Top5 {
			inTop5[id] = true
			e.applyValueBoost(tallies, id, w.Top5ValueBoost, "top-5")
		}
		for _, id := range p.Values.Top10 {
			if inTop5[id] {
				continue
			}
			e.applyValueBoost(tallies, id, w.Top10ValueBoost, "top-10")
		}
	}

	// Step 3: goal-category boosts, scaled for high priority and near
	// horizons.
	for _, g := range p.GoalList() {
		boost := w.GoalBaseBoost
		if g.Priority == intake.PriorityHigh {
			boost += w.GoalHighPriorityBonus
		}
		switch g.Horizon {
		case intake.HorizonShort:
			boost += w.GoalShortHorizonBonus
		case intake.HorizonMid:
			boost += w.GoalMidHorizonBonus
		}
		factor := fmt.Sprintf("your %s goal", goalName(g))
		for _, d := range goalCategoryDomains[g.Category] {
			t := tallies[d]
			t.add(boost, factor)
			t.goalConnections = appendUnique(t.goalConnections, g.ID)
		}
	}

	// Step 4: contextual boosts.
	e.applyContextBoosts(tallies, p)

	// Step 5: sort by score descending; exact ties fall back to the fixed
	// default order, which guarantees a reproducible total order.
	ranked := Domains()
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := tallies[ranked[i]].score, tallies[ranked[j]].score
		if si != sj {
			return si > sj
		}
		return domainRank[ranked[i]] < domainRank[ranked[j]]
	})

	// Steps 6-7: assign priorities, band importance by absolute score, and
	// extract the top three.
	areas := make([]FocusArea, 0, len(ranked))
	var top []FocusDomain
	for i, d := range ranked {
		t := tallies[d]
		area := FocusArea{
			Domain:           d,
			Priority:         i + 1,
			Importance:       e.bandImportance(t.score),
			Rationale:        focusRationale(d, t),
			ValueConnections: t.valueConnections,
			GoalConnections:  t.goalConnections,
			RiskFactors:      t.riskFactors,
		}
		if area.ValueConnections == nil {
			area.ValueConnections = []string{}
		}
		if area.GoalConnections == nil {
			area.GoalConnections = []string{}
		}
		areas = append(areas, area)
		if area.Priority <= 3 {
			top = append(top, d)
		}
	}

	return FocusRanking{Areas: areas, TopPriorities: top}
}

// applyValueBoost adds one card's boost to every domain its category maps to.
// Unknown card ids carry no category and are skipped.
func (e *Engine) applyValueBoost(tallies map[FocusDomain]*domainTally, cardID string, boost int, tier string) {
	cat, ok := intake.CategoryOf(cardID)
	if !ok {
		return
	}
	factor := fmt.Sprintf("your %s %s values", tier, cat)
	for _, d := range valueCategoryDomains[cat] {
		t := tallies[d]
		t.add(boost, factor)
		t.valueConnections = appendUnique(t.valueConnections, cardID)
	}
}

// applyContextBoosts applies the age, dependents, and employment boosts.
func (e *Engine) applyContextBoosts(tallies map[FocusDomain]*domainTally, p *intake.Profile) {
	w := e.weights

	if e.isNearRetirement(p) {
		t := tallies[DomainRetirementIncome]
		t.add(w.NearRetirementBoost, "your age relative to typical retirement")
		t.riskFactors = append(t.riskFactors, "Limited runway to adjust before retirement")
	}

	for _, g := range p.GoalList() {
		if g.Category == intake.GoalRetirement && g.Horizon == intake.HorizonShort {
			t := tallies[DomainRetirementIncome]
			t.add(w.ShortRetirementGoalBoost, "a short-horizon retirement goal")
			t.riskFactors = appendUnique(t.riskFactors, "Retirement timeline leaves little room for market recovery")
			break
		}
	}

	if p != nil && p.Basics.HasFinancialDependents() {
		ti := tallies[DomainInsuranceRisk]
		ti.add(w.DependentsInsuranceBoost, "financially dependent family members")
		ti.riskFactors = append(ti.riskFactors, "Dependents rely on your income continuing")
		te := tallies[DomainEstateLegacy]
		te.add(w.DependentsEstateBoost, "financially dependent family members")
	}

	if p != nil && p.Basics != nil && p.Basics.FederalEmployment != nil {
		t := tallies[DomainBenefitsOptimization]
		t.add(w.FederalEmploymentBoost, "your federal employment record")
	}
}

// bandImportance maps an absolute score to its importance band.
func (e *Engine) bandImportance(score int) Importance {
	w := e.weights
	switch {
	case score >= w.CriticalThreshold:
		return ImportanceCritical
	case score >= w.HighThreshold:
		return ImportanceHigh
	case score >= w.ModerateThreshold:
		return ImportanceModerate
	default:
		return ImportanceLow
	}
}

// focusRationale names the dominant contributing factor, or the default-
// consideration wording for domains nothing boosted.
func focusRationale(d FocusDomain, t *domainTally) string {
	if t.score == 0 || t.topFactor == "" {
		return fmt.Sprintf("%s: no strong signal; default consideration", DomainLabel(d))
	}
	return fmt.Sprintf("%s ranks here primarily because of %s", DomainLabel(d), t.topFactor)
}

// goalName returns a readable name for a goal in rationale text.
func goalName(g intake.Goal) string {
	if g.Label != "" {
		return fmt.Sprintf("%q", g.Label)
	}
	return string(g.Category)
}

// appendUnique appends s when not already present, preserving order.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
