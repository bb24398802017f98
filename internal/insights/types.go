// Package insights implements the discovery insights engine: a pure,
// deterministic derivation from a partially-filled intake record to a
// behavioral strategy profile, a ranked planning-focus list, and a bounded
// action recommendation list.
//
// The engine performs no I/O, holds no shared mutable state, and allocates
// all working state per call, so it is safe to invoke concurrently. Every
// output is explainable by the fixed rule tables in this package — there is
// no statistical inference anywhere.
package insights

import (
	"time"
)

// --- Confidence enum ---

// Confidence grades how well-supported a derived value is by the intake
// signals that feed it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"   // signals present and mutually consistent
	ConfidenceMedium Confidence = "medium" // partially inferred
	ConfidenceLow    Confidence = "low"    // defaulted in the absence of signals
)

// --- Strategy dimension value enums ---

// IncomeOrientation is the income-strategy axis of the strategy profile.
type IncomeOrientation string

const (
	IncomeStabilityFocused IncomeOrientation = "stability_focused"
	IncomeBalanced         IncomeOrientation = "balanced"
	IncomeGrowthFocused    IncomeOrientation = "growth_focused"
)

// SensitivityLevel grades timing sensitivity.
type SensitivityLevel string

const (
	SensitivityHigh   SensitivityLevel = "high"
	SensitivityMedium SensitivityLevel = "medium"
	SensitivityLow    SensitivityLevel = "low"
)

// FlexibilityLevel grades planning flexibility.
type FlexibilityLevel string

const (
	FlexibilityHigh     FlexibilityLevel = "high"
	FlexibilityModerate FlexibilityLevel = "moderate"
	FlexibilityLow      FlexibilityLevel = "low"
)

// ToleranceLevel grades complexity tolerance.
type ToleranceLevel string

const (
	ToleranceHigh     ToleranceLevel = "high"
	ToleranceModerate ToleranceLevel = "moderate"
	ToleranceLow      ToleranceLevel = "low"
)

// GuidanceLevel is how much advisor involvement the client should get.
type GuidanceLevel string

const (
	GuidanceSelfDirected  GuidanceLevel = "self_directed"
	GuidanceCollaborative GuidanceLevel = "collaborative"
	GuidanceAdvisorLed    GuidanceLevel = "advisor_led"
)

// Dimension is one axis of advisory posture: a derived value with the
// confidence it was derived at and a human-readable rationale naming the
// signals that drove it.
type Dimension[T ~string] struct {
	Value      T          `json:"value"`
	Confidence Confidence `json:"confidence"`
	Rationale  string     `json:"rationale"`
}

// StrategyProfile is the five-dimension behavioral profile describing how
// the client should be advised. All five dimensions are always populated,
// even on minimal passing data — absent signals lower confidence, never
// drop a dimension.
type StrategyProfile struct {
	IncomeStrategy      Dimension[IncomeOrientation] `json:"income_strategy"`
	TimingSensitivity   Dimension[SensitivityLevel]  `json:"timing_sensitivity"`
	PlanningFlexibility Dimension[FlexibilityLevel]  `json:"planning_flexibility"`
	ComplexityTolerance Dimension[ToleranceLevel]    `json:"complexity_tolerance"`
	GuidanceLevel       Dimension[GuidanceLevel]     `json:"guidance_level"`
	Summary             string                       `json:"summary"`
}

// --- Focus domains ---

// FocusDomain is one of nine fixed financial-planning topic areas.
type FocusDomain string

const (
	DomainRetirementIncome     FocusDomain = "retirement_income"
	DomainInvestmentStrategy   FocusDomain = "investment_strategy"
	DomainTaxOptimization      FocusDomain = "tax_optimization"
	DomainInsuranceRisk        FocusDomain = "insurance_risk"
	DomainEstateLegacy         FocusDomain = "estate_legacy"
	DomainCashFlowDebt         FocusDomain = "cash_flow_debt"
	DomainBenefitsOptimization FocusDomain = "benefits_optimization"
	DomainBusinessCareer       FocusDomain = "business_career"
	DomainHealthcareLTC        FocusDomain = "healthcare_ltc"
)

// domainOrder is the single shared default ordering of the focus domains.
// It doubles as the tie-break order when scores are exactly equal, which is
// what guarantees a total order and reproducible rankings across identical
// inputs. Never re-derive this per call.
var domainOrder = []FocusDomain{
	DomainRetirementIncome,
	DomainInvestmentStrategy,
	DomainTaxOptimization,
	DomainInsuranceRisk,
	DomainEstateLegacy,
	DomainCashFlowDebt,
	DomainBenefitsOptimization,
	DomainBusinessCareer,
	DomainHealthcareLTC,
}

// domainRank indexes domainOrder for O(1) tie-break comparison.
var domainRank = func() map[FocusDomain]int {
	m := make(map[FocusDomain]int, len(domainOrder))
	for i, d := range domainOrder {
		m[d] = i
	}
	return m
}()

// Domains returns the fixed focus-domain set in default order.
func Domains() []FocusDomain {
	out := make([]FocusDomain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// domainLabels are display names for the focus domains.
var domainLabels = map[FocusDomain]string{
	DomainRetirementIncome:     "Retirement Income",
	DomainInvestmentStrategy:   "Investment Strategy",
	DomainTaxOptimization:      "Tax Optimization",
	DomainInsuranceRisk:        "Insurance & Risk",
	DomainEstateLegacy:         "Estate & Legacy",
	DomainCashFlowDebt:         "Cash Flow & Debt",
	DomainBenefitsOptimization: "Benefits Optimization",
	DomainBusinessCareer:       "Business & Career",
	DomainHealthcareLTC:        "Healthcare & Long-Term Care",
}

// DomainLabel returns the display name for a focus domain.
func DomainLabel(d FocusDomain) string {
	return domainLabels[d]
}

// --- Importance enum ---

// Importance is the absolute-score band a focus area falls into. It is
// independent of rank position: a low-score domain cannot be critical even
// when it ranks high against an otherwise-empty profile.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceModerate Importance = "moderate"
	ImportanceLow      Importance = "low"
)

// FocusArea is one ranked planning domain with its supporting evidence.
type FocusArea struct {
	Domain           FocusDomain `json:"domain"`
	Priority         int         `json:"priority"` // 1..9, unique, no gaps
	Importance       Importance  `json:"importance"`
	Rationale        string      `json:"rationale"`
	ValueConnections []string    `json:"value_connections"`
	GoalConnections  []string    `json:"goal_connections"`
	RiskFactors      []string    `json:"risk_factors,omitempty"`
}

// FocusRanking holds all nine ranked focus areas plus the extracted top
// priorities (exactly the domains with priority <= 3).
type FocusRanking struct {
	Areas         []FocusArea   `json:"areas"`
	TopPriorities []FocusDomain `json:"top_priorities"`
}

// Area returns the focus area for a domain, and false when the domain is
// not present in the ranking.
func (r *FocusRanking) Area(d FocusDomain) (FocusArea, bool) {
	for _, a := range r.Areas {
		if a.Domain == d {
			return a, true
		}
	}
	return FocusArea{}, false
}

// --- Action enums ---

// ActionType classifies what kind of work an action recommendation is.
type ActionType string

const (
	ActionEducation          ActionType = "education"
	ActionAnalysis           ActionType = "analysis"
	ActionDocumentTask       ActionType = "document_task"
	ActionAccountAction      ActionType = "account_action"
	ActionPlanningSession    ActionType = "planning_session"
	ActionProfessionalReview ActionType = "professional_review"
)

// GuidanceMode is who should drive an action.
type GuidanceMode string

const (
	GuidanceSelfGuided       GuidanceMode = "self_guided"
	GuidanceAdvisorGuided    GuidanceMode = "advisor_guided"
	GuidanceSpecialistGuided GuidanceMode = "specialist_guided"
)

// Urgency is when an action should happen, derived from the importance of
// its originating focus area.
type Urgency string

const (
	UrgencyImmediate  Urgency = "immediate"
	UrgencyNearTerm   Urgency = "near_term"
	UrgencyMediumTerm Urgency = "medium_term"
	UrgencyOngoing    Urgency = "ongoing"
)

// urgencyRank orders urgencies for sorting, most urgent first.
var urgencyRank = map[Urgency]int{
	UrgencyImmediate:  0,
	UrgencyNearTerm:   1,
	UrgencyMediumTerm: 2,
	UrgencyOngoing:    3,
}

// ActionRecommendation is a single suggested next step tied to a focus
// domain present in the same result's ranking.
type ActionRecommendation struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Rationale        string       `json:"rationale"`
	Outcome          string       `json:"outcome"`
	Type             ActionType   `json:"type"`
	Guidance         GuidanceMode `json:"guidance"`
	Urgency          Urgency      `json:"urgency"`
	Domain           FocusDomain  `json:"domain"`
	ValueConnections []string     `json:"value_connections"`
	GoalConnections  []string     `json:"goal_connections"`
	Dependencies     []string     `json:"dependencies,omitempty"`
}

// ActionPlan is the capped, deduplicated action list plus the ids of the
// first few actions to surface.
type ActionPlan struct {
	Recommendations []ActionRecommendation `json:"recommendations"` // <= 7
	TopActions      []string               `json:"top_actions"`     // <= 5 ids
}

// --- Result ---

// InputSummary records which intake sections fed this result.
type InputSummary struct {
	HasBasicContext      bool `json:"has_basic_context"`
	HasValues            bool `json:"has_values"`
	HasGoals             bool `json:"has_goals"`
	HasPurpose           bool `json:"has_purpose"`
	CompletionPercentage int  `json:"completion_percentage"`
}

// DiscoveryInsights is the immutable result of one engine invocation.
// It is recomputed from scratch on every call — created and discarded,
// never incrementally updated or persisted by the engine.
type DiscoveryInsights struct {
	StrategyProfile StrategyProfile `json:"strategy_profile"`
	FocusAreas      FocusRanking    `json:"focus_areas"`
	Actions         ActionPlan      `json:"actions"`
	InputSummary    InputSummary    `json:"input_summary"`
	GeneratedAt     time.Time       `json:"generated_at"`
}
