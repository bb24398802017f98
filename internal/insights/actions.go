package insights

import (
	"sort"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// The action generator turns the focus ranking plus raw intake signals into
// a bounded action list. Actions come from a static per-domain template
// table — the generator never invents one — so every action is traceable to
// a template id and a focus area in the same result.

// actionTemplate defines a potential action recommendation. The optional
// requires predicate gates templates that only make sense for certain
// intake signals (the 0-of-0-2 case).
type actionTemplate struct {
	id          string
	title       string
	description string
	rationale   string
	outcome     string
	actionType  ActionType
	// guidance overrides the per-type default when set.
	guidance GuidanceMode
	// dependencies are template ids that should complete first.
	dependencies []string
	requires     func(p *intake.Profile) bool
}

// defaultGuidance is the fixed per-action-type guidance default. A template
// may override it (professional reviews of specialist domains are
// specialist-guided rather than advisor-guided).
var defaultGuidance = map[ActionType]GuidanceMode{
	ActionEducation:          GuidanceSelfGuided,
	ActionAnalysis:           GuidanceSelfGuided,
	ActionDocumentTask:       GuidanceSelfGuided,
	ActionAccountAction:      GuidanceSelfGuided,
	ActionPlanningSession:    GuidanceAdvisorGuided,
	ActionProfessionalReview: GuidanceAdvisorGuided,
}

// urgencyForImportance maps a focus area's importance band to the urgency
// of actions generated from it.
var urgencyForImportance = map[Importance]Urgency{
	ImportanceCritical: UrgencyImmediate,
	ImportanceHigh:     UrgencyNearTerm,
	ImportanceModerate: UrgencyMediumTerm,
	ImportanceLow:      UrgencyOngoing,
}

// actionCatalog is the static per-domain action template table, at most two
// templates per domain.
var actionCatalog = map[FocusDomain][]actionTemplate{
	DomainRetirementIncome: {
		{
			id:          "retirement_income_floor",
			title:       "Model your retirement income floor",
			description: "Map your essential expenses against guaranteed income sources (Social Security, pensions, annuities) to see the gap your portfolio must cover.",
			rationale:   "Knowing the guaranteed floor turns an abstract retirement worry into a concrete funding target.",
			outcome:     "A written income-floor statement with the monthly gap quantified.",
			actionType:  ActionPlanningSession,
		},
		{
			id:           "claiming_strategy_review",
			title:        "Review your benefit claiming options",
			description:  "Compare claiming ages for Social Security or pension elections and what each does to lifetime income.",
			rationale:    "Claiming timing is one of the few irreversible retirement decisions.",
			outcome:      "A preferred claiming age with the tradeoffs documented.",
			actionType:   ActionAnalysis,
			dependencies: []string{"retirement_income_floor"},
		},
	},
	DomainInvestmentStrategy: {
		{
			id:          "allocation_horizon_alignment",
			title:       "Align portfolio allocation with goal horizons",
			description: "Check that money needed soon is not exposed to equity risk and that long-horizon money is not parked in cash.",
			rationale:   "Allocation drift is the most common silent mismatch between a portfolio and its goals.",
			outcome:     "An allocation target per goal bucket.",
			actionType:  ActionProfessionalReview,
		},
		{
			id:          "account_consolidation",
			title:       "Consolidate scattered investment accounts",
			description: "Inventory old employer plans and stray brokerage accounts, then consolidate where fees and oversight improve.",
			rationale:   "Fewer accounts means cleaner allocation control and fewer forgotten assets.",
			outcome:     "A single inventory and a consolidation shortlist.",
			actionType:  ActionAccountAction,
		},
	},
	DomainTaxOptimization: {
		{
			id:          "tax_efficiency_review",
			title:       "Schedule a tax-efficiency review",
			description: "Review account placement, withdrawal sequencing, and bracket management with a tax professional.",
			rationale:   "Tax drag compounds; sequencing mistakes in retirement are expensive to unwind.",
			outcome:     "A prioritized list of tax moves for the current year.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceSpecialistGuided,
		},
		{
			id:          "roth_conversion_window",
			title:       "Evaluate Roth conversion windows",
			description: "Identify low-income years where converting pre-tax balances fills lower brackets cheaply.",
			rationale:   "Conversion windows close permanently once required distributions begin.",
			outcome:     "A yes/no conversion decision per upcoming year.",
			actionType:  ActionAnalysis,
			guidance:    GuidanceAdvisorGuided,
		},
	},
	DomainInsuranceRisk: {
		{
			id:          "coverage_gap_audit",
			title:       "Audit life and disability coverage against dependents",
			description: "Compare current coverage against what your financially dependent family members would actually need.",
			rationale:   "Coverage bought years ago rarely matches today's dependents and obligations.",
			outcome:     "A coverage gap number per policy type.",
			actionType:  ActionProfessionalReview,
		},
		{
			id:          "policy_inventory",
			title:       "Inventory your existing policies",
			description: "Collect every active policy (life, disability, umbrella, LTC riders) with premiums, terms, and lapse dates in one document.",
			rationale:   "You cannot assess risk exposure without a complete picture of what is already covered.",
			outcome:     "One policy inventory document.",
			actionType:  ActionDocumentTask,
		},
	},
	DomainEstateLegacy: {
		{
			id:          "estate_documents_refresh",
			title:       "Draft or refresh your core estate documents",
			description: "Will, powers of attorney, and healthcare directives — created if missing, reviewed if older than five years.",
			rationale:   "Estate intentions without current documents are unenforceable.",
			outcome:     "Signed, current core documents.",
			actionType:  ActionDocumentTask,
			guidance:    GuidanceSpecialistGuided,
		},
		{
			id:          "beneficiary_confirmation",
			title:       "Confirm beneficiary designations",
			description: "Check every retirement account and policy beneficiary against your current intentions — designations override wills.",
			rationale:   "Stale beneficiaries are the most common and cheapest-to-fix estate failure.",
			outcome:     "Every designation verified or corrected.",
			actionType:  ActionAccountAction,
		},
	},
	DomainCashFlowDebt: {
		{
			id:          "transition_cash_flow_map",
			title:       "Build a retirement-transition cash flow map",
			description: "Project income and spending across the transition years, including one-time costs and debt payoffs.",
			rationale:   "Cash flow surprises in the first retirement years force portfolio sales at bad times.",
			outcome:     "A year-by-year cash flow projection.",
			actionType:  ActionAnalysis,
		},
		{
			id:          "high_interest_debt_plan",
			title:       "Prioritize high-interest debt payoff",
			description: "List debts by rate and set a payoff order that clears expensive balances before retirement income starts.",
			rationale:   "Carrying high-interest debt into retirement converts a fixed income into a shrinking one.",
			outcome:     "A dated payoff schedule.",
			actionType:  ActionPlanningSession,
			guidance:    GuidanceSelfGuided,
		},
	},
	DomainBenefitsOptimization: {
		{
			id:          "federal_benefits_review",
			title:       "Review your federal benefits elections",
			description: "Walk through your retirement system, survivor elections, FEHB/FEGLI choices, and service-credit options with a federal-benefits specialist.",
			rationale:   "Federal elections interact in ways generic advice misses, and several are one-time choices.",
			outcome:     "An elections checklist with deadlines.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceSpecialistGuided,
			requires: func(p *intake.Profile) bool {
				return p != nil && p.Basics != nil && p.Basics.FederalEmployment != nil
			},
		},
		{
			id:          "employer_benefits_inventory",
			title:       "Inventory employer benefits and match opportunities",
			description: "List every employer benefit you are eligible for and confirm you are capturing the full match and any catch-up room.",
			rationale:   "Unused matches and catch-up contributions are the highest-return dollars available.",
			outcome:     "A benefits checklist with unused capacity flagged.",
			actionType:  ActionEducation,
		},
	},
	DomainBusinessCareer: {
		{
			id:          "career_runway_map",
			title:       "Map your career runway and income bridge",
			description: "Sketch how long you intend to keep earning, what a wind-down looks like, and what bridges the gap to retirement income.",
			rationale:   "The retirement date is a career decision before it is a portfolio decision.",
			outcome:     "A written runway plan with a target date range.",
			actionType:  ActionPlanningSession,
		},
		{
			id:          "succession_options_review",
			title:       "Review business succession options",
			description: "If you own a business or practice, review sale, transfer, and wind-down paths and their timelines.",
			rationale:   "Succession value depends heavily on how early the path is chosen.",
			outcome:     "A shortlist of viable succession paths.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceSpecialistGuided,
			requires: func(p *intake.Profile) bool {
				return p != nil && p.Basics != nil && p.Basics.Occupation != ""
			},
		},
	},
	DomainHealthcareLTC: {
		{
			id:          "healthcare_cost_estimate",
			title:       "Estimate your retirement healthcare costs",
			description: "Work through pre-Medicare coverage, Medicare premiums, and out-of-pocket estimates for your situation.",
			rationale:   "Healthcare is the most underestimated retirement expense category.",
			outcome:     "An annual healthcare cost estimate.",
			actionType:  ActionEducation,
		},
		{
			id:          "ltc_funding_review",
			title:       "Evaluate long-term care funding options",
			description: "Compare self-funding, traditional LTC insurance, and hybrid policies against your family situation.",
			rationale:   "LTC options narrow sharply with age; deciding late means deciding by default.",
			outcome:     "A chosen LTC funding approach.",
			actionType:  ActionProfessionalReview,
		},
	},
}

// buildActionPlan generates the capped, deduplicated action list from the
// focus ranking. Actions only ever reference domains present in the ranking.
func (e *Engine) buildActionPlan(p *intake.Profile, ranking FocusRanking) ActionPlan {
	w := e.weights

	var candidates []ActionRecommendation
	seen := make(map[string]bool)

	// Walk focus areas in priority order so dedupe keeps the instance from
	// the higher-priority domain. Low-importance domains contribute nothing:
	// recommending action where no signal exists would be noise.
	for _, area := range ranking.Areas {
		if area.Importance == ImportanceLow {
			continue
		}
		perDomain := 0
		for _, tmpl := range actionCatalog[area.Domain] {
			if perDomain >= w.MaxActionsPerDomain {
				break
			}
			if tmpl.requires != nil && !tmpl.requires(p) {
				continue
			}
			if seen[tmpl.id] {
				continue
			}
			seen[tmpl.id] = true
			candidates = append(candidates, materialize(tmpl, area))
			perDomain++
		}
	}

	// Stable order: urgency first, then originating domain priority. The
	// candidate slice is already in domain-priority order, so a stable sort
	// on urgency alone preserves that secondary order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return urgencyRank[candidates[i].Urgency] < urgencyRank[candidates[j].Urgency]
	})

	if len(candidates) > w.MaxActions {
		candidates = candidates[:w.MaxActions]
	}

	top := make([]string, 0, w.MaxTopActions)
	for _, a := range candidates {
		if len(top) == w.MaxTopActions {
			break
		}
		top = append(top, a.ID)
	}

	if candidates == nil {
		candidates = []ActionRecommendation{}
	}
	return ActionPlan{Recommendations: candidates, TopActions: top}
}

// materialize fills a template into a concrete recommendation, inheriting
// the focus area's connections and deriving urgency from its importance.
func materialize(tmpl actionTemplate, area FocusArea) ActionRecommendation {
	guidance := tmpl.guidance
	if guidance == "" {
		guidance = defaultGuidance[tmpl.actionType]
	}
	return ActionRecommendation{
		ID:               tmpl.id,
		Title:            tmpl.title,
		Description:      tmpl.description,
		Rationale:        tmpl.rationale,
		Outcome:          tmpl.outcome,
		Type:             tmpl.actionType,
		Guidance:         guidance,
		Urgency:          urgencyForImportance[area.Importance],
		Domain:           area.Domain,
		ValueConnections: area.ValueConnections,
		GoalConnections:  area.GoalConnections,
		Dependencies:     tmpl.dependencies,
	}
}
