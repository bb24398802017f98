package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

func actionIDs(plan ActionPlan) []string {
	ids := make([]string, 0, len(plan.Recommendations))
	for _, a := range plan.Recommendations {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestBuildActionPlan_LowImportanceDomainsContributeNothing(t *testing.T) {
	e := newTestEngine()
	p := withPurpose(basicsProfile(45)) // gate passes, nothing boosted

	ranking := e.buildFocusRanking(p)
	plan := e.buildActionPlan(p, ranking)

	assert.NotNil(t, plan.Recommendations)
	assert.Empty(t, plan.Recommendations)
	assert.Empty(t, plan.TopActions)
}

func TestBuildActionPlan_CapsAtSevenActions(t *testing.T) {
	e := newTestEngine()
	p := fullProfile() // boosts enough domains to overflow the cap

	ranking := e.buildFocusRanking(p)
	plan := e.buildActionPlan(p, ranking)

	assert.Len(t, plan.Recommendations, 7)
	assert.Len(t, plan.TopActions, 5)
}

func TestBuildActionPlan_AtMostTwoActionsPerDomain(t *testing.T) {
	e := newTestEngine()
	p := fullProfile()

	plan := e.buildActionPlan(p, e.buildFocusRanking(p))

	perDomain := make(map[FocusDomain]int)
	for _, a := range plan.Recommendations {
		perDomain[a.Domain]++
		assert.LessOrEqual(t, perDomain[a.Domain], 2)
	}
}

func TestBuildActionPlan_NoDuplicateTemplateIDs(t *testing.T) {
	e := newTestEngine()
	p := fullProfile()

	plan := e.buildActionPlan(p, e.buildFocusRanking(p))

	seen := make(map[string]bool)
	for _, id := range actionIDs(plan) {
		assert.False(t, seen[id], "duplicate action id %s", id)
		seen[id] = true
	}
}

func TestBuildActionPlan_RequiresPredicateGatesTemplates(t *testing.T) {
	e := newTestEngine()

	// Federal-employment boost puts benefits_optimization in the high band,
	// and the federal record satisfies the template's predicate.
	federal := basicsProfile(40)
	federal.Basics.FederalEmployment = &intake.FederalEmployment{Agency: "GSA"}
	withValues(federal, "travel")
	plan := e.buildActionPlan(federal, e.buildFocusRanking(federal))
	assert.Contains(t, actionIDs(plan), "federal_benefits_review")

	// Without the federal record the benefits domain never crosses the
	// importance floor, so neither benefits template appears.
	civilian := withValues(basicsProfile(40), "travel")
	plan = e.buildActionPlan(civilian, e.buildFocusRanking(civilian))
	assert.NotContains(t, actionIDs(plan), "federal_benefits_review")
	assert.NotContains(t, actionIDs(plan), "employer_benefits_inventory")
}

func TestBuildActionPlan_UrgencyFollowsImportance(t *testing.T) {
	e := newTestEngine()
	p := fullProfile()

	ranking := e.buildFocusRanking(p)
	plan := e.buildActionPlan(p, ranking)
	require.NotEmpty(t, plan.Recommendations)

	for _, a := range plan.Recommendations {
		area, ok := ranking.Area(a.Domain)
		require.True(t, ok)
		assert.Equal(t, urgencyForImportance[area.Importance], a.Urgency,
			"action %s from %s domain", a.ID, area.Importance)
	}
}

func TestBuildActionPlan_SortsByUrgencyMostUrgentFirst(t *testing.T) {
	e := newTestEngine()
	p := fullProfile()

	plan := e.buildActionPlan(p, e.buildFocusRanking(p))
	require.NotEmpty(t, plan.Recommendations)

	for i := 1; i < len(plan.Recommendations); i++ {
		prev := urgencyRank[plan.Recommendations[i-1].Urgency]
		cur := urgencyRank[plan.Recommendations[i].Urgency]
		assert.LessOrEqual(t, prev, cur, "position %d out of urgency order", i)
	}
}

func TestMaterialize_GuidanceDefaultsByTypeWithOverrides(t *testing.T) {
	area := FocusArea{
		Domain:           DomainTaxOptimization,
		Importance:       ImportanceHigh,
		ValueConnections: []string{"leaving_legacy"},
		GoalConnections:  []string{"g1"},
	}

	// No override: the per-type default applies.
	plain := materialize(actionTemplate{
		id: "x", title: "X", actionType: ActionAnalysis,
	}, area)
	assert.Equal(t, GuidanceSelfGuided, plain.Guidance)
	assert.Equal(t, UrgencyNearTerm, plain.Urgency)
	assert.Equal(t, DomainTaxOptimization, plain.Domain)
	assert.Equal(t, []string{"leaving_legacy"}, plain.ValueConnections)
	assert.Equal(t, []string{"g1"}, plain.GoalConnections)

	// Template override wins.
	overridden := materialize(actionTemplate{
		id: "y", title: "Y", actionType: ActionProfessionalReview,
		guidance: GuidanceSpecialistGuided,
	}, area)
	assert.Equal(t, GuidanceSpecialistGuided, overridden.Guidance)
}

func TestActionCatalog_EveryTemplateIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for domain, templates := range actionCatalog {
		assert.LessOrEqual(t, len(templates), 2, "domain %s exceeds two templates", domain)
		for _, tmpl := range templates {
			assert.False(t, seen[tmpl.id], "template id %s reused", tmpl.id)
			seen[tmpl.id] = true
			assert.NotEmpty(t, tmpl.title, "template %s", tmpl.id)
			assert.NotEmpty(t, tmpl.description, "template %s", tmpl.id)
			assert.NotEmpty(t, tmpl.rationale, "template %s", tmpl.id)
			assert.NotEmpty(t, tmpl.outcome, "template %s", tmpl.id)
			_, known := defaultGuidance[tmpl.actionType]
			assert.True(t, known, "template %s has unknown action type %s", tmpl.id, tmpl.actionType)
		}
	}
	// Every domain in the fixed order has templates to draw from.
	for _, d := range Domains() {
		assert.NotEmpty(t, actionCatalog[d], "domain %s has no templates", d)
	}
}

func TestActionCatalog_DependenciesReferenceRealTemplates(t *testing.T) {
	ids := make(map[string]bool)
	for _, templates := range actionCatalog {
		for _, tmpl := range templates {
			ids[tmpl.id] = true
		}
	}
	for _, templates := range actionCatalog {
		for _, tmpl := range templates {
			for _, dep := range tmpl.dependencies {
				assert.True(t, ids[dep], "template %s depends on unknown template %s", tmpl.id, dep)
			}
		}
	}
}
