package insights

import (
	"fmt"
	"time"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// Engine derives discovery insights from an intake record. It is stateless
// apart from its tuning weights and injected clock, so one Engine can serve
// concurrent callers.
type Engine struct {
	weights Weights
	clock   func() time.Time
}

// NewEngine creates an engine with the given tuning. A nil clock defaults
// to time.Now; tests inject a fixed clock for reproducible age math and
// timestamps.
func NewEngine(w Weights, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{weights: w, clock: clock}
}

// HasEnoughData reports whether Generate would produce a result for this
// profile. Exposed so callers can gate UI affordances without generating.
func (e *Engine) HasEnoughData(p *intake.Profile) bool {
	return HasEnoughData(p)
}

// Generate derives the full discovery insights for a profile. The second
// return value is false when the completion gate fails — callers must treat
// that as "not ready yet", not as an error. The result is built from
// scratch on every call; nothing is cached or mutated across invocations.
func (e *Engine) Generate(p *intake.Profile) (*DiscoveryInsights, bool) {
	if !HasEnoughData(p) {
		return nil, false
	}

	ranking := e.buildFocusRanking(p)
	result := &DiscoveryInsights{
		StrategyProfile: e.buildStrategyProfile(p),
		FocusAreas:      ranking,
		Actions:         e.buildActionPlan(p, ranking),
		InputSummary:    inputSummary(p),
		GeneratedAt:     e.clock(),
	}

	// Invariant violations here are programming bugs in the generators,
	// never bad input — input problems were folded into defaults upstream.
	// Surface them loudly instead of silently correcting.
	if err := result.Validate(); err != nil {
		panic(fmt.Sprintf("insights: invariant violation: %v", err))
	}
	return result, true
}

// Validate checks the structural invariants every generated result must
// hold. It exists for Generate's internal assertion and for tests; a nil
// error means the result is well-formed.
func (ins *DiscoveryInsights) Validate() error {
	// Focus priorities must be a permutation of 1..9 over the fixed domain
	// set, no gaps or duplicates.
	if got, want := len(ins.FocusAreas.Areas), len(domainOrder); got != want {
		return fmt.Errorf("focus areas: got %d, want %d", got, want)
	}
	seenPriority := make(map[int]bool, len(ins.FocusAreas.Areas))
	seenDomain := make(map[FocusDomain]bool, len(ins.FocusAreas.Areas))
	for _, a := range ins.FocusAreas.Areas {
		if a.Priority < 1 || a.Priority > len(domainOrder) {
			return fmt.Errorf("focus area %s: priority %d out of range", a.Domain, a.Priority)
		}
		if seenPriority[a.Priority] {
			return fmt.Errorf("focus area %s: duplicate priority %d", a.Domain, a.Priority)
		}
		seenPriority[a.Priority] = true
		if _, known := domainRank[a.Domain]; !known {
			return fmt.Errorf("focus area: unknown domain %q", a.Domain)
		}
		if seenDomain[a.Domain] {
			return fmt.Errorf("focus area: duplicate domain %q", a.Domain)
		}
		seenDomain[a.Domain] = true
	}

	// Top priorities are exactly the domains ranked 1-3.
	wantTop := make(map[FocusDomain]bool, 3)
	for _, a := range ins.FocusAreas.Areas {
		if a.Priority <= 3 {
			wantTop[a.Domain] = true
		}
	}
	if len(ins.FocusAreas.TopPriorities) != len(wantTop) {
		return fmt.Errorf("top priorities: got %d, want %d", len(ins.FocusAreas.TopPriorities), len(wantTop))
	}
	for _, d := range ins.FocusAreas.TopPriorities {
		if !wantTop[d] {
			return fmt.Errorf("top priorities: %q is not ranked in the top 3", d)
		}
	}

	// Action list is capped and every action references a ranked domain.
	if len(ins.Actions.Recommendations) > 7 {
		return fmt.Errorf("actions: %d recommendations exceeds cap of 7", len(ins.Actions.Recommendations))
	}
	actionIDs := make(map[string]bool, len(ins.Actions.Recommendations))
	for _, a := range ins.Actions.Recommendations {
		if !seenDomain[a.Domain] {
			return fmt.Errorf("action %s: domain %q absent from focus ranking", a.ID, a.Domain)
		}
		if actionIDs[a.ID] {
			return fmt.Errorf("action %s: duplicate id", a.ID)
		}
		actionIDs[a.ID] = true
	}

	// Top actions reference the first recommendations, in order.
	if len(ins.Actions.TopActions) > 5 {
		return fmt.Errorf("top actions: %d exceeds cap of 5", len(ins.Actions.TopActions))
	}
	for i, id := range ins.Actions.TopActions {
		if i >= len(ins.Actions.Recommendations) || ins.Actions.Recommendations[i].ID != id {
			return fmt.Errorf("top actions: position %d (%s) does not match recommendation order", i, id)
		}
	}

	return nil
}
