// Package intake defines the client intake record — the partially-completed
// discovery survey data consumed by the insights engine — and its sqlite
// persistence.
//
// Every section of a Profile is independently optional. The engine treats
// missing or malformed optional fields as "absent" and folds them into lower
// confidence or default values; nothing in this package throws on partial
// data. Validation funcs exist for the tool layer, which rejects unknown
// enum values at the MCP boundary before they reach storage.
package intake

import (
	"fmt"
	"time"
)

// --- Value pile enum ---

// Pile is the card-sort bucket a value card was placed in.
type Pile string

const (
	PileImportant    Pile = "important"
	PileUnsure       Pile = "unsure"
	PileNotImportant Pile = "not_important"
)

// validPiles is the set of allowed pile assignments.
var validPiles = map[Pile]bool{
	PileImportant:    true,
	PileUnsure:       true,
	PileNotImportant: true,
}

// ValidatePile returns an error if the pile is not recognized.
func ValidatePile(p Pile) error {
	if !validPiles[p] {
		return fmt.Errorf("invalid pile %q: must be one of: important, unsure, not_important", p)
	}
	return nil
}

// --- Goal category enum ---

// GoalCategory classifies a financial goal into one of eight fixed categories.
type GoalCategory string

const (
	GoalRetirement      GoalCategory = "retirement"
	GoalMajorPurchase   GoalCategory = "major_purchase"
	GoalDebtFreedom     GoalCategory = "debt_freedom"
	GoalFamilySupport   GoalCategory = "family_support"
	GoalTravelLifestyle GoalCategory = "travel_lifestyle"
	GoalHealthcare      GoalCategory = "healthcare"
	GoalLegacyGiving    GoalCategory = "legacy_giving"
	GoalCareerBusiness  GoalCategory = "career_business"
)

// validGoalCategories is the set of allowed goal categories.
var validGoalCategories = map[GoalCategory]bool{
	GoalRetirement:      true,
	GoalMajorPurchase:   true,
	GoalDebtFreedom:     true,
	GoalFamilySupport:   true,
	GoalTravelLifestyle: true,
	GoalHealthcare:      true,
	GoalLegacyGiving:    true,
	GoalCareerBusiness:  true,
}

// ValidateGoalCategory returns an error if the category is not recognized.
func ValidateGoalCategory(c GoalCategory) error {
	if !validGoalCategories[c] {
		return fmt.Errorf("invalid goal category %q: must be one of: retirement, major_purchase, "+
			"debt_freedom, family_support, travel_lifestyle, healthcare, legacy_giving, career_business", c)
	}
	return nil
}

// --- Goal priority enum ---

// GoalPriority is the client-assigned priority of a goal.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
	PriorityNA     GoalPriority = "na"
)

// validGoalPriorities is the set of allowed goal priorities.
var validGoalPriorities = map[GoalPriority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
	PriorityNA:     true,
}

// ValidateGoalPriority returns an error if the priority is not recognized.
func ValidateGoalPriority(p GoalPriority) error {
	if !validGoalPriorities[p] {
		return fmt.Errorf("invalid goal priority %q: must be one of: high, medium, low, na", p)
	}
	return nil
}

// --- Time horizon enum ---

// TimeHorizon is when a goal needs to be funded.
type TimeHorizon string

const (
	HorizonShort   TimeHorizon = "short"   // within ~3 years
	HorizonMid     TimeHorizon = "mid"     // 3-10 years
	HorizonLong    TimeHorizon = "long"    // 10+ years
	HorizonOngoing TimeHorizon = "ongoing" // continuous, no end date
)

// validHorizons is the set of allowed time horizons.
var validHorizons = map[TimeHorizon]bool{
	HorizonShort:   true,
	HorizonMid:     true,
	HorizonLong:    true,
	HorizonOngoing: true,
}

// ValidateHorizon returns an error if the horizon is not recognized.
func ValidateHorizon(h TimeHorizon) error {
	if !validHorizons[h] {
		return fmt.Errorf("invalid time horizon %q: must be one of: short, mid, long, ongoing", h)
	}
	return nil
}

// --- Flexibility enum ---

// Flexibility is how negotiable a goal's amount and timing are.
type Flexibility string

const (
	FlexFixed      Flexibility = "fixed"
	FlexFlexible   Flexibility = "flexible"
	FlexDeferrable Flexibility = "deferrable"
)

// validFlexibilities is the set of allowed flexibility values.
var validFlexibilities = map[Flexibility]bool{
	FlexFixed:      true,
	FlexFlexible:   true,
	FlexDeferrable: true,
}

// ValidateFlexibility returns an error if the flexibility is not recognized.
func ValidateFlexibility(f Flexibility) error {
	if !validFlexibilities[f] {
		return fmt.Errorf("invalid flexibility %q: must be one of: fixed, flexible, deferrable", f)
	}
	return nil
}

// --- Tradeoff axis enum ---

// TradeoffAxis is one of the purpose-discovery tension axes the client
// leans along.
type TradeoffAxis string

const (
	AxisGuaranteesVsGrowth       TradeoffAxis = "guarantees_vs_growth"
	AxisSimplicityVsOptimization TradeoffAxis = "simplicity_vs_optimization"
	AxisSpendVsPreserve          TradeoffAxis = "spend_vs_preserve"
	AxisDelegateVsControl        TradeoffAxis = "delegate_vs_control"
)

// validAxes is the set of allowed tradeoff axes.
var validAxes = map[TradeoffAxis]bool{
	AxisGuaranteesVsGrowth:       true,
	AxisSimplicityVsOptimization: true,
	AxisSpendVsPreserve:          true,
	AxisDelegateVsControl:        true,
}

// ValidateAxis returns an error if the axis is not recognized.
func ValidateAxis(a TradeoffAxis) error {
	if !validAxes[a] {
		return fmt.Errorf("invalid tradeoff axis %q: must be one of: guarantees_vs_growth, "+
			"simplicity_vs_optimization, spend_vs_preserve, delegate_vs_control", a)
	}
	return nil
}

// --- Intake record sections ---

// FederalEmployment is the optional federal-employee sub-record. Its
// presence alone is a planning signal (benefits elections, pension system).
type FederalEmployment struct {
	Agency           string `json:"agency,omitempty"`
	YearsOfService   int    `json:"years_of_service,omitempty"`
	RetirementSystem string `json:"retirement_system,omitempty"`
	PayGrade         string `json:"pay_grade,omitempty"`
}

// Dependent is one person the client supports.
type Dependent struct {
	Relationship         string     `json:"relationship"`
	BirthDate            *time.Time `json:"birth_date,omitempty"`
	FinanciallyDependent bool       `json:"financially_dependent"`
}

// BasicContext is the personal-context section of the intake record.
type BasicContext struct {
	FirstName         string             `json:"first_name,omitempty"`
	LastName          string             `json:"last_name,omitempty"`
	BirthDate         *time.Time         `json:"birth_date,omitempty"`
	MaritalStatus     string             `json:"marital_status,omitempty"`
	Occupation        string             `json:"occupation,omitempty"`
	FederalEmployment *FederalEmployment `json:"federal_employment,omitempty"`
	Dependents        []Dependent        `json:"dependents,omitempty"`
}

// HasFinancialDependents reports whether at least one dependent is flagged
// as financially dependent.
func (b *BasicContext) HasFinancialDependents() bool {
	if b == nil {
		return false
	}
	for _, d := range b.Dependents {
		if d.FinanciallyDependent {
			return true
		}
	}
	return false
}

// Age returns the client's age in whole years at the given time, and false
// when no birth date is recorded.
func (b *BasicContext) Age(at time.Time) (int, bool) {
	if b == nil || b.BirthDate == nil {
		return 0, false
	}
	bd := *b.BirthDate
	years := at.Year() - bd.Year()
	// Subtract a year if the birthday hasn't happened yet this year.
	if at.Month() < bd.Month() || (at.Month() == bd.Month() && at.Day() < bd.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years, true
}

// MaxNonNegotiables caps the non-negotiables subset of the card sort.
const MaxNonNegotiables = 3

// ValuesDiscovery is the card-sorted values section of the intake record.
type ValuesDiscovery struct {
	// Piles maps value-card id to its sorted pile.
	Piles map[string]Pile `json:"piles,omitempty"`
	// Top10 and Top5 are ordered subsets of the important pile.
	Top10 []string `json:"top_10,omitempty"`
	Top5  []string `json:"top_5,omitempty"`
	// NonNegotiables is the client's up-to-three untouchable values.
	NonNegotiables []string `json:"non_negotiables,omitempty"`
}

// Goal is one financial goal with its planning attributes.
type Goal struct {
	ID          string       `json:"id"`
	Label       string       `json:"label,omitempty"`
	Category    GoalCategory `json:"category"`
	Priority    GoalPriority `json:"priority"`
	Horizon     TimeHorizon  `json:"horizon"`
	Flexibility Flexibility  `json:"flexibility"`
	CorePlan    bool         `json:"core_plan,omitempty"`
}

// FinancialGoals is the ordered goals section of the intake record.
type FinancialGoals struct {
	Goals []Goal `json:"goals,omitempty"`
}

// TradeoffLeaning records how strongly the client leans along one axis.
// Strength runs 1 (slight) to 5 (strong) toward the named side.
type TradeoffLeaning struct {
	Axis     TradeoffAxis `json:"axis"`
	Toward   string       `json:"toward"`
	Strength int          `json:"strength"`
}

// FinancialPurpose is the purpose-statement section of the intake record.
type FinancialPurpose struct {
	PrimaryDriver   string            `json:"primary_driver,omitempty"`
	SecondaryDriver string            `json:"secondary_driver,omitempty"`
	Tradeoffs       []TradeoffLeaning `json:"tradeoffs,omitempty"`
	Statement       string            `json:"statement,omitempty"`
}

// --- Profile ---

// Profile is one client's intake record. All four sections are optional;
// a nil section simply hasn't been captured yet.
type Profile struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Basics    *BasicContext     `json:"basics,omitempty"`
	Values    *ValuesDiscovery  `json:"values,omitempty"`
	Goals     *FinancialGoals   `json:"goals,omitempty"`
	Purpose   *FinancialPurpose `json:"purpose,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// GoalList returns the combined goal list, empty when the section is absent.
func (p *Profile) GoalList() []Goal {
	if p == nil || p.Goals == nil {
		return nil
	}
	return p.Goals.Goals
}
