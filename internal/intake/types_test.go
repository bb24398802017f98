package intake

import (
	"testing"
	"time"
)

// --- Enum validation ---

func TestValidatePile(t *testing.T) {
	valid := []Pile{PileImportant, PileUnsure, PileNotImportant}
	for _, p := range valid {
		if err := ValidatePile(p); err != nil {
			t.Errorf("ValidatePile(%q) = %v, want nil", p, err)
		}
	}
	if err := ValidatePile("somewhat"); err == nil {
		t.Error("ValidatePile(\"somewhat\") = nil, want error")
	}
}

func TestValidateGoalCategory(t *testing.T) {
	valid := []GoalCategory{
		GoalRetirement, GoalMajorPurchase, GoalDebtFreedom, GoalFamilySupport,
		GoalTravelLifestyle, GoalHealthcare, GoalLegacyGiving, GoalCareerBusiness,
	}
	for _, c := range valid {
		if err := ValidateGoalCategory(c); err != nil {
			t.Errorf("ValidateGoalCategory(%q) = %v, want nil", c, err)
		}
	}
	if err := ValidateGoalCategory("crypto"); err == nil {
		t.Error("ValidateGoalCategory(\"crypto\") = nil, want error")
	}
}

func TestValidateGoalPriority(t *testing.T) {
	valid := []GoalPriority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNA}
	for _, p := range valid {
		if err := ValidateGoalPriority(p); err != nil {
			t.Errorf("ValidateGoalPriority(%q) = %v, want nil", p, err)
		}
	}
	if err := ValidateGoalPriority("urgent"); err == nil {
		t.Error("ValidateGoalPriority(\"urgent\") = nil, want error")
	}
}

func TestValidateHorizon(t *testing.T) {
	valid := []TimeHorizon{HorizonShort, HorizonMid, HorizonLong, HorizonOngoing}
	for _, h := range valid {
		if err := ValidateHorizon(h); err != nil {
			t.Errorf("ValidateHorizon(%q) = %v, want nil", h, err)
		}
	}
	if err := ValidateHorizon("someday"); err == nil {
		t.Error("ValidateHorizon(\"someday\") = nil, want error")
	}
}

func TestValidateFlexibility(t *testing.T) {
	valid := []Flexibility{FlexFixed, FlexFlexible, FlexDeferrable}
	for _, f := range valid {
		if err := ValidateFlexibility(f); err != nil {
			t.Errorf("ValidateFlexibility(%q) = %v, want nil", f, err)
		}
	}
	if err := ValidateFlexibility("rigid"); err == nil {
		t.Error("ValidateFlexibility(\"rigid\") = nil, want error")
	}
}

func TestValidateAxis(t *testing.T) {
	valid := []TradeoffAxis{
		AxisGuaranteesVsGrowth, AxisSimplicityVsOptimization,
		AxisSpendVsPreserve, AxisDelegateVsControl,
	}
	for _, a := range valid {
		if err := ValidateAxis(a); err != nil {
			t.Errorf("ValidateAxis(%q) = %v, want nil", a, err)
		}
	}
	if err := ValidateAxis("risk_vs_reward"); err == nil {
		t.Error("ValidateAxis(\"risk_vs_reward\") = nil, want error")
	}
}

// --- BasicContext helpers ---

func TestHasFinancialDependents(t *testing.T) {
	var nilBasics *BasicContext
	if nilBasics.HasFinancialDependents() {
		t.Error("nil BasicContext: want false")
	}

	b := &BasicContext{Dependents: []Dependent{
		{Relationship: "child", FinanciallyDependent: false},
	}}
	if b.HasFinancialDependents() {
		t.Error("no financially dependent members: want false")
	}

	b.Dependents = append(b.Dependents, Dependent{Relationship: "parent", FinanciallyDependent: true})
	if !b.HasFinancialDependents() {
		t.Error("one financially dependent member: want true")
	}
}

func TestAge_BirthdayAdjustment(t *testing.T) {
	at := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday passed this year", time.Date(1980, 3, 1, 0, 0, 0, 0, time.UTC), 46},
		{"birthday later this year", time.Date(1980, 9, 1, 0, 0, 0, 0, time.UTC), 45},
		{"birthday today", time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), 46},
		{"birthday tomorrow", time.Date(1980, 6, 16, 0, 0, 0, 0, time.UTC), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &BasicContext{BirthDate: &tt.birth}
			got, ok := b.Age(at)
			if !ok {
				t.Fatal("Age() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Age() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAge_NoBirthDate(t *testing.T) {
	b := &BasicContext{FirstName: "Dana"}
	if _, ok := b.Age(time.Now()); ok {
		t.Error("Age() ok = true without birth date, want false")
	}

	var nilBasics *BasicContext
	if _, ok := nilBasics.Age(time.Now()); ok {
		t.Error("nil BasicContext: Age() ok = true, want false")
	}
}

// --- Profile helpers ---

func TestGoalList_NilSafe(t *testing.T) {
	var nilProfile *Profile
	if got := nilProfile.GoalList(); got != nil {
		t.Errorf("nil profile GoalList() = %v, want nil", got)
	}

	p := &Profile{}
	if got := p.GoalList(); got != nil {
		t.Errorf("absent section GoalList() = %v, want nil", got)
	}

	p.Goals = &FinancialGoals{Goals: []Goal{{ID: "g1", Category: GoalRetirement}}}
	if got := p.GoalList(); len(got) != 1 || got[0].ID != "g1" {
		t.Errorf("GoalList() = %v, want one goal g1", got)
	}
}
