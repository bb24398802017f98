package insights

// Weights holds every tunable constant in the engine: boost magnitudes,
// importance-banding thresholds, the retirement age band, and output caps.
// The exact numbers are not sacred — they are parameters validated against
// the engine's property tests (near-retirement clients must rank retirement
// income in the top 3, dependents must pull insurance into the top 5, and
// so on). Tune them through the settings file, not by editing call sites.
type Weights struct {
	// Value-category boosts. A card in the top 5 counts more than one that
	// only made the top 10.
	Top5ValueBoost  int `yaml:"top5_value_boost"`
	Top10ValueBoost int `yaml:"top10_value_boost"`

	// Goal boosts. Base applies per mapped domain; the bonuses scale it up
	// for high priority and near horizons.
	GoalBaseBoost         int `yaml:"goal_base_boost"`
	GoalHighPriorityBonus int `yaml:"goal_high_priority_bonus"`
	GoalShortHorizonBonus int `yaml:"goal_short_horizon_bonus"`
	GoalMidHorizonBonus   int `yaml:"goal_mid_horizon_bonus"`

	// Contextual boosts.
	NearRetirementBoost      int `yaml:"near_retirement_boost"`       // retirement_income
	ShortRetirementGoalBoost int `yaml:"short_retirement_goal_boost"` // retirement_income
	DependentsInsuranceBoost int `yaml:"dependents_insurance_boost"`  // insurance_risk
	DependentsEstateBoost    int `yaml:"dependents_estate_boost"`     // estate_legacy
	FederalEmploymentBoost   int `yaml:"federal_employment_boost"`    // benefits_optimization

	// Retirement age band: "near retirement" means within WindowYears of
	// RetirementAge (or already past it).
	RetirementAge             int `yaml:"retirement_age"`
	NearRetirementWindowYears int `yaml:"near_retirement_window_years"`

	// Importance banding thresholds (absolute scores, not ranks).
	CriticalThreshold int `yaml:"critical_threshold"`
	HighThreshold     int `yaml:"high_threshold"`
	ModerateThreshold int `yaml:"moderate_threshold"`

	// Output caps.
	MaxActions          int `yaml:"max_actions"`
	MaxTopActions       int `yaml:"max_top_actions"`
	MaxActionsPerDomain int `yaml:"max_actions_per_domain"`
}

// DefaultWeights returns the shipped tuning. These values satisfy all the
// ranking properties the engine tests assert.
func DefaultWeights() Weights {
	return Weights{
		Top5ValueBoost:  12,
		Top10ValueBoost: 5,

		GoalBaseBoost:         10,
		GoalHighPriorityBonus: 8,
		GoalShortHorizonBonus: 6,
		GoalMidHorizonBonus:   3,

		NearRetirementBoost:      30,
		ShortRetirementGoalBoost: 15,
		DependentsInsuranceBoost: 20,
		DependentsEstateBoost:    14,
		FederalEmploymentBoost:   25,

		RetirementAge:             65,
		NearRetirementWindowYears: 5,

		CriticalThreshold: 45,
		HighThreshold:     25,
		ModerateThreshold: 10,

		MaxActions:          7,
		MaxTopActions:       5,
		MaxActionsPerDomain: 2,
	}
}
