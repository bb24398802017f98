package intake

import "fmt"

// --- Value category enum ---

// ValueCategory groups value cards into one of nine fixed categories.
// Every card in the deck belongs to exactly one category.
type ValueCategory string

const (
	CategorySecurity  ValueCategory = "security"
	CategoryFamily    ValueCategory = "family"
	CategoryFreedom   ValueCategory = "freedom"
	CategoryGrowth    ValueCategory = "growth"
	CategoryHealth    ValueCategory = "health"
	CategoryLegacy    ValueCategory = "legacy"
	CategoryPurpose   ValueCategory = "purpose"
	CategoryLifestyle ValueCategory = "lifestyle"
	CategoryCommunity ValueCategory = "community"
)

// ValueCategories is the fixed, ordered set of value categories.
var ValueCategories = []ValueCategory{
	CategorySecurity,
	CategoryFamily,
	CategoryFreedom,
	CategoryGrowth,
	CategoryHealth,
	CategoryLegacy,
	CategoryPurpose,
	CategoryLifestyle,
	CategoryCommunity,
}

// validValueCategories is the set of allowed value categories.
var validValueCategories = map[ValueCategory]bool{
	CategorySecurity:  true,
	CategoryFamily:    true,
	CategoryFreedom:   true,
	CategoryGrowth:    true,
	CategoryHealth:    true,
	CategoryLegacy:    true,
	CategoryPurpose:   true,
	CategoryLifestyle: true,
	CategoryCommunity: true,
}

// ValidateValueCategory returns an error if the category is not recognized.
func ValidateValueCategory(c ValueCategory) error {
	if !validValueCategories[c] {
		return fmt.Errorf("invalid value category %q: must be one of: security, family, freedom, "+
			"growth, health, legacy, purpose, lifestyle, community", c)
	}
	return nil
}

// --- Value card catalog ---

// ValueCard is one card in the values card-sort deck.
type ValueCard struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Category ValueCategory `json:"category"`
}

// valueCatalog is the static card deck. It is the single source of truth
// for the card id → category lookup used by the focus ranker. Card ids are
// stable identifiers; labels are display-only.
var valueCatalog = []ValueCard{
	// Security
	{ID: "financial_security", Label: "Financial security", Category: CategorySecurity},
	{ID: "stability", Label: "Stability", Category: CategorySecurity},
	{ID: "peace_of_mind", Label: "Peace of mind", Category: CategorySecurity},
	{ID: "predictability", Label: "Predictability", Category: CategorySecurity},
	{ID: "preparedness", Label: "Being prepared", Category: CategorySecurity},

	// Family
	{ID: "family_wellbeing", Label: "Family well-being", Category: CategoryFamily},
	{ID: "children_future", Label: "My children's future", Category: CategoryFamily},
	{ID: "partnership", Label: "Marriage / partnership", Category: CategoryFamily},
	{ID: "caregiving", Label: "Caring for loved ones", Category: CategoryFamily},
	{ID: "family_time", Label: "Time with family", Category: CategoryFamily},

	// Freedom
	{ID: "independence", Label: "Independence", Category: CategoryFreedom},
	{ID: "autonomy", Label: "Autonomy", Category: CategoryFreedom},
	{ID: "flexibility", Label: "Flexibility", Category: CategoryFreedom},
	{ID: "self_reliance", Label: "Self-reliance", Category: CategoryFreedom},

	// Growth
	{ID: "learning", Label: "Lifelong learning", Category: CategoryGrowth},
	{ID: "achievement", Label: "Achievement", Category: CategoryGrowth},
	{ID: "ambition", Label: "Ambition", Category: CategoryGrowth},
	{ID: "wealth_building", Label: "Building wealth", Category: CategoryGrowth},

	// Health
	{ID: "physical_health", Label: "Physical health", Category: CategoryHealth},
	{ID: "mental_health", Label: "Mental health", Category: CategoryHealth},
	{ID: "longevity", Label: "Longevity", Category: CategoryHealth},
	{ID: "vitality", Label: "Vitality", Category: CategoryHealth},

	// Legacy
	{ID: "leaving_legacy", Label: "Leaving a legacy", Category: CategoryLegacy},
	{ID: "inheritance", Label: "Providing an inheritance", Category: CategoryLegacy},
	{ID: "being_remembered", Label: "Being remembered", Category: CategoryLegacy},
	{ID: "family_history", Label: "Family history & tradition", Category: CategoryLegacy},

	// Purpose
	{ID: "meaningful_work", Label: "Meaningful work", Category: CategoryPurpose},
	{ID: "contribution", Label: "Making a contribution", Category: CategoryPurpose},
	{ID: "faith_spirituality", Label: "Faith / spirituality", Category: CategoryPurpose},
	{ID: "personal_mission", Label: "A personal mission", Category: CategoryPurpose},

	// Lifestyle
	{ID: "travel", Label: "Travel", Category: CategoryLifestyle},
	{ID: "adventure", Label: "Adventure", Category: CategoryLifestyle},
	{ID: "comfort", Label: "Comfort", Category: CategoryLifestyle},
	{ID: "leisure", Label: "Leisure & hobbies", Category: CategoryLifestyle},

	// Community
	{ID: "friendship", Label: "Friendship", Category: CategoryCommunity},
	{ID: "giving_back", Label: "Giving back", Category: CategoryCommunity},
	{ID: "belonging", Label: "Belonging", Category: CategoryCommunity},
	{ID: "civic_duty", Label: "Civic involvement", Category: CategoryCommunity},
}

// cardsByID indexes the catalog for O(1) lookup.
var cardsByID = func() map[string]ValueCard {
	m := make(map[string]ValueCard, len(valueCatalog))
	for _, c := range valueCatalog {
		m[c.ID] = c
	}
	return m
}()

// Catalog returns a copy of the full value-card deck.
func Catalog() []ValueCard {
	out := make([]ValueCard, len(valueCatalog))
	copy(out, valueCatalog)
	return out
}

// LookupCard returns the card for an id. Unknown ids return false — the
// engine treats them as absent signals, never as errors.
func LookupCard(id string) (ValueCard, bool) {
	c, ok := cardsByID[id]
	return c, ok
}

// CategoryOf returns the category a card id belongs to, and false for
// unknown ids.
func CategoryOf(id string) (ValueCategory, bool) {
	c, ok := cardsByID[id]
	if !ok {
		return "", false
	}
	return c.Category, true
}
