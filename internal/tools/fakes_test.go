package tools

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lodestar-planning/lodestar/internal/intake"
)

// --- Test helpers ---

// fakeStore is an in-memory ProfileStore for tool tests.
type fakeStore struct {
	profiles map[string]*intake.Profile
	byName   map[string]string
	nextID   int
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[string]*intake.Profile),
		byName:   make(map[string]string),
	}
}

func (s *fakeStore) CreateProfile(name string) (*intake.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.nextID++
	p := &intake.Profile{ID: fmt.Sprintf("p%d", s.nextID), Name: name}
	s.profiles[p.ID] = p
	s.byName[name] = p.ID
	return p, nil
}

func (s *fakeStore) DefaultProfile() (*intake.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if id, ok := s.byName[intake.DefaultProfileName]; ok {
		return s.profiles[id], nil
	}
	return s.CreateProfile(intake.DefaultProfileName)
}

func (s *fakeStore) FindProfileByName(name string) (*intake.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	id, ok := s.byName[name]
	if !ok {
		return nil, nil
	}
	return s.profiles[id], nil
}

func (s *fakeStore) GetProfile(id string) (*intake.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	p, ok := s.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", id)
	}
	return p, nil
}

func (s *fakeStore) ListProfiles(limit int) ([]intake.Profile, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []intake.Profile
	for _, p := range s.profiles {
		out = append(out, *p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) SaveBasics(id string, b *intake.BasicContext) error {
	return s.saveSection(id, func(p *intake.Profile) { p.Basics = b })
}

func (s *fakeStore) SaveValues(id string, v *intake.ValuesDiscovery) error {
	return s.saveSection(id, func(p *intake.Profile) { p.Values = v })
}

func (s *fakeStore) SaveGoals(id string, g *intake.FinancialGoals) error {
	return s.saveSection(id, func(p *intake.Profile) { p.Goals = g })
}

func (s *fakeStore) SavePurpose(id string, fp *intake.FinancialPurpose) error {
	return s.saveSection(id, func(p *intake.Profile) { p.Purpose = fp })
}

func (s *fakeStore) saveSection(id string, apply func(*intake.Profile)) error {
	if s.failWith != nil {
		return s.failWith
	}
	p, ok := s.profiles[id]
	if !ok {
		return fmt.Errorf("profile %q not found", id)
	}
	apply(p)
	return nil
}

// request builds a CallToolRequest with the given arguments.
func request(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult checks if the result is a tool error.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// seedReadyProfile stores a default profile with enough data to pass the
// insights completion gate: basics plus values and goals.
func seedReadyProfile(s *fakeStore) *intake.Profile {
	p, _ := s.DefaultProfile()
	birth := time.Date(1964, 1, 2, 0, 0, 0, 0, time.UTC)
	p.Basics = &intake.BasicContext{FirstName: "Dana", BirthDate: &birth}
	p.Values = &intake.ValuesDiscovery{
		Top5: []string{"financial_security", "stability", "family_wellbeing"},
	}
	p.Goals = &intake.FinancialGoals{Goals: []intake.Goal{{
		ID: "g1", Label: "Retire at 64", Category: intake.GoalRetirement,
		Priority: intake.PriorityHigh, Horizon: intake.HorizonShort, Flexibility: intake.FlexFixed,
	}}}
	return p
}
