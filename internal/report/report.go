// Package report renders discovery insights as markdown for dashboards and
// chat surfaces. Rendering is presentation only — every value comes straight
// from the engine's result, verbatim.
package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lodestar-planning/lodestar/internal/insights"
)

// Kind names a renderable document.
type Kind string

// Insights is the full discovery-insights report.
const Insights Kind = "insights"

// Renderer holds the parsed templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses all report templates. Parse failures are programming
// bugs and surface at construction, not at render time.
func NewRenderer() (*Renderer, error) {
	tmpl := template.New("report").Funcs(template.FuncMap{
		"title":       titleCase,
		"domainLabel": insights.DomainLabel,
		"join":        strings.Join,
	})
	tmpl, err := tmpl.Parse(insightsTemplate)
	if err != nil {
		return nil, fmt.Errorf("report: parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// InsightsData is the view model for the insights report.
type InsightsData struct {
	ProfileName string
	Result      *insights.DiscoveryInsights
}

// Render produces the markdown document for a kind.
func (r *Renderer) Render(kind Kind, data any) (string, error) {
	var sb strings.Builder
	if err := r.templates.ExecuteTemplate(&sb, string(kind), data); err != nil {
		return "", fmt.Errorf("report: render %s: %w", kind, err)
	}
	return sb.String(), nil
}

// titleCase upper-cases enum-style values for display ("near_term" →
// "Near term").
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// insightsTemplate is the full report layout.
const insightsTemplate = `{{define "insights" -}}
# Discovery Insights — {{.ProfileName}}

_Profile completion: {{.Result.InputSummary.CompletionPercentage}}%_

## Strategy Profile

{{.Result.StrategyProfile.Summary}}

| Dimension | Value | Confidence |
|---|---|---|
| Income strategy | {{title (printf "%s" .Result.StrategyProfile.IncomeStrategy.Value)}} | {{title (printf "%s" .Result.StrategyProfile.IncomeStrategy.Confidence)}} |
| Timing sensitivity | {{title (printf "%s" .Result.StrategyProfile.TimingSensitivity.Value)}} | {{title (printf "%s" .Result.StrategyProfile.TimingSensitivity.Confidence)}} |
| Planning flexibility | {{title (printf "%s" .Result.StrategyProfile.PlanningFlexibility.Value)}} | {{title (printf "%s" .Result.StrategyProfile.PlanningFlexibility.Confidence)}} |
| Complexity tolerance | {{title (printf "%s" .Result.StrategyProfile.ComplexityTolerance.Value)}} | {{title (printf "%s" .Result.StrategyProfile.ComplexityTolerance.Confidence)}} |
| Guidance level | {{title (printf "%s" .Result.StrategyProfile.GuidanceLevel.Value)}} | {{title (printf "%s" .Result.StrategyProfile.GuidanceLevel.Confidence)}} |

## Planning Focus

{{range .Result.FocusAreas.Areas -}}
{{.Priority}}. **{{domainLabel .Domain}}** ({{title (printf "%s" .Importance)}}) — {{.Rationale}}
{{end}}
## Recommended Actions

{{if .Result.Actions.Recommendations -}}
{{range .Result.Actions.Recommendations -}}
- **{{.Title}}** ({{domainLabel .Domain}}, {{title (printf "%s" .Urgency)}})
  {{.Description}}
{{end -}}
{{else -}}
_No actions recommended yet — complete more discovery sections._
{{end -}}
{{end}}`
