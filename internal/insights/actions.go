package insights

import (
	"strings"

	"github.com/antigravity/teampulse-api/internal/models"
)

// ActionItemDraft is a suggested action item extracted from check-in
// text, before persistence fills in IDs and ownership.
type ActionItemDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// DeterminePriority maps blocker text to a priority via keyword
// matching.
func DeterminePriority(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "critical") ||
		strings.Contains(lower, "blocked") || strings.Contains(lower, "asap"):
		return "high"
	case strings.Contains(lower, "minor") || strings.Contains(lower, "nice to have") ||
		strings.Contains(lower, "when possible"):
		return "low"
	default:
		return "medium"
	}
}

// ExtractActionItems suggests action items from a check-in: one per
// blocker line longer than 10 characters, plus one high-priority item
// for a populated risk assessment.
func ExtractActionItems(c *models.CheckIn) []ActionItemDraft {
	drafts := []ActionItemDraft{}

	if blockers := c.Field("blockers"); strings.TrimSpace(blockers) != "" {
		for _, line := range strings.Split(blockers, "\n") {
			line = strings.TrimSpace(line)
			if len(line) <= 10 {
				continue
			}
			drafts = append(drafts, ActionItemDraft{
				Title:       "Resolve: " + truncate(line, 50),
				Description: line,
				Priority:    DeterminePriority(line),
			})
		}
	}

	if risk := c.Field("riskAssessment"); strings.TrimSpace(risk) != "" {
		drafts = append(drafts, ActionItemDraft{
			Title:       "Address Risk: " + truncate(risk, 50),
			Description: risk,
			Priority:    SeverityHigh,
		})
	}

	return drafts
}
