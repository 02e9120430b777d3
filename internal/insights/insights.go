// Package insights derives team summaries, risk lists and member
// highlights from check-in text. This is deliberately a deterministic
// keyword heuristic, not a model: severity comes from case-insensitive
// substring matching with no tokenization or negation handling.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/google/uuid"
)

// Severity levels
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
	SentimentCritical = "critical"
)

type Risk struct {
	Risk     string    `json:"risk"`
	Severity string    `json:"severity"`
	Source   uuid.UUID `json:"source"`
}

type RiskEntry struct {
	Risk     string `json:"risk"`
	Severity string `json:"severity"`
}

type Summary struct {
	Summary      string      `json:"summary"`
	TopPoints    []string    `json:"top3Points"`
	Blockers     []string    `json:"blockers"`
	Achievements []string    `json:"achievements"`
	TopRisks     []RiskEntry `json:"topRisks"`
	Sentiment    string      `json:"sentiment"`
}

type MemberHighlight struct {
	MemberID   uuid.UUID `json:"memberId"`
	Highlights []string  `json:"highlights"`
}

type SubmitPatterns struct {
	ConsistentContributors []uuid.UUID `json:"consistentContributors"`
	NeedsFollowUp          []uuid.UUID `json:"needsFollowUp"`
	AverageResponseLength  int         `json:"averageResponseLength"`
}

// ClassifySeverity buckets blocker text: "urgent" or "critical"
// anywhere in the text means high, "minor" means low, anything else is
// medium.
func ClassifySeverity(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "critical"):
		return SeverityHigh
	case strings.Contains(lower, "minor"):
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// blockerText prefers the explicit blockers field, falling back to the
// OKR risk assessment.
func blockerText(c *models.CheckIn) string {
	if b := c.Field("blockers"); strings.TrimSpace(b) != "" {
		return b
	}
	return c.Field("riskAssessment")
}

// achievementText probes a fixed priority list of fields and returns
// the first non-empty one.
func achievementText(c *models.CheckIn) string {
	for _, key := range []string{"accomplishments", "keyAchievements", "yesterday", "dealsClosed"} {
		if v := c.Field(key); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

var severityRank = map[string]int{SeverityHigh: 3, SeverityMedium: 2, SeverityLow: 1}

// ExtractRisks collects blocker-like text across check-ins, classifies
// each, and returns at most the top 3 sorted by severity descending.
func ExtractRisks(checkIns []models.CheckIn) []Risk {
	risks := []Risk{}
	for i := range checkIns {
		text := blockerText(&checkIns[i])
		if strings.TrimSpace(text) == "" {
			continue
		}
		risks = append(risks, Risk{
			Risk:     text,
			Severity: ClassifySeverity(text),
			Source:   checkIns[i].MemberID,
		})
	}

	sort.SliceStable(risks, func(i, j int) bool {
		return severityRank[risks[i].Severity] > severityRank[risks[j].Severity]
	})

	if len(risks) > 3 {
		risks = risks[:3]
	}
	return risks
}

// TeamSummary builds the synthetic "AI" digest for a set of check-ins.
// An empty input yields a canned no-activity response.
func TeamSummary(checkIns []models.CheckIn) Summary {
	if len(checkIns) == 0 {
		return Summary{
			Summary:      "No check-ins available for this period.",
			TopPoints:    []string{"No activity to report"},
			Blockers:     []string{},
			Achievements: []string{},
			TopRisks:     []RiskEntry{},
			Sentiment:    SentimentNeutral,
		}
	}

	blockers := []string{}
	hasCritical := false
	for i := range checkIns {
		text := blockerText(&checkIns[i])
		if strings.TrimSpace(text) == "" {
			continue
		}
		blockers = append(blockers, text)
		if ClassifySeverity(text) == SeverityHigh {
			hasCritical = true
		}
	}

	achievements := []string{}
	for i := range checkIns {
		if a := achievementText(&checkIns[i]); a != "" {
			achievements = append(achievements, a)
			if len(achievements) == 5 {
				break
			}
		}
	}

	topRisks := make([]RiskEntry, 0, 3)
	for _, b := range blockers {
		topRisks = append(topRisks, RiskEntry{Risk: b, Severity: ClassifySeverity(b)})
		if len(topRisks) == 3 {
			break
		}
	}

	sentiment := SentimentPositive
	if hasCritical {
		sentiment = SentimentCritical
	} else if len(blockers) > 0 {
		sentiment = SentimentNegative
	}

	return Summary{
		Summary:      buildSummaryText(len(checkIns), len(achievements), len(blockers)),
		TopPoints:    topPoints(len(checkIns), blockers, achievements),
		Blockers:     blockers,
		Achievements: achievements,
		TopRisks:     topRisks,
		Sentiment:    sentiment,
	}
}

func buildSummaryText(checkInCount, achievementCount, blockerCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Team Update:** %d team members submitted updates.", checkInCount)
	if achievementCount > 0 {
		fmt.Fprintf(&b, "\n**Key Progress:** Team made significant progress with %d notable achievements.", achievementCount)
	}
	if blockerCount > 0 {
		fmt.Fprintf(&b, "\n**Attention Needed:** %d blocker(s) identified that need resolution.", blockerCount)
	} else {
		b.WriteString("\n**Status:** Team is on track with no major blockers.")
	}
	return b.String()
}

func topPoints(checkInCount int, blockers, achievements []string) []string {
	points := []string{
		fmt.Sprintf("%d team members provided updates with %d achievements reported", checkInCount, len(achievements)),
	}

	if len(blockers) == 0 {
		points = append(points, "Team is progressing smoothly with no critical blockers")
	} else {
		points = append(points, fmt.Sprintf("%d blocker(s) require attention and resolution", len(blockers)))
	}

	switch {
	case len(blockers) > 0:
		points = append(points, fmt.Sprintf("Priority: Address %q", truncate(blockers[0], 60)))
	case len(achievements) > 0:
		points = append(points, "Highlight: "+truncate(achievements[0], 60))
	default:
		points = append(points, "Team maintaining steady progress")
	}

	return points
}

// MemberHighlights extracts up to 3 contribution previews for one
// member from the supplied check-ins.
func MemberHighlights(checkIns []models.CheckIn, memberID uuid.UUID) MemberHighlight {
	highlights := []string{}
	seen := false
	for i := range checkIns {
		c := &checkIns[i]
		if c.MemberID != memberID {
			continue
		}
		seen = true
		for _, key := range []string{"accomplishments", "keyAchievements", "dealsClosed", "codeChanges"} {
			if v := c.Field(key); strings.TrimSpace(v) != "" {
				highlights = append(highlights, truncate(v, 80))
				break
			}
		}
	}

	if !seen {
		return MemberHighlight{MemberID: memberID, Highlights: []string{"No recent activity"}}
	}
	if len(highlights) == 0 {
		highlights = append(highlights, "Consistent participation in team check-ins")
	}
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	return MemberHighlight{MemberID: memberID, Highlights: highlights}
}

// AnalyzeSubmitPatterns splits the roster into consistent contributors
// (2+ submissions) and members needing follow-up (none), and reports
// the average response length in words.
func AnalyzeSubmitPatterns(checkIns []models.CheckIn, members []models.Member) SubmitPatterns {
	submissions := make(map[uuid.UUID]int, len(members))
	totalWords := 0
	for i := range checkIns {
		submissions[checkIns[i].MemberID]++
		totalWords += analytics.WordCount(&checkIns[i])
	}

	patterns := SubmitPatterns{
		ConsistentContributors: []uuid.UUID{},
		NeedsFollowUp:          []uuid.UUID{},
	}
	for _, m := range members {
		switch n := submissions[m.ID]; {
		case n >= 2:
			patterns.ConsistentContributors = append(patterns.ConsistentContributors, m.ID)
		case n == 0:
			patterns.NeedsFollowUp = append(patterns.NeedsFollowUp, m.ID)
		}
	}
	if len(checkIns) > 0 {
		patterns.AverageResponseLength = int(float64(totalWords)/float64(len(checkIns)) + 0.5)
	}
	return patterns
}

// truncate limits to max runes so multi-byte text is never split
// mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
