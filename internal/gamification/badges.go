// Package gamification holds the fixed badge catalog and decides which
// badges a member has newly earned.
package gamification

import (
	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/models"
)

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Requirement string `json:"requirement"`
	// ManualOnly badges have no automatic rule and are granted through
	// the leader grant endpoint.
	ManualOnly bool `json:"manualOnly"`
}

// Badge IDs. The streak badges count lifetime check-ins, not
// consecutive days; the catalog text reflects that.
const (
	BadgeStreak7       = "streak_7"
	BadgeStreak30      = "streak_30"
	BadgeHelpful       = "helpful"
	BadgeWordsmith     = "wordsmith"
	BadgeEarlyBird     = "early_bird"
	BadgeProblemSolver = "problem_solver"
	BadgeInnovator     = "innovator"
	BadgeMonthlyMVP    = "mvp_month"
)

var Catalog = []Badge{
	{ID: BadgeStreak7, Name: "7-Day Streak", Description: "Submitted 7 check-ins", Icon: "🔥", Color: "from-orange-500 to-red-500", Requirement: "Submit 7 check-ins"},
	{ID: BadgeStreak30, Name: "30-Day Warrior", Description: "Submitted 30 check-ins", Icon: "🚀", Color: "from-purple-500 to-pink-500", Requirement: "Submit 30 check-ins"},
	{ID: BadgeHelpful, Name: "Team Helper", Description: "Received 10+ kudos from teammates", Icon: "🤝", Color: "from-blue-500 to-cyan-500", Requirement: "Receive 10 kudos"},
	{ID: BadgeWordsmith, Name: "Wordsmith", Description: "Average word count over 200", Icon: "✍️", Color: "from-green-500 to-emerald-500", Requirement: "Maintain 200+ avg words"},
	{ID: BadgeEarlyBird, Name: "Early Submitter", Description: "Submitted 10+ check-ins before 9 AM", Icon: "🌅", Color: "from-yellow-500 to-orange-500", Requirement: "Submit 10 early check-ins"},
	{ID: BadgeProblemSolver, Name: "Problem Solver", Description: "Resolved 20+ action items", Icon: "🎯", Color: "from-indigo-500 to-purple-500", Requirement: "Complete 20 action items"},
	{ID: BadgeInnovator, Name: "Innovator", Description: "Shared 5+ innovative ideas", Icon: "💡", Color: "from-pink-500 to-rose-500", Requirement: "Share 5 ideas", ManualOnly: true},
	{ID: BadgeMonthlyMVP, Name: "Monthly MVP", Description: "Selected as MVP of the month", Icon: "🏆", Color: "from-yellow-400 to-yellow-600", Requirement: "Win monthly MVP vote", ManualOnly: true},
}

// Get returns the catalog entry for a badge id, or nil.
func Get(id string) *Badge {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// History is a member's full (unwindowed) activity, as loaded by the
// caller, plus the badges already granted.
type History struct {
	CheckIns             []models.CheckIn
	KudosReceived        int
	CompletedActionItems int
	Granted              map[string]bool
}

// Thresholds for the automatic award rules.
const (
	streakBronzeCount  = 7
	streakGoldCount    = 30
	helpfulKudosCount  = 10
	wordsmithAvgWords  = 200
	earlyBirdCount     = 10
	earlyBirdHour      = 9
	problemSolvedCount = 20
)

// Evaluate returns the IDs of badges newly earned given the history.
// Already-granted badges are skipped, which makes repeated evaluation
// of an unchanged history a no-op.
func Evaluate(h History) []string {
	earned := []string{}
	award := func(id string) {
		if !h.Granted[id] {
			earned = append(earned, id)
		}
	}

	if len(h.CheckIns) >= streakBronzeCount {
		award(BadgeStreak7)
	}
	if len(h.CheckIns) >= streakGoldCount {
		award(BadgeStreak30)
	}
	if h.KudosReceived >= helpfulKudosCount {
		award(BadgeHelpful)
	}

	if len(h.CheckIns) > 0 {
		totalWords := 0
		for i := range h.CheckIns {
			totalWords += analytics.WordCount(&h.CheckIns[i])
		}
		if float64(totalWords)/float64(len(h.CheckIns)) >= wordsmithAvgWords {
			award(BadgeWordsmith)
		}
	}

	early := 0
	for i := range h.CheckIns {
		if h.CheckIns[i].Date.Hour() < earlyBirdHour {
			early++
		}
	}
	if early >= earlyBirdCount {
		award(BadgeEarlyBird)
	}

	if h.CompletedActionItems >= problemSolvedCount {
		award(BadgeProblemSolver)
	}

	return earned
}
