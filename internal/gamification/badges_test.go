package gamification_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/gamification"
	"github.com/antigravity/teampulse-api/internal/models"
)

func strPtr(s string) *string { return &s }

// checkInsAt builds n short check-ins at the given hour of day.
func checkInsAt(n, hour int) []models.CheckIn {
	out := make([]models.CheckIn, n)
	base := time.Date(2024, 3, 1, hour, 30, 0, 0, time.UTC)
	for i := range out {
		out[i] = models.CheckIn{
			TemplateType: "daily",
			Date:         base.AddDate(0, 0, -i),
			Yesterday:    strPtr("short update"),
		}
	}
	return out
}

func TestEvaluate_SevenCheckInsGrantsStreak7(t *testing.T) {
	earned := gamification.Evaluate(gamification.History{
		CheckIns: checkInsAt(7, 14),
		Granted:  map[string]bool{},
	})

	require.Len(t, earned, 1)
	assert.Equal(t, gamification.BadgeStreak7, earned[0])
}

func TestEvaluate_Idempotent(t *testing.T) {
	history := gamification.History{
		CheckIns:      checkInsAt(7, 14),
		KudosReceived: 12,
		Granted:       map[string]bool{},
	}

	first := gamification.Evaluate(history)
	require.NotEmpty(t, first)

	for _, id := range first {
		history.Granted[id] = true
	}

	second := gamification.Evaluate(history)
	assert.Empty(t, second)
}

func TestEvaluate_ThirtyCheckInsGrantsBothStreaks(t *testing.T) {
	earned := gamification.Evaluate(gamification.History{
		CheckIns: checkInsAt(30, 14),
		Granted:  map[string]bool{},
	})

	assert.Contains(t, earned, gamification.BadgeStreak7)
	assert.Contains(t, earned, gamification.BadgeStreak30)
}

func TestEvaluate_KudosThreshold(t *testing.T) {
	earned := gamification.Evaluate(gamification.History{
		KudosReceived: 9,
		Granted:       map[string]bool{},
	})
	assert.NotContains(t, earned, gamification.BadgeHelpful)

	earned = gamification.Evaluate(gamification.History{
		KudosReceived: 10,
		Granted:       map[string]bool{},
	})
	assert.Contains(t, earned, gamification.BadgeHelpful)
}

func TestEvaluate_Wordsmith(t *testing.T) {
	long := strings.Repeat("word ", 250)
	earned := gamification.Evaluate(gamification.History{
		CheckIns: []models.CheckIn{
			{TemplateType: "weekly", Date: time.Now(), Accomplishments: strPtr(long)},
		},
		Granted: map[string]bool{},
	})

	assert.Contains(t, earned, gamification.BadgeWordsmith)
}

func TestEvaluate_EarlyBird(t *testing.T) {
	// 10 check-ins at 08:30 qualify; 10 at 14:30 do not.
	earned := gamification.Evaluate(gamification.History{
		CheckIns: checkInsAt(10, 8),
		Granted:  map[string]bool{},
	})
	assert.Contains(t, earned, gamification.BadgeEarlyBird)

	earned = gamification.Evaluate(gamification.History{
		CheckIns: checkInsAt(10, 14),
		Granted:  map[string]bool{},
	})
	assert.NotContains(t, earned, gamification.BadgeEarlyBird)
}

func TestEvaluate_ProblemSolver(t *testing.T) {
	earned := gamification.Evaluate(gamification.History{
		CompletedActionItems: 20,
		Granted:              map[string]bool{},
	})
	assert.Contains(t, earned, gamification.BadgeProblemSolver)
}

func TestEvaluate_EmptyHistoryGrantsNothing(t *testing.T) {
	earned := gamification.Evaluate(gamification.History{Granted: map[string]bool{}})
	assert.Empty(t, earned)
}

func TestEvaluate_ManualBadgesNeverAutoGranted(t *testing.T) {
	earned := gamification.Evaluate(gamification.History{
		CheckIns:             checkInsAt(40, 8),
		KudosReceived:        50,
		CompletedActionItems: 50,
		Granted:              map[string]bool{},
	})

	assert.NotContains(t, earned, gamification.BadgeInnovator)
	assert.NotContains(t, earned, gamification.BadgeMonthlyMVP)
}

func TestCatalog_ManualOnlyFlags(t *testing.T) {
	require.NotNil(t, gamification.Get(gamification.BadgeInnovator))
	assert.True(t, gamification.Get(gamification.BadgeInnovator).ManualOnly)
	assert.True(t, gamification.Get(gamification.BadgeMonthlyMVP).ManualOnly)
	assert.False(t, gamification.Get(gamification.BadgeStreak7).ManualOnly)
	assert.Nil(t, gamification.Get("no_such_badge"))
}
