package insights_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/insights"
	"github.com/antigravity/teampulse-api/internal/models"
)

func strPtr(s string) *string { return &s }

func checkInWithBlockers(memberID uuid.UUID, blockers string) models.CheckIn {
	return models.CheckIn{
		ID:           uuid.New(),
		MemberID:     memberID,
		TeamID:       uuid.New(),
		Date:         time.Now(),
		TemplateType: "weekly",
		Blockers:     strPtr(blockers),
	}
}

func TestClassifySeverity(t *testing.T) {
	assert.Equal(t, insights.SeverityHigh, insights.ClassifySeverity("This is urgent, please help"))
	assert.Equal(t, insights.SeverityHigh, insights.ClassifySeverity("CRITICAL database outage"))
	assert.Equal(t, insights.SeverityLow, insights.ClassifySeverity("minor issue, no rush"))
	assert.Equal(t, insights.SeverityMedium, insights.ClassifySeverity("waiting on design"))

	// Naive substring matching: negation is not understood.
	assert.Equal(t, insights.SeverityHigh, insights.ClassifySeverity("not critical at all"))
}

func TestExtractRisks_CapAndOrder(t *testing.T) {
	memberID := uuid.New()
	checkIns := []models.CheckIn{
		checkInWithBlockers(memberID, "minor papercut"),
		checkInWithBlockers(memberID, "waiting on design"),
		checkInWithBlockers(memberID, "urgent prod incident"),
		checkInWithBlockers(memberID, "another medium thing"),
	}

	risks := insights.ExtractRisks(checkIns)

	require.Len(t, risks, 3)
	rank := map[string]int{insights.SeverityHigh: 3, insights.SeverityMedium: 2, insights.SeverityLow: 1}
	for i := 1; i < len(risks); i++ {
		assert.GreaterOrEqual(t, rank[risks[i-1].Severity], rank[risks[i].Severity])
	}
	assert.Equal(t, insights.SeverityHigh, risks[0].Severity)
	assert.Equal(t, memberID, risks[0].Source)
}

func TestExtractRisks_FallsBackToRiskAssessment(t *testing.T) {
	c := models.CheckIn{
		MemberID:       uuid.New(),
		Date:           time.Now(),
		TemplateType:   "okr",
		OKRProgress:    strPtr("on track"),
		RiskAssessment: strPtr("vendor contract is critical"),
	}

	risks := insights.ExtractRisks([]models.CheckIn{c})

	require.Len(t, risks, 1)
	assert.Equal(t, insights.SeverityHigh, risks[0].Severity)
}

func TestExtractRisks_SkipsBlankEntries(t *testing.T) {
	c := checkInWithBlockers(uuid.New(), "   ")
	assert.Empty(t, insights.ExtractRisks([]models.CheckIn{c}))
}

func TestTeamSummary_EmptyInput(t *testing.T) {
	summary := insights.TeamSummary(nil)

	assert.Equal(t, "No check-ins available for this period.", summary.Summary)
	assert.Equal(t, []string{"No activity to report"}, summary.TopPoints)
	assert.Empty(t, summary.Blockers)
	assert.Empty(t, summary.TopRisks)
	assert.Equal(t, insights.SentimentNeutral, summary.Sentiment)
}

func TestTeamSummary_Sentiment(t *testing.T) {
	memberID := uuid.New()

	critical := insights.TeamSummary([]models.CheckIn{
		checkInWithBlockers(memberID, "urgent outage"),
	})
	assert.Equal(t, insights.SentimentCritical, critical.Sentiment)

	negative := insights.TeamSummary([]models.CheckIn{
		checkInWithBlockers(memberID, "waiting on api keys"),
	})
	assert.Equal(t, insights.SentimentNegative, negative.Sentiment)

	positive := insights.TeamSummary([]models.CheckIn{
		{
			MemberID:        memberID,
			Date:            time.Now(),
			TemplateType:    "weekly",
			Accomplishments: strPtr("launched the beta"),
		},
	})
	assert.Equal(t, insights.SentimentPositive, positive.Sentiment)
}

func TestTeamSummary_CapsAchievementsAndPoints(t *testing.T) {
	memberID := uuid.New()
	checkIns := make([]models.CheckIn, 8)
	for i := range checkIns {
		checkIns[i] = models.CheckIn{
			MemberID:        memberID,
			Date:            time.Now(),
			TemplateType:    "weekly",
			Accomplishments: strPtr("did a thing"),
		}
	}

	summary := insights.TeamSummary(checkIns)

	assert.Len(t, summary.Achievements, 5)
	assert.Len(t, summary.TopPoints, 3)
	assert.LessOrEqual(t, len(summary.TopRisks), 3)
}

func TestMemberHighlights(t *testing.T) {
	memberID := uuid.New()
	other := uuid.New()

	none := insights.MemberHighlights([]models.CheckIn{
		{MemberID: other, Date: time.Now(), TemplateType: "daily"},
	}, memberID)
	assert.Equal(t, []string{"No recent activity"}, none.Highlights)

	long := strings.Repeat("x", 100)
	highlights := insights.MemberHighlights([]models.CheckIn{
		{MemberID: memberID, Date: time.Now(), TemplateType: "weekly", Accomplishments: strPtr(long)},
	}, memberID)
	require.Len(t, highlights.Highlights, 1)
	assert.Equal(t, strings.Repeat("x", 80)+"...", highlights.Highlights[0])

	// Multi-byte text truncates on rune boundaries, never mid-character.
	wide := strings.Repeat("日", 100)
	wideHighlights := insights.MemberHighlights([]models.CheckIn{
		{MemberID: memberID, Date: time.Now(), TemplateType: "weekly", Accomplishments: strPtr(wide)},
	}, memberID)
	require.Len(t, wideHighlights.Highlights, 1)
	assert.True(t, utf8.ValidString(wideHighlights.Highlights[0]))
	assert.Equal(t, strings.Repeat("日", 80)+"...", wideHighlights.Highlights[0])

	participationOnly := insights.MemberHighlights([]models.CheckIn{
		{MemberID: memberID, Date: time.Now(), TemplateType: "daily", Today: strPtr("plans only")},
	}, memberID)
	assert.Equal(t, []string{"Consistent participation in team check-ins"}, participationOnly.Highlights)
}

func TestAnalyzeSubmitPatterns(t *testing.T) {
	teamID := uuid.New()
	active := models.Member{ID: uuid.New(), TeamID: teamID}
	once := models.Member{ID: uuid.New(), TeamID: teamID}
	silent := models.Member{ID: uuid.New(), TeamID: teamID}

	checkIns := []models.CheckIn{
		{MemberID: active.ID, Date: time.Now(), TemplateType: "daily", Yesterday: strPtr("one two")},
		{MemberID: active.ID, Date: time.Now(), TemplateType: "daily", Yesterday: strPtr("three four")},
		{MemberID: once.ID, Date: time.Now(), TemplateType: "daily", Yesterday: strPtr("five six")},
	}

	patterns := insights.AnalyzeSubmitPatterns(checkIns, []models.Member{active, once, silent})

	assert.Equal(t, []uuid.UUID{active.ID}, patterns.ConsistentContributors)
	assert.Equal(t, []uuid.UUID{silent.ID}, patterns.NeedsFollowUp)
	assert.Equal(t, 2, patterns.AverageResponseLength)
}

func TestDeterminePriority(t *testing.T) {
	assert.Equal(t, "high", insights.DeterminePriority("blocked on infra, asap please"))
	assert.Equal(t, "high", insights.DeterminePriority("urgent fix needed"))
	assert.Equal(t, "low", insights.DeterminePriority("minor cleanup, nice to have"))
	assert.Equal(t, "medium", insights.DeterminePriority("waiting for review"))
}

func TestExtractActionItems(t *testing.T) {
	c := models.CheckIn{
		ID:           uuid.New(),
		MemberID:     uuid.New(),
		Date:         time.Now(),
		TemplateType: "weekly",
		Blockers:     strPtr("urgent: deploy pipeline is broken\nshort\nwaiting on legal approval"),
	}

	drafts := insights.ExtractActionItems(&c)

	// "short" is under the minimum length filter.
	require.Len(t, drafts, 2)
	assert.Equal(t, "high", drafts[0].Priority)
	assert.True(t, strings.HasPrefix(drafts[0].Title, "Resolve: "))
	assert.Equal(t, "medium", drafts[1].Priority)
}

func TestExtractActionItems_RiskAssessmentAlwaysHigh(t *testing.T) {
	c := models.CheckIn{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		Date:           time.Now(),
		TemplateType:   "okr",
		RiskAssessment: strPtr("hiring slipping behind plan"),
	}

	drafts := insights.ExtractActionItems(&c)

	require.Len(t, drafts, 1)
	assert.Equal(t, "high", drafts[0].Priority)
	assert.True(t, strings.HasPrefix(drafts[0].Title, "Address Risk: "))
}
