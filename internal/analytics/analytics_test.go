package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/models"
)

func strPtr(s string) *string { return &s }

func member(teamID uuid.UUID) models.Member {
	return models.Member{ID: uuid.New(), TeamID: teamID, Name: "m"}
}

func TestAggregate_ZeroMembers(t *testing.T) {
	teamID := uuid.New()

	report := analytics.Aggregate(teamID, nil, nil, 7, time.Now())

	assert.Equal(t, 0, report.SubmitRate)
	assert.Equal(t, 0, report.DelayRate)
	assert.Equal(t, 0.0, report.AvgWordCount)
	assert.Equal(t, 0, report.RiskCount)
	assert.Empty(t, report.MemberStats)
}

func TestAggregate_OneOfThreeSubmitted(t *testing.T) {
	teamID := uuid.New()
	now := time.Now()

	members := []models.Member{member(teamID), member(teamID), member(teamID)}
	checkIns := []models.CheckIn{
		{
			ID:           uuid.New(),
			MemberID:     members[0].ID,
			TeamID:       teamID,
			Date:         now.Add(-48 * time.Hour),
			TemplateType: "daily",
			Yesterday:    strPtr("shipped the thing"),
			Today:        strPtr("more shipping"),
		},
	}

	report := analytics.Aggregate(teamID, members, checkIns, 7, now)

	assert.Equal(t, 33, report.SubmitRate)
	assert.Equal(t, 67, report.DelayRate)
	require.Len(t, report.MemberStats, 3)
	assert.True(t, report.MemberStats[0].Submitted)
	assert.False(t, report.MemberStats[1].Submitted)
	assert.False(t, report.MemberStats[2].Submitted)
}

func TestAggregate_OutsideWindowIgnored(t *testing.T) {
	teamID := uuid.New()
	now := time.Now()

	members := []models.Member{member(teamID)}
	checkIns := []models.CheckIn{
		{
			MemberID:     members[0].ID,
			TeamID:       teamID,
			Date:         now.Add(-10 * 24 * time.Hour),
			TemplateType: "daily",
			Yesterday:    strPtr("old news"),
		},
	}

	report := analytics.Aggregate(teamID, members, checkIns, 7, now)

	assert.Equal(t, 0, report.SubmitRate)
	assert.Equal(t, 100, report.DelayRate)
	assert.Equal(t, 0, report.RiskCount)
}

func TestAggregate_RiskCountUsesLatestCheckIn(t *testing.T) {
	teamID := uuid.New()
	now := time.Now()
	m := member(teamID)

	// Older check-in has blockers, the latest does not: no risk.
	checkIns := []models.CheckIn{
		{
			MemberID:     m.ID,
			TeamID:       teamID,
			Date:         now.Add(-72 * time.Hour),
			TemplateType: "daily",
			Yesterday:    strPtr("stuff"),
			Blockers:     strPtr("waiting on review"),
		},
		{
			MemberID:     m.ID,
			TeamID:       teamID,
			Date:         now.Add(-1 * time.Hour),
			TemplateType: "daily",
			Yesterday:    strPtr("unblocked now"),
		},
	}

	report := analytics.Aggregate(teamID, []models.Member{m}, checkIns, 7, now)

	assert.Equal(t, 100, report.SubmitRate)
	assert.Equal(t, 0, report.RiskCount)
	require.Len(t, report.MemberStats, 1)
	assert.False(t, report.MemberStats[0].HasBlockers)
}

func TestAggregate_RiskCounted(t *testing.T) {
	teamID := uuid.New()
	now := time.Now()
	m := member(teamID)

	checkIns := []models.CheckIn{
		{
			MemberID:     m.ID,
			TeamID:       teamID,
			Date:         now.Add(-1 * time.Hour),
			TemplateType: "weekly",
			Blockers:     strPtr("waiting on design"),
		},
	}

	report := analytics.Aggregate(teamID, []models.Member{m}, checkIns, 7, now)

	assert.Equal(t, 1, report.RiskCount)
	assert.True(t, report.MemberStats[0].HasBlockers)
}

func TestWordCount_AllTextFields(t *testing.T) {
	c := models.CheckIn{
		TemplateType: "daily",
		Yesterday:    strPtr("one two three"),
		Today:        strPtr("four  five"), // double space collapses
		Blockers:     strPtr(""),
	}

	assert.Equal(t, 5, analytics.WordCount(&c))
}

func TestAggregate_AvgWordCountOverRoster(t *testing.T) {
	teamID := uuid.New()
	now := time.Now()

	m1 := member(teamID)
	m2 := member(teamID)
	checkIns := []models.CheckIn{
		{
			MemberID:     m1.ID,
			TeamID:       teamID,
			Date:         now.Add(-1 * time.Hour),
			TemplateType: "daily",
			Yesterday:    strPtr("a b c d"),
		},
	}

	report := analytics.Aggregate(teamID, []models.Member{m1, m2}, checkIns, 7, now)

	// 4 words over a roster of 2, non-submitter counts as zero.
	assert.Equal(t, 2.0, report.AvgWordCount)
}
