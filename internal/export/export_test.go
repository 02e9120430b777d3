package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/export"
	"github.com/antigravity/teampulse-api/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleInput() (export.Input, uuid.UUID) {
	memberID := uuid.New()
	generated := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	return export.Input{
		TeamName:    "Platform",
		GeneratedAt: generated,
		Members:     map[uuid.UUID]string{memberID: "Alice"},
		CheckIns: []models.CheckIn{
			{
				ID:           uuid.New(),
				MemberID:     memberID,
				Date:         generated.Add(-24 * time.Hour),
				TemplateType: "weekly",
				Accomplishments: strPtr(
					"shipped auth, fixed flaky tests"),
				Blockers: strPtr(`waiting on "infra" team`),
			},
		},
		Report: analytics.Report{SubmitRate: 50, DelayRate: 50, AvgWordCount: 12.4, RiskCount: 1},
		ActionItems: []models.ActionItem{
			{Title: "Fix pipeline", Priority: "high", Status: "todo", CreatedAt: generated},
		},
		Kudos: []models.Kudos{
			{FromMemberID: memberID, ToMemberID: uuid.New(), Message: "great work", Date: generated},
		},
	}, memberID
}

func TestCSV_CheckIns(t *testing.T) {
	in, _ := sampleInput()

	data, name, err := export.CSV(export.ContentCheckIns, in)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Member,Date,Template,Content,Blockers", lines[0])

	// The comma in the accomplishments value forces quoting; the
	// blockers value has quotes but no comma and stays bare.
	assert.Contains(t, lines[1], `"shipped auth, fixed flaky tests"`)
	assert.Contains(t, lines[1], `waiting on "infra" team`)
	assert.Equal(t, "checkins_2024-06-15.csv", name)
}

func TestCSV_QuotesDoubledInsideWrapper(t *testing.T) {
	in, memberID := sampleInput()
	in.CheckIns[0].Accomplishments = strPtr(`said "done", moved on`)
	in.Members[memberID] = "Alice"

	data, _, err := export.CSV(export.ContentCheckIns, in)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"said ""done"", moved on"`)
}

func TestCSV_Analytics(t *testing.T) {
	in, _ := sampleInput()

	data, name, err := export.CSV(export.ContentAnalytics, in)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Submit Rate,50%")
	assert.Contains(t, out, "Delay Rate,50%")
	assert.Contains(t, out, "Avg Word Count,12")
	assert.Contains(t, out, "Risk Count,1")
	assert.Equal(t, "analytics_2024-06-15.csv", name)
}

func TestCSV_ActionItems_UnassignedAndNoDueDate(t *testing.T) {
	in, _ := sampleInput()

	data, _, err := export.CSV(export.ContentActionItems, in)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Fix pipeline,,high,todo,Unassigned,2024-06-15,", lines[1])
}

func TestCSV_Kudos_UnknownRecipient(t *testing.T) {
	in, _ := sampleInput()

	data, _, err := export.CSV(export.ContentKudos, in)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Alice,Unknown,great work,2024-06-15")
}

func TestCSV_FullReportRejected(t *testing.T) {
	in, _ := sampleInput()

	_, _, err := export.CSV(export.ContentFullReport, in)
	assert.Error(t, err)
}

func TestValidContent(t *testing.T) {
	assert.True(t, export.ValidContent(export.FormatCSV, export.ContentCheckIns))
	assert.True(t, export.ValidContent(export.FormatPDF, export.ContentFullReport))
	assert.False(t, export.ValidContent(export.FormatCSV, export.ContentFullReport))
	assert.False(t, export.ValidContent(export.FormatPDF, "everything"))
}

func TestPDF_ProducesDocument(t *testing.T) {
	in, _ := sampleInput()

	for _, content := range []string{
		export.ContentCheckIns,
		export.ContentAnalytics,
		export.ContentActionItems,
		export.ContentKudos,
		export.ContentFullReport,
	} {
		data, name, err := export.PDF(content, in)
		require.NoError(t, err, content)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"), content)
		assert.True(t, strings.HasSuffix(name, ".pdf"), content)
	}
}

func TestPDF_FilenameUsesUnderscores(t *testing.T) {
	in, _ := sampleInput()

	_, name, err := export.PDF(export.ContentFullReport, in)
	require.NoError(t, err)
	assert.Equal(t, "full_report_2024-06-15.pdf", name)
}
