package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/templates"
)

func TestGet(t *testing.T) {
	daily := templates.Get("daily")
	require.NotNil(t, daily)
	assert.Equal(t, "Daily Standup", daily.Name)
	assert.Nil(t, templates.Get("quarterly"))
}

func TestBySector(t *testing.T) {
	all := templates.BySector("")
	assert.Len(t, all, 7)

	eng := templates.BySector("engineering")
	ids := make([]string, 0, len(eng))
	for _, tpl := range eng {
		ids = append(ids, tpl.ID)
	}

	// Sector templates plus every general one.
	assert.Contains(t, ids, "engineering")
	assert.Contains(t, ids, "daily")
	assert.Contains(t, ids, "weekly")
	assert.NotContains(t, ids, "sales")
	assert.NotContains(t, ids, "product")
}

func TestValidate_RequiredFields(t *testing.T) {
	err := templates.Validate("daily", map[string]string{
		"yesterday": "wrote tests",
		"today":     "more tests",
	})
	assert.NoError(t, err)

	err = templates.Validate("daily", map[string]string{
		"yesterday": "wrote tests",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "today")
}

func TestValidate_RejectsForeignFields(t *testing.T) {
	err := templates.Validate("daily", map[string]string{
		"yesterday":   "wrote tests",
		"today":       "more tests",
		"dealsClosed": "two",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dealsClosed")
}

func TestValidate_UnknownTemplate(t *testing.T) {
	err := templates.Validate("quarterly", map[string]string{})
	assert.Error(t, err)
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	err := templates.Validate("okr", map[string]string{
		"okrProgress":     "on track",
		"riskAssessment":  "hiring slipping",
		"mitigationPlans": "",
	})
	assert.NoError(t, err)
}
