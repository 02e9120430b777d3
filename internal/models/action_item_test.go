package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/models"
)

func TestSetStatus_StampsCompletedAtOnce(t *testing.T) {
	item := models.ActionItem{Status: "todo"}
	first := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	assert.False(t, item.SetStatus("in-progress", first))
	assert.Nil(t, item.CompletedAt)

	assert.True(t, item.SetStatus("done", first))
	require.NotNil(t, item.CompletedAt)
	assert.Equal(t, first, *item.CompletedAt)

	// Regress and complete again: the original timestamp survives.
	later := first.Add(48 * time.Hour)
	assert.False(t, item.SetStatus("todo", later))
	assert.Equal(t, "todo", item.Status)
	require.NotNil(t, item.CompletedAt)
	assert.Equal(t, first, *item.CompletedAt)

	assert.False(t, item.SetStatus("done", later))
	assert.Equal(t, first, *item.CompletedAt)
}
