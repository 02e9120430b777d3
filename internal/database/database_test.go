package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/teampulse-api/internal/config"
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/google/uuid"
)

func setupDB(t *testing.T) {
	t.Helper()
	cfg := &config.Config{DatabaseURL: "file::memory:?cache=shared", Environment: "test"}
	if err := database.Connect(cfg); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	require.NoError(t, database.Migrate())
}

func strPtr(s string) *string { return &s }

func TestCheckInRoundTrip(t *testing.T) {
	setupDB(t)

	teamID := uuid.New()
	memberID := uuid.New()

	var none []models.CheckIn
	require.NoError(t, database.DB.Where("team_id = ?", teamID).Find(&none).Error)
	assert.Empty(t, none)

	checkIn := models.CheckIn{
		TeamID:       teamID,
		MemberID:     memberID,
		Date:         time.Now(),
		TemplateType: "daily",
		Yesterday:    strPtr("wrote migrations"),
		Today:        strPtr("round-trip tests"),
	}
	require.NoError(t, database.DB.Create(&checkIn).Error)
	assert.NotEqual(t, uuid.Nil, checkIn.ID)

	var loaded models.CheckIn
	require.NoError(t, database.DB.First(&loaded, "id = ?", checkIn.ID).Error)
	assert.Equal(t, teamID, loaded.TeamID)
	assert.Equal(t, "wrote migrations", loaded.Field("yesterday"))
	assert.Equal(t, "round-trip tests", loaded.Field("today"))
	assert.Empty(t, loaded.Field("blockers"))

	for i := 0; i < 3; i++ {
		extra := models.CheckIn{
			TeamID:       teamID,
			MemberID:     memberID,
			Date:         time.Now(),
			TemplateType: "daily",
			Yesterday:    strPtr("more work"),
		}
		require.NoError(t, database.DB.Create(&extra).Error)
	}

	var all []models.CheckIn
	require.NoError(t, database.DB.Where("team_id = ?", teamID).Find(&all).Error)
	assert.Len(t, all, 4)
}

func TestMemberBadgeUniqueIndex(t *testing.T) {
	setupDB(t)

	badge := models.MemberBadge{
		MemberID: uuid.New(),
		BadgeID:  "streak_7",
		EarnedAt: time.Now(),
	}
	require.NoError(t, database.DB.Create(&badge).Error)

	dup := models.MemberBadge{
		MemberID: badge.MemberID,
		BadgeID:  badge.BadgeID,
		EarnedAt: time.Now(),
	}
	assert.Error(t, database.DB.Create(&dup).Error)
}

func TestSoftDeleteHidesTeam(t *testing.T) {
	setupDB(t)

	team := models.Team{Name: "Ephemeral", Sector: "general", ManagerID: uuid.New()}
	require.NoError(t, database.DB.Create(&team).Error)
	require.NoError(t, database.DB.Delete(&team).Error)

	var found models.Team
	err := database.DB.First(&found, "id = ?", team.ID).Error
	assert.Error(t, err)

	require.NoError(t, database.DB.Unscoped().First(&found, "id = ?", team.ID).Error)
	assert.True(t, found.DeletedAt.Valid)
}
