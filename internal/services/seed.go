package services

import (
	"time"

	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData populates an empty database with a demo manager, team,
// members and a few days of check-ins and kudos. No-op when teams
// already exist.
func SeedDemoData() error {
	var count int64
	if err := database.DB.Model(&models.Team{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	manager := models.User{
		Email:    "demo@teampulse.dev",
		Password: string(password),
		Name:     "Demo Manager",
	}
	if err := database.DB.Create(&manager).Error; err != nil {
		return err
	}

	team := models.Team{
		Name:             "Demo Team",
		ManagerID:        manager.ID,
		Sector:           "engineering",
		Description:      "Seeded demo team",
		DefaultTemplate:  "weekly",
		CheckInFrequency: "weekly",
		IsPublic:         true,
	}
	if err := database.DB.Create(&team).Error; err != nil {
		return err
	}

	now := time.Now()
	names := []struct {
		name  string
		email string
		role  string
	}{
		{"Alice Chen", "alice@teampulse.dev", "leader"},
		{"Bob Smith", "bob@teampulse.dev", "member"},
		{"Carol Diaz", "carol@teampulse.dev", "member"},
	}

	members := make([]models.Member, 0, len(names))
	for _, n := range names {
		member := models.Member{
			Name:     n.name,
			Email:    n.email,
			TeamID:   team.ID,
			Role:     n.role,
			JoinedAt: &now,
			Preferences: models.MemberPreferences{
				Theme:              "dark",
				Language:           "en",
				EmailNotifications: true,
				EmailDigest:        "weekly",
			},
		}
		if err := database.DB.Create(&member).Error; err != nil {
			return err
		}
		members = append(members, member)
	}

	accomplishments := "Shipped the reporting dashboard and closed out the onboarding epic"
	plans := "Start on the analytics rework and pair with Bob on the exporter"
	blockers := "Waiting on design review, minor delay expected"
	checkIn := models.CheckIn{
		MemberID:        members[0].ID,
		TeamID:          team.ID,
		Date:            now.Add(-24 * time.Hour),
		TemplateType:    "weekly",
		Accomplishments: &accomplishments,
		NextWeekPlans:   &plans,
		Blockers:        &blockers,
	}
	if err := database.DB.Create(&checkIn).Error; err != nil {
		return err
	}

	yesterday := "Fixed the flaky CI pipeline and reviewed three PRs"
	today := "Picking up the check-in reminder scheduling work"
	daily := models.CheckIn{
		MemberID:     members[1].ID,
		TeamID:       team.ID,
		Date:         now.Add(-2 * time.Hour),
		TemplateType: "daily",
		Yesterday:    &yesterday,
		Today:        &today,
	}
	if err := database.DB.Create(&daily).Error; err != nil {
		return err
	}

	kudos := models.Kudos{
		FromMemberID: members[1].ID,
		ToMemberID:   members[0].ID,
		TeamID:       team.ID,
		Message:      "Thanks for unblocking the deployment!",
	}
	return database.DB.Create(&kudos).Error
}
