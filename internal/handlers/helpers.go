package handlers

import (
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// canManageTeam reports whether the authenticated actor owns the team
// (manager) or leads it (member with leader role).
func canManageTeam(c *fiber.Ctx, team *models.Team) bool {
	userID := middleware.GetUserID(c)
	if middleware.GetActor(c) == middleware.ActorManager {
		return team.ManagerID == userID
	}

	var member models.Member
	if err := database.DB.Where("id = ? AND team_id = ?", userID, team.ID).First(&member).Error; err != nil {
		return false
	}
	return member.Role == "leader"
}

// isTeamActor reports whether the actor may read team data: the owning
// manager or any member of the team.
func isTeamActor(c *fiber.Ctx, team *models.Team) bool {
	userID := middleware.GetUserID(c)
	if middleware.GetActor(c) == middleware.ActorManager {
		return team.ManagerID == userID
	}

	var member models.Member
	return database.DB.Where("id = ? AND team_id = ?", userID, team.ID).First(&member).Error == nil
}

// findTeam loads a team by the :id route param, writing the error
// response itself when it fails.
func findTeam(c *fiber.Ctx) (*models.Team, error) {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid team ID",
		})
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", teamID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Team not found",
		})
	}
	return &team, nil
}

// memberNameMap resolves member IDs to display names for report
// projections. Missing members degrade to "Unknown" at render time.
func memberNameMap(teamID uuid.UUID) map[uuid.UUID]string {
	var members []models.Member
	database.DB.Where("team_id = ?", teamID).Find(&members)

	names := make(map[uuid.UUID]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}
