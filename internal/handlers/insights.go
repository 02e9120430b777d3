package handlers

import (
	"strconv"
	"time"

	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/insights"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// loadWindowedCheckIns fetches a team's check-ins within the trailing
// window requested via the days query param.
func loadWindowedCheckIns(c *fiber.Ctx, teamID uuid.UUID) []models.CheckIn {
	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days < 1 {
		days = 7
	}
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)

	var checkIns []models.CheckIn
	database.DB.Where("team_id = ? AND date >= ?", teamID, cutoff).
		Order("date ASC").
		Find(&checkIns)
	return checkIns
}

// GetTeamSummary generates the heuristic team digest for the window.
func GetTeamSummary(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	return c.JSON(insights.TeamSummary(loadWindowedCheckIns(c, team.ID)))
}

// GetTeamRisks extracts the top blockers and risks for the window.
func GetTeamRisks(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	return c.JSON(insights.ExtractRisks(loadWindowedCheckIns(c, team.ID)))
}

// GetTeamPatterns reports submission consistency for the window.
func GetTeamPatterns(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	var members []models.Member
	database.DB.Where("team_id = ?", team.ID).Find(&members)

	return c.JSON(insights.AnalyzeSubmitPatterns(loadWindowedCheckIns(c, team.ID), members))
}

// GetMemberHighlights extracts contribution previews for one member.
func GetMemberHighlights(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	var member models.Member
	if err := database.DB.First(&member, "id = ?", memberID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	}

	checkIns := loadWindowedCheckIns(c, member.TeamID)
	return c.JSON(insights.MemberHighlights(checkIns, member.ID))
}
