package handlers

import (
	"strconv"
	"time"

	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

var validSectors = map[string]bool{"engineering": true, "product": true, "sales": true, "general": true}

// GetTeams lists the manager's teams, or the single team a member
// belongs to.
func GetTeams(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var teams []models.Team
	if middleware.GetActor(c) == middleware.ActorManager {
		if err := database.DB.Where("manager_id = ?", userID).
			Preload("Members").
			Order("created_at DESC").
			Find(&teams).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch teams",
			})
		}
	} else {
		var member models.Member
		if err := database.DB.First(&member, "id = ?", userID).Error; err == nil {
			database.DB.Where("id = ?", member.TeamID).Preload("Members").Find(&teams)
		}
	}

	summaries := make([]models.TeamSummary, len(teams))
	for i, team := range teams {
		summaries[i] = models.TeamSummary{
			ID:          team.ID,
			Name:        team.Name,
			Sector:      team.Sector,
			IsPublic:    team.IsPublic,
			MemberCount: len(team.Members),
			CreatedAt:   team.CreatedAt,
		}
	}

	return c.JSON(summaries)
}

func CreateTeam(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if middleware.GetActor(c) != middleware.ActorManager {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only managers can create teams",
		})
	}

	var req models.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	sector := req.Sector
	if !validSectors[sector] {
		sector = "general"
	}

	team := models.Team{
		Name:             req.Name,
		ManagerID:        userID,
		Sector:           sector,
		DefaultTemplate:  "weekly",
		CheckInFrequency: "weekly",
		IsPublic:         true,
	}

	if err := database.DB.Create(&team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create team",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(team)
}

func GetTeam(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !team.IsPublic && !isTeamActor(c, team) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Team not found",
		})
	}

	database.DB.Where("team_id = ?", team.ID).Find(&team.Members)
	return c.JSON(team)
}

func UpdateTeam(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !canManageTeam(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to edit this team",
		})
	}

	var req models.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Sector != nil && validSectors[*req.Sector] {
		team.Sector = *req.Sector
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.PhotoURL != nil {
		team.PhotoURL = *req.PhotoURL
	}
	if req.DefaultTemplate != nil {
		team.DefaultTemplate = *req.DefaultTemplate
	}
	if req.CheckInFrequency != nil {
		team.CheckInFrequency = *req.CheckInFrequency
	}
	if req.IsPublic != nil {
		team.IsPublic = *req.IsPublic
	}

	if err := database.DB.Save(team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update team",
		})
	}

	return c.JSON(team)
}

// DeleteTeam soft-deletes the team and cascades to its members,
// check-ins, kudos and action items so no orphaned records stay
// visible.
func DeleteTeam(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !canManageTeam(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to delete this team",
		})
	}

	database.DB.Where("team_id = ?", team.ID).Delete(&models.Member{})
	database.DB.Where("team_id = ?", team.ID).Delete(&models.CheckIn{})
	database.DB.Where("team_id = ?", team.ID).Delete(&models.Kudos{})
	database.DB.Where("team_id = ?", team.ID).Delete(&models.ActionItem{})

	if err := database.DB.Delete(team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete team",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetTeamAnalytics computes the trailing-window engagement report.
func GetTeamAnalytics(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days < 1 {
		days = 7
	}

	var members []models.Member
	database.DB.Where("team_id = ?", team.ID).Find(&members)

	var checkIns []models.CheckIn
	database.DB.Where("team_id = ?", team.ID).Find(&checkIns)

	return c.JSON(analytics.Aggregate(team.ID, members, checkIns, days, time.Now()))
}
