package handlers

import (
	"strings"
	"time"

	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetMembers(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !team.IsPublic && !isTeamActor(c, team) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Team not found",
		})
	}

	var members []models.Member
	database.DB.Where("team_id = ?", team.ID).Order("created_at ASC").Find(&members)

	return c.JSON(members)
}

func AddMember(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !canManageTeam(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to add members",
		})
	}

	var req models.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a valid email are required",
		})
	}

	role := req.Role
	if role != "leader" {
		role = "member"
	}

	now := time.Now()
	member := models.Member{
		Name:     req.Name,
		Email:    req.Email,
		TeamID:   team.ID,
		Role:     role,
		JoinedAt: &now,
		Preferences: models.MemberPreferences{
			Theme:              "dark",
			Language:           "en",
			EmailNotifications: true,
			EmailDigest:        "weekly",
		},
	}

	if err := database.DB.Create(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add member",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateMember lets a member edit their own profile and preferences,
// or a team manager/leader edit any member of the team.
func UpdateMember(c *fiber.Ctx) error {
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

	if middleware.GetUserID(c) != member.ID {
		var team models.Team
		if err := database.DB.First(&team, "id = ?", member.TeamID).Error; err != nil || !canManageTeam(c, &team) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to edit this member",
			})
		}
	}

	var req models.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.PhotoURL != nil {
		member.PhotoURL = *req.PhotoURL
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Preferences != nil {
		if req.Preferences.Theme != nil {
			member.Preferences.Theme = *req.Preferences.Theme
		}
		if req.Preferences.Language != nil {
			member.Preferences.Language = *req.Preferences.Language
		}
		if req.Preferences.EmailNotifications != nil {
			member.Preferences.EmailNotifications = *req.Preferences.EmailNotifications
		}
		if req.Preferences.EmailDigest != nil {
			member.Preferences.EmailDigest = *req.Preferences.EmailDigest
		}
	}

	if err := database.DB.Save(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update member",
		})
	}

	return c.JSON(member)
}

func ChangeMemberRole(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !canManageTeam(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to change roles",
		})
	}

	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	var req models.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil || (req.Role != "leader" && req.Role != "member") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role must be leader or member",
		})
	}

	result := database.DB.Model(&models.Member{}).
		Where("id = ? AND team_id = ?", memberID, team.ID).
		Update("role", req.Role)
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	}

	var member models.Member
	database.DB.First(&member, "id = ?", memberID)
	return c.JSON(member)
}

func RemoveMember(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !canManageTeam(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to remove members",
		})
	}

	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	result := database.DB.Where("id = ? AND team_id = ?", memberID, team.ID).Delete(&models.Member{})
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
