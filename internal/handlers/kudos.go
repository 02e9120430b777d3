package handlers

import (
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GiveKudos appends a kudos record and notifies the recipient. Kudos
// are append-only; there is no edit or delete path.
func GiveKudos(c *fiber.Ctx) error {
	var req models.GiveKudosRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	var recipient models.Member
	if err := database.DB.Where("id = ? AND team_id = ?", req.ToMemberID, req.TeamID).First(&recipient).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Recipient not found on this team",
		})
	}

	fromID := middleware.GetUserID(c)
	kudos := models.Kudos{
		FromMemberID: fromID,
		ToMemberID:   req.ToMemberID,
		TeamID:       req.TeamID,
		Message:      req.Message,
	}

	if err := database.DB.Create(&kudos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save kudos",
		})
	}

	senderName := "A teammate"
	var sender models.Member
	if err := database.DB.First(&sender, "id = ?", fromID).Error; err == nil {
		senderName = sender.Name
	}
	CreateNotification(recipient.ID, models.NotificationKudos,
		"New Kudos Received!",
		senderName+" gave you kudos: "+kudos.Message, "")

	// Kudos count feeds the Team Helper badge.
	evaluateAndGrantBadges(recipient.ID)

	return c.Status(fiber.StatusCreated).JSON(kudos)
}

func GetTeamKudos(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	var kudos []models.Kudos
	database.DB.Where("team_id = ?", team.ID).Order("date DESC").Find(&kudos)

	return c.JSON(kudos)
}

func GetMemberKudos(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	var kudos []models.Kudos
	database.DB.Where("to_member_id = ?", memberID).Order("date DESC").Find(&kudos)

	return c.JSON(kudos)
}
