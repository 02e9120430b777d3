package handlers

import (
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetReminderSettings returns the user's reminder settings, falling
// back to defaults when none are stored yet.
func GetReminderSettings(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var settings models.ReminderSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		settings = models.ReminderSettings{
			UserID:     userID,
			Enabled:    true,
			Day:        "friday",
			Time:       "10:00",
			DigestMode: "weekly",
		}
	}

	return c.JSON(settings)
}

var validDays = map[string]bool{"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true}
var validDigestModes = map[string]bool{"daily": true, "weekly": true, "none": true}

// UpdateReminderSettings upserts the user's reminder settings.
func UpdateReminderSettings(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateReminderSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var settings models.ReminderSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		settings = models.ReminderSettings{
			UserID:     userID,
			Enabled:    true,
			Day:        "friday",
			Time:       "10:00",
			DigestMode: "weekly",
		}
	}

	if req.Enabled != nil {
		settings.Enabled = *req.Enabled
	}
	if req.Day != nil && validDays[*req.Day] {
		settings.Day = *req.Day
	}
	if req.Time != nil {
		settings.Time = *req.Time
	}
	if req.DigestMode != nil && validDigestModes[*req.DigestMode] {
		settings.DigestMode = *req.DigestMode
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save reminder settings",
		})
	}

	return c.JSON(settings)
}

// SendReminder simulates the email reminder by dropping a reminder
// notification for the current user.
func SendReminder(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	CreateNotification(userID, models.NotificationReminder,
		"Check-in Reminder",
		"Don't forget to submit your weekly check-in!",
		"/check-in/"+userID.String())

	return c.JSON(fiber.Map{"success": true})
}
