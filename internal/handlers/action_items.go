package handlers

import (
	"time"

	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/insights"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validStatuses = map[string]bool{"todo": true, "in-progress": true, "done": true}
var validPriorities = map[string]bool{"high": true, "medium": true, "low": true}

func GetActionItems(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	query := database.DB.Where("team_id = ?", team.ID)
	if status := c.Query("status"); validStatuses[status] {
		query = query.Where("status = ?", status)
	}

	var items []models.ActionItem
	query.Order("created_at DESC").Find(&items)

	return c.JSON(items)
}

func CreateActionItem(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	var req models.CreateActionItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	priority := req.Priority
	if !validPriorities[priority] {
		priority = "medium"
	}

	item := models.ActionItem{
		Title:       req.Title,
		Description: req.Description,
		Source:      "manual",
		AssignedTo:  req.AssignedTo,
		TeamID:      team.ID,
		Status:      "todo",
		Priority:    priority,
		DueDate:     req.DueDate,
		CreatedBy:   middleware.GetUserID(c),
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create action item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateActionItem mutates status, assignee and other fields.
// completedAt is set on the first transition into done and never
// touched again, even if the status later regresses and returns.
func UpdateActionItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action item ID",
		})
	}

	var item models.ActionItem
	if err := database.DB.First(&item, "id = ?", itemID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Action item not found",
		})
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", item.TeamID).Error; err != nil || !isTeamActor(c, &team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	var req models.UpdateActionItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.AssignedTo != nil {
		item.AssignedTo = req.AssignedTo
	}
	if req.Priority != nil && validPriorities[*req.Priority] {
		item.Priority = *req.Priority
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}

	completedNow := false
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Status must be todo, in-progress or done",
			})
		}
		completedNow = item.SetStatus(*req.Status, time.Now())
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update action item",
		})
	}

	// Completion count feeds the Problem Solver badge.
	if completedNow && item.AssignedTo != nil {
		evaluateAndGrantBadges(*item.AssignedTo)
	}

	return c.JSON(item)
}

func DeleteActionItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action item ID",
		})
	}

	var item models.ActionItem
	if err := database.DB.First(&item, "id = ?", itemID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Action item not found",
		})
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", item.TeamID).Error; err != nil || !isTeamActor(c, &team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	database.DB.Delete(&item)
	return c.JSON(fiber.Map{"success": true})
}

// ExtractActionItems runs the keyword heuristic over one check-in and
// persists the suggested items with source "ai".
func ExtractActionItems(c *fiber.Ctx) error {
	checkInID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid check-in ID",
		})
	}

	var checkIn models.CheckIn
	if err := database.DB.First(&checkIn, "id = ?", checkInID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Check-in not found",
		})
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", checkIn.TeamID).Error; err != nil || !isTeamActor(c, &team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	created := persistExtractedItems(&checkIn, middleware.GetUserID(c))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// persistExtractedItems stores the heuristic suggestions for one
// check-in. Also invoked on submission, so a blocker becomes a tracked
// item without a separate extract call.
func persistExtractedItems(checkIn *models.CheckIn, createdBy uuid.UUID) []models.ActionItem {
	drafts := insights.ExtractActionItems(checkIn)
	created := make([]models.ActionItem, 0, len(drafts))
	for _, draft := range drafts {
		sourceID := checkIn.ID
		item := models.ActionItem{
			Title:           draft.Title,
			Description:     draft.Description,
			Source:          "ai",
			SourceCheckInID: &sourceID,
			TeamID:          checkIn.TeamID,
			Status:          "todo",
			Priority:        draft.Priority,
			CreatedBy:       createdBy,
		}
		if err := database.DB.Create(&item).Error; err == nil {
			created = append(created, item)
		}
	}
	return created
}
