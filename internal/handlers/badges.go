package handlers

import (
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/gamification"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetBadgeCatalog returns the fixed badge catalog.
func GetBadgeCatalog(c *fiber.Ctx) error {
	return c.JSON(gamification.Catalog)
}

// GetMemberBadges lists a member's badge grants with catalog info.
func GetMemberBadges(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid member ID",
		})
	}

	var grants []models.MemberBadge
	database.DB.Where("member_id = ?", memberID).Order("earned_at ASC").Find(&grants)

	type grantedBadge struct {
		models.MemberBadge
		Badge *gamification.Badge `json:"badge"`
	}
	out := make([]grantedBadge, len(grants))
	for i, g := range grants {
		out[i] = grantedBadge{MemberBadge: g, Badge: gamification.Get(g.BadgeID)}
	}

	return c.JSON(out)
}

// EvaluateMemberBadges re-runs the automatic award rules for a member
// and returns only the newly granted badges. Calling it again without
// new activity grants nothing.
func EvaluateMemberBadges(c *fiber.Ctx) error {
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

	return c.JSON(fiber.Map{"newBadges": evaluateAndGrantBadges(memberID)})
}

// GrantBadge manually grants a badge (the only path for ManualOnly
// catalog entries). Leader or manager of the member's team only.
func GrantBadge(c *fiber.Ctx) error {
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

	var team models.Team
	if err := database.DB.First(&team, "id = ?", member.TeamID).Error; err != nil || !canManageTeam(c, &team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to grant badges",
		})
	}

	var req models.GrantBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	badge := gamification.Get(req.BadgeID)
	if badge == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown badge",
		})
	}

	var existing models.MemberBadge
	if err := database.DB.Where("member_id = ? AND badge_id = ?", memberID, badge.ID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Badge already granted",
		})
	}

	grant := models.MemberBadge{MemberID: memberID, BadgeID: badge.ID}
	if err := database.DB.Create(&grant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to grant badge",
		})
	}

	CreateNotification(memberID, models.NotificationBadge,
		"Badge Earned!",
		"You earned the \""+badge.Name+"\" badge!", "")

	return c.Status(fiber.StatusCreated).JSON(grant)
}

// evaluateAndGrantBadges loads a member's lifetime history, runs the
// evaluator, persists the new grants and notifies the member. Safe to
// call repeatedly; already-granted badges are never re-granted.
func evaluateAndGrantBadges(memberID uuid.UUID) []models.MemberBadge {
	var checkIns []models.CheckIn
	database.DB.Where("member_id = ?", memberID).Find(&checkIns)

	var kudosReceived int64
	database.DB.Model(&models.Kudos{}).Where("to_member_id = ?", memberID).Count(&kudosReceived)

	var completedItems int64
	database.DB.Model(&models.ActionItem{}).
		Where("assigned_to = ? AND completed_at IS NOT NULL", memberID).
		Count(&completedItems)

	var grants []models.MemberBadge
	database.DB.Where("member_id = ?", memberID).Find(&grants)
	granted := make(map[string]bool, len(grants))
	for _, g := range grants {
		granted[g.BadgeID] = true
	}

	earned := gamification.Evaluate(gamification.History{
		CheckIns:             checkIns,
		KudosReceived:        int(kudosReceived),
		CompletedActionItems: int(completedItems),
		Granted:              granted,
	})

	newGrants := []models.MemberBadge{}
	for _, badgeID := range earned {
		grant := models.MemberBadge{MemberID: memberID, BadgeID: badgeID}
		if err := database.DB.Create(&grant).Error; err != nil {
			continue // unique index guards against concurrent double grants
		}
		newGrants = append(newGrants, grant)

		if badge := gamification.Get(badgeID); badge != nil {
			CreateNotification(memberID, models.NotificationBadge,
				"Badge Earned!",
				"You earned the \""+badge.Name+"\" badge!", "")
		}
	}
	return newGrants
}
