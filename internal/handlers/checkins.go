package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/insights"
	"github.com/antigravity/teampulse-api/internal/middleware"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/antigravity/teampulse-api/internal/templates"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetTemplates returns the fixed check-in template catalog, optionally
// narrowed to a sector (general templates always included).
func GetTemplates(c *fiber.Ctx) error {
	return c.JSON(templates.BySector(c.Query("sector")))
}

// ResolveCheckInLink resolves a tokenized submission link to its
// member and team. The token is the member id.
func ResolveCheckInLink(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("token"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid check-in link",
		})
	}

	var member models.Member
	if err := database.DB.First(&member, "id = ?", memberID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Check-in link not recognized",
		})
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", member.TeamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Team not found",
		})
	}

	return c.JSON(fiber.Map{
		"member":    member,
		"team":      team,
		"templates": templates.BySector(team.Sector),
	})
}

// SubmitCheckIn validates a submission against its declared template
// and stores it. Check-ins are immutable afterwards; derived values
// (word count, risk) are computed on read. Submission also re-runs the
// badge evaluator, raises a risk notification for urgent blockers and
// extracts suggested action items from the blocker text.
func SubmitCheckIn(c *fiber.Ctx) error {
	var req models.SubmitCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	memberID := req.MemberID
	if middleware.GetActor(c) == middleware.ActorMember {
		memberID = middleware.GetUserID(c)
	}
	if memberID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Member ID is required",
		})
	}

	var member models.Member
	if err := database.DB.First(&member, "id = ?", memberID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Member not found",
		})
	}

	teamID := req.TeamID
	if teamID == uuid.Nil {
		teamID = member.TeamID
	}

	if err := templates.Validate(req.TemplateType, req.Fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	checkIn := models.CheckIn{
		MemberID:     member.ID,
		TeamID:       teamID,
		Date:         time.Now(),
		TemplateType: req.TemplateType,
	}
	for key, value := range req.Fields {
		checkIn.SetField(key, value)
	}

	if err := database.DB.Create(&checkIn).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save check-in",
		})
	}

	newBadges := evaluateAndGrantBadges(member.ID)
	notifyRiskIfUrgent(&checkIn, &member)
	extracted := persistExtractedItems(&checkIn, middleware.GetUserID(c))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"checkIn":     checkIn,
		"newBadges":   newBadges,
		"actionItems": extracted,
	})
}

// GetTeamCheckIns lists a team's check-ins, optionally limited to a
// trailing window of days.
func GetTeamCheckIns(c *fiber.Ctx) error {
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
	if days, err := strconv.Atoi(c.Query("days")); err == nil && days > 0 {
		cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		query = query.Where("date >= ?", cutoff)
	}

	var checkIns []models.CheckIn
	query.Order("date DESC").Find(&checkIns)

	return c.JSON(checkIns)
}

// notifyRiskIfUrgent raises a risk notification to the team manager
// when a fresh check-in carries a high-severity blocker.
func notifyRiskIfUrgent(checkIn *models.CheckIn, member *models.Member) {
	blockers := checkIn.Field("blockers")
	if strings.TrimSpace(blockers) == "" {
		blockers = checkIn.Field("riskAssessment")
	}
	if strings.TrimSpace(blockers) == "" {
		return
	}
	if insights.ClassifySeverity(blockers) != insights.SeverityHigh {
		return
	}

	var team models.Team
	if err := database.DB.First(&team, "id = ?", checkIn.TeamID).Error; err != nil {
		return
	}

	CreateNotification(team.ManagerID, models.NotificationRisk,
		"Risk Detected",
		member.Name+" reported an urgent blocker in their check-in",
		"/teams/"+team.ID.String()+"/risks")
}
