package handlers

import (
	"time"

	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/export"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ExportTeam renders one content slice of a team's data as a
// downloadable PDF or CSV attachment.
func ExportTeam(c *fiber.Ctx) error {
	team, err := findTeam(c)
	if err != nil {
		return err
	}

	if !isTeamActor(c, team) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this team",
		})
	}

	format := c.Query("format", export.FormatPDF)
	content := c.Query("content", export.ContentFullReport)

	if format != export.FormatPDF && format != export.FormatCSV {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Format must be pdf or csv",
		})
	}
	if !export.ValidContent(format, content) {
		if content == export.ContentFullReport {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "full-report is only available as PDF",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown export content",
		})
	}

	now := time.Now()

	var members []models.Member
	database.DB.Where("team_id = ?", team.ID).Find(&members)

	var checkIns []models.CheckIn
	database.DB.Where("team_id = ?", team.ID).Order("date ASC").Find(&checkIns)

	var actionItems []models.ActionItem
	database.DB.Where("team_id = ?", team.ID).Order("created_at ASC").Find(&actionItems)

	var kudos []models.Kudos
	database.DB.Where("team_id = ?", team.ID).Order("date ASC").Find(&kudos)

	in := export.Input{
		TeamName:    team.Name,
		GeneratedAt: now,
		Members:     memberNameMap(team.ID),
		CheckIns:    checkIns,
		Report:      analytics.Aggregate(team.ID, members, checkIns, 7, now),
		ActionItems: actionItems,
		Kudos:       kudos,
	}

	var data []byte
	var filename string
	if format == export.FormatCSV {
		data, filename, err = export.CSV(content, in)
	} else {
		data, filename, err = export.PDF(content, in)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if format == export.FormatCSV {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	} else {
		c.Set(fiber.HeaderContentType, "application/pdf")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Send(data)
}
