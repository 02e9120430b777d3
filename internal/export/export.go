// Package export projects stored records into downloadable CSV and PDF
// reports with fixed column schemas per content slice.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/antigravity/teampulse-api/internal/analytics"
	"github.com/antigravity/teampulse-api/internal/models"
	"github.com/google/uuid"
)

// Content slices
const (
	ContentCheckIns    = "checkins"
	ContentAnalytics   = "analytics"
	ContentActionItems = "action-items"
	ContentKudos       = "kudos"
	ContentFullReport  = "full-report"
)

// Output formats
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// Input carries everything a report needs, pre-loaded by the caller.
type Input struct {
	TeamName    string
	GeneratedAt time.Time
	Members     map[uuid.UUID]string // member id -> display name
	CheckIns    []models.CheckIn
	Report      analytics.Report
	ActionItems []models.ActionItem
	Kudos       []models.Kudos
}

func (in *Input) memberName(id uuid.UUID) string {
	if name, ok := in.Members[id]; ok {
		return name
	}
	return "Unknown"
}

func (in *Input) assigneeName(id *uuid.UUID) string {
	if id == nil {
		return "Unassigned"
	}
	if name, ok := in.Members[*id]; ok {
		return name
	}
	return "Unassigned"
}

// checkInSummary picks the most representative text field for the
// one-line summary column.
func checkInSummary(c *models.CheckIn) string {
	if v := c.Field("accomplishments"); v != "" {
		return v
	}
	return c.Field("yesterday")
}

// truncate limits to max runes so multi-byte text is never split
// mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func filename(content, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", strings.ReplaceAll(content, "-", "_"), at.Format("2006-01-02"), ext)
}

// ValidContent reports whether the content slice is known for the
// requested format. full-report is only defined for PDF.
func ValidContent(format, content string) bool {
	switch content {
	case ContentCheckIns, ContentAnalytics, ContentActionItems, ContentKudos:
		return true
	case ContentFullReport:
		return format == FormatPDF
	default:
		return false
	}
}
