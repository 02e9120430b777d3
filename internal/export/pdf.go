package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders one content slice (or the full report) as a tabular PDF.
// Returns the bytes and suggested filename.
func PDF(content string, in Input) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, in.TeamName)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+in.GeneratedAt.Format("January 2, 2006"))
	pdf.Ln(12)

	switch content {
	case ContentCheckIns:
		addCheckInsSection(pdf, in)
	case ContentAnalytics:
		addAnalyticsSection(pdf, in)
	case ContentActionItems:
		addActionItemsSection(pdf, in)
	case ContentKudos:
		addKudosSection(pdf, in)
	case ContentFullReport:
		// Fixed order: analytics, check-ins, action items, one section
		// per page.
		addAnalyticsSection(pdf, in)
		pdf.AddPage()
		addCheckInsSection(pdf, in)
		pdf.AddPage()
		addActionItemsSection(pdf, in)
	default:
		return nil, "", fmt.Errorf("unknown export content %q", content)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), filename(content, "pdf", in.GeneratedAt), nil
}

func addCheckInsSection(pdf *gofpdf.Fpdf, in Input) {
	sectionTitle(pdf, "Check-ins Summary")
	widths := []float64{35, 25, 25, 95}
	tableHeader(pdf, widths, []string{"Member", "Date", "Template", "Summary"})
	for i := range in.CheckIns {
		c := &in.CheckIns[i]
		tableRow(pdf, widths, []string{
			in.memberName(c.MemberID),
			c.Date.Format("Jan 2, 2006"),
			c.TemplateType,
			truncate(checkInSummary(c), 100),
		})
	}
	pdf.Ln(8)
}

func addAnalyticsSection(pdf *gofpdf.Fpdf, in Input) {
	sectionTitle(pdf, fmt.Sprintf("Team Analytics (Last %d Days)", in.Report.WindowDays))
	widths := []float64{60, 60}
	tableHeader(pdf, widths, []string{"Metric", "Value"})
	rows := [][]string{
		{"Submit Rate", fmt.Sprintf("%d%%", in.Report.SubmitRate)},
		{"Delay Rate", fmt.Sprintf("%d%%", in.Report.DelayRate)},
		{"Avg Word Count", fmt.Sprintf("%.0f", in.Report.AvgWordCount)},
		{"Risk Count", fmt.Sprintf("%d", in.Report.RiskCount)},
	}
	for _, row := range rows {
		tableRow(pdf, widths, row)
	}
	pdf.Ln(8)
}

func addActionItemsSection(pdf *gofpdf.Fpdf, in Input) {
	sectionTitle(pdf, "Action Items")
	widths := []float64{80, 25, 30, 45}
	tableHeader(pdf, widths, []string{"Title", "Priority", "Status", "Assigned To"})
	for _, item := range in.ActionItems {
		tableRow(pdf, widths, []string{
			truncate(item.Title, 40),
			item.Priority,
			item.Status,
			in.assigneeName(item.AssignedTo),
		})
	}
	pdf.Ln(8)
}

func addKudosSection(pdf *gofpdf.Fpdf, in Input) {
	sectionTitle(pdf, "Team Kudos")
	widths := []float64{30, 30, 90, 30}
	tableHeader(pdf, widths, []string{"From", "To", "Message", "Date"})
	for _, k := range in.Kudos {
		tableRow(pdf, widths, []string{
			in.memberName(k.FromMemberID),
			in.memberName(k.ToMemberID),
			truncate(k.Message, 80),
			k.Date.Format("Jan 2, 2006"),
		})
	}
	pdf.Ln(8)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(10)
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(99, 102, 241)
	pdf.SetTextColor(255, 255, 255)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 7, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
