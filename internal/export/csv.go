package export

import (
	"fmt"
	"strings"
)

// CSV renders one content slice as comma-separated text: a header row
// followed by escaped data rows. Returns the bytes and suggested
// filename. full-report is a PDF-only slice and is rejected here.
func CSV(content string, in Input) ([]byte, string, error) {
	var headers []string
	var rows [][]string

	switch content {
	case ContentCheckIns:
		headers = []string{"Member", "Date", "Template", "Content", "Blockers"}
		for i := range in.CheckIns {
			c := &in.CheckIns[i]
			rows = append(rows, []string{
				in.memberName(c.MemberID),
				c.Date.Format("2006-01-02"),
				c.TemplateType,
				checkInSummary(c),
				c.Field("blockers"),
			})
		}

	case ContentAnalytics:
		headers = []string{"Metric", "Value"}
		rows = [][]string{
			{"Submit Rate", fmt.Sprintf("%d%%", in.Report.SubmitRate)},
			{"Delay Rate", fmt.Sprintf("%d%%", in.Report.DelayRate)},
			{"Avg Word Count", fmt.Sprintf("%.0f", in.Report.AvgWordCount)},
			{"Risk Count", fmt.Sprintf("%d", in.Report.RiskCount)},
		}

	case ContentActionItems:
		headers = []string{"Title", "Description", "Priority", "Status", "Assigned To", "Created", "Due Date"}
		for _, item := range in.ActionItems {
			due := ""
			if item.DueDate != nil {
				due = item.DueDate.Format("2006-01-02")
			}
			rows = append(rows, []string{
				item.Title,
				item.Description,
				item.Priority,
				item.Status,
				in.assigneeName(item.AssignedTo),
				item.CreatedAt.Format("2006-01-02"),
				due,
			})
		}

	case ContentKudos:
		headers = []string{"From", "To", "Message", "Date"}
		for _, k := range in.Kudos {
			rows = append(rows, []string{
				in.memberName(k.FromMemberID),
				in.memberName(k.ToMemberID),
				k.Message,
				k.Date.Format("2006-01-02"),
			})
		}

	case ContentFullReport:
		return nil, "", fmt.Errorf("full-report is only available as PDF")

	default:
		return nil, "", fmt.Errorf("unknown export content %q", content)
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		escaped := make([]string, len(row))
		for i, v := range row {
			escaped[i] = escapeField(v)
		}
		b.WriteString(strings.Join(escaped, ","))
	}

	return []byte(b.String()), filename(content, "csv", in.GeneratedAt), nil
}

// escapeField quotes a value only when it contains a comma, doubling
// any embedded quotes inside the wrapper. Values without commas pass
// through untouched.
func escapeField(v string) string {
	if strings.Contains(v, ",") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}
