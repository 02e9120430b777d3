// Package templates holds the fixed catalog of check-in templates and
// validates submissions against them.
package templates

import "fmt"

type Field struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	Multiline   bool   `json:"multiline"`
}

type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Sector      string  `json:"sector"`
	Fields      []Field `json:"fields"`
}

var Catalog = []Template{
	{
		ID:          "daily",
		Name:        "Daily Standup",
		Description: "Quick daily update for agile teams",
		Sector:      "general",
		Fields: []Field{
			{Key: "yesterday", Label: "What did you do yesterday?", Placeholder: "e.g., Completed user authentication module, fixed 3 bugs...", Required: true, Multiline: true},
			{Key: "today", Label: "What will you do today?", Placeholder: "e.g., Start working on dashboard analytics...", Required: true, Multiline: true},
			{Key: "blockers", Label: "Any blockers or challenges?", Placeholder: "e.g., Waiting for API documentation...", Required: false, Multiline: true},
			{Key: "kudos", Label: "Shoutouts & Kudos (optional)", Placeholder: "Recognize a teammate who helped you...", Required: false, Multiline: true},
		},
	},
	{
		ID:          "weekly",
		Name:        "Weekly Update",
		Description: "Comprehensive weekly progress report",
		Sector:      "general",
		Fields: []Field{
			{Key: "accomplishments", Label: "What did you accomplish this week?", Placeholder: "List your key achievements and completed tasks...", Required: true, Multiline: true},
			{Key: "nextWeekPlans", Label: "What are your plans for next week?", Placeholder: "Outline your priorities and goals...", Required: true, Multiline: true},
			{Key: "blockers", Label: "Any blockers or risks?", Placeholder: "Highlight challenges that need attention...", Required: false, Multiline: true},
			{Key: "kudos", Label: "Team Appreciation (optional)", Placeholder: "Give a shoutout to someone who made a difference this week...", Required: false, Multiline: true},
		},
	},
	{
		ID:          "monthly",
		Name:        "Monthly Progress",
		Description: "High-level monthly review",
		Sector:      "general",
		Fields: []Field{
			{Key: "monthlySummary", Label: "Monthly Summary", Placeholder: "Overview of the month...", Required: true, Multiline: true},
			{Key: "keyAchievements", Label: "Key Achievements", Placeholder: "Major wins and milestones...", Required: true, Multiline: true},
			{Key: "metrics", Label: "Metrics & KPIs", Placeholder: "Relevant metrics and results...", Required: false, Multiline: true},
			{Key: "nextMonthGoals", Label: "Next Month Goals", Placeholder: "Priorities for the upcoming month...", Required: true, Multiline: true},
		},
	},
	{
		ID:          "okr",
		Name:        "OKR Check-in",
		Description: "Objectives and Key Results tracking",
		Sector:      "general",
		Fields: []Field{
			{Key: "okrProgress", Label: "OKR Progress", Placeholder: "Update on your objectives and key results...", Required: true, Multiline: true},
			{Key: "riskAssessment", Label: "Risk Assessment", Placeholder: "Risks that could impact your objectives...", Required: true, Multiline: true},
			{Key: "mitigationPlans", Label: "Mitigation Plans", Placeholder: "How will you address the risks?", Required: false, Multiline: true},
		},
	},
	{
		ID:          "engineering",
		Name:        "Engineering Update",
		Description: "Technical progress for engineering teams",
		Sector:      "engineering",
		Fields: []Field{
			{Key: "codeChanges", Label: "Code Changes & Features", Placeholder: "What did you build or change?", Required: true, Multiline: true},
			{Key: "prs", Label: "Pull Requests", Placeholder: "Open and merged PRs...", Required: false, Multiline: true},
			{Key: "technicalDebt", Label: "Technical Debt", Placeholder: "Debt identified or paid down...", Required: false, Multiline: true},
			{Key: "deploymentStatus", Label: "Deployment Status", Placeholder: "What shipped, what's pending...", Required: false, Multiline: true},
			{Key: "blockers", Label: "Technical Blockers", Placeholder: "Anything blocking your work...", Required: false, Multiline: true},
		},
	},
	{
		ID:          "product",
		Name:        "Product Update",
		Description: "Product progress and user insights",
		Sector:      "product",
		Fields: []Field{
			{Key: "featureUpdates", Label: "Feature Updates", Placeholder: "Features shipped or in progress...", Required: true, Multiline: true},
			{Key: "userFeedback", Label: "User Feedback", Placeholder: "What are users saying?", Required: true, Multiline: true},
			{Key: "productMetrics", Label: "Product Metrics", Placeholder: "Adoption, engagement, retention...", Required: false, Multiline: true},
			{Key: "roadmap", Label: "Roadmap Updates", Placeholder: "Changes to the roadmap...", Required: false, Multiline: true},
			{Key: "blockers", Label: "Product Blockers", Placeholder: "Anything blocking progress...", Required: false, Multiline: true},
		},
	},
	{
		ID:          "sales",
		Name:        "Sales Update",
		Description: "Pipeline and deal progress",
		Sector:      "sales",
		Fields: []Field{
			{Key: "dealsClosed", Label: "Deals Closed", Placeholder: "Wins since your last update...", Required: true, Multiline: true},
			{Key: "pipeline", Label: "Pipeline Status", Placeholder: "Where do active deals stand?", Required: true, Multiline: true},
			{Key: "customerFeedback", Label: "Customer Feedback", Placeholder: "What are prospects and customers saying?", Required: false, Multiline: true},
			{Key: "targets", Label: "Targets & Forecast", Placeholder: "Progress against quota...", Required: false, Multiline: true},
			{Key: "blockers", Label: "Sales Blockers", Placeholder: "Anything blocking deals...", Required: false, Multiline: true},
		},
	},
}

// Get returns the template with the given id, or nil.
func Get(id string) *Template {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// BySector returns templates matching a sector, always including the
// general ones. An empty sector returns the full catalog.
func BySector(sector string) []Template {
	if sector == "" {
		return Catalog
	}
	var out []Template
	for _, t := range Catalog {
		if t.Sector == sector || t.Sector == "general" {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks a submission's fields against the template: every
// required field must be non-empty and no field outside the template
// may be present.
func Validate(templateID string, fields map[string]string) error {
	tpl := Get(templateID)
	if tpl == nil {
		return fmt.Errorf("unknown template %q", templateID)
	}

	known := make(map[string]bool, len(tpl.Fields))
	for _, f := range tpl.Fields {
		known[f.Key] = true
		if f.Required && fields[f.Key] == "" {
			return fmt.Errorf("field %q is required for the %s template", f.Key, tpl.ID)
		}
	}
	for key := range fields {
		if !known[key] {
			return fmt.Errorf("field %q does not belong to the %s template", key, tpl.ID)
		}
	}
	return nil
}
