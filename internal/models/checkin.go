package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckIn is a submitted status update. Which text fields are populated
// depends on TemplateType; submission validation rejects fields that do
// not belong to the declared template. Rows are immutable once created.
type CheckIn struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MemberID     uuid.UUID `json:"memberId" gorm:"type:uuid;index;not null"`
	TeamID       uuid.UUID `json:"teamId" gorm:"type:uuid;index;not null"`
	Date         time.Time `json:"date" gorm:"not null"`
	TemplateType string    `json:"templateType" gorm:"not null"` // daily, weekly, monthly, okr, engineering, product, sales

	// Daily
	Yesterday *string `json:"yesterday,omitempty"`
	Today     *string `json:"today,omitempty"`
	Blockers  *string `json:"blockers,omitempty"`
	Kudos     *string `json:"kudos,omitempty"`
	// Weekly
	Accomplishments *string `json:"accomplishments,omitempty"`
	NextWeekPlans   *string `json:"nextWeekPlans,omitempty"`
	// Monthly
	MonthlySummary  *string `json:"monthlySummary,omitempty"`
	KeyAchievements *string `json:"keyAchievements,omitempty"`
	Metrics         *string `json:"metrics,omitempty"`
	NextMonthGoals  *string `json:"nextMonthGoals,omitempty"`
	// OKR
	OKRProgress     *string `json:"okrProgress,omitempty"`
	RiskAssessment  *string `json:"riskAssessment,omitempty"`
	MitigationPlans *string `json:"mitigationPlans,omitempty"`
	// Engineering
	CodeChanges      *string `json:"codeChanges,omitempty"`
	PRs              *string `json:"prs,omitempty"`
	TechnicalDebt    *string `json:"technicalDebt,omitempty"`
	DeploymentStatus *string `json:"deploymentStatus,omitempty"`
	// Product
	FeatureUpdates *string `json:"featureUpdates,omitempty"`
	UserFeedback   *string `json:"userFeedback,omitempty"`
	ProductMetrics *string `json:"productMetrics,omitempty"`
	Roadmap        *string `json:"roadmap,omitempty"`
	// Sales
	DealsClosed      *string `json:"dealsClosed,omitempty"`
	Pipeline         *string `json:"pipeline,omitempty"`
	CustomerFeedback *string `json:"customerFeedback,omitempty"`
	Targets          *string `json:"targets,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// fieldPointers maps template field keys to the backing struct fields.
func (c *CheckIn) fieldPointers() map[string]**string {
	return map[string]**string{
		"yesterday":        &c.Yesterday,
		"today":            &c.Today,
		"blockers":         &c.Blockers,
		"kudos":            &c.Kudos,
		"accomplishments":  &c.Accomplishments,
		"nextWeekPlans":    &c.NextWeekPlans,
		"monthlySummary":   &c.MonthlySummary,
		"keyAchievements":  &c.KeyAchievements,
		"metrics":          &c.Metrics,
		"nextMonthGoals":   &c.NextMonthGoals,
		"okrProgress":      &c.OKRProgress,
		"riskAssessment":   &c.RiskAssessment,
		"mitigationPlans":  &c.MitigationPlans,
		"codeChanges":      &c.CodeChanges,
		"prs":              &c.PRs,
		"technicalDebt":    &c.TechnicalDebt,
		"deploymentStatus": &c.DeploymentStatus,
		"featureUpdates":   &c.FeatureUpdates,
		"userFeedback":     &c.UserFeedback,
		"productMetrics":   &c.ProductMetrics,
		"roadmap":          &c.Roadmap,
		"dealsClosed":      &c.DealsClosed,
		"pipeline":         &c.Pipeline,
		"customerFeedback": &c.CustomerFeedback,
		"targets":          &c.Targets,
	}
}

// Field returns the value stored under a template field key, or ""
// when the field is absent or the key unknown.
func (c *CheckIn) Field(key string) string {
	if ptr, ok := c.fieldPointers()[key]; ok && *ptr != nil {
		return **ptr
	}
	return ""
}

// SetField stores a value under a template field key. Unknown keys are
// reported so the submission handler can reject them.
func (c *CheckIn) SetField(key, value string) bool {
	ptr, ok := c.fieldPointers()[key]
	if !ok {
		return false
	}
	v := value
	*ptr = &v
	return true
}

// TextValues returns every populated text field, in a stable order.
func (c *CheckIn) TextValues() []string {
	keys := []string{
		"yesterday", "today", "blockers", "kudos",
		"accomplishments", "nextWeekPlans",
		"monthlySummary", "keyAchievements", "metrics", "nextMonthGoals",
		"okrProgress", "riskAssessment", "mitigationPlans",
		"codeChanges", "prs", "technicalDebt", "deploymentStatus",
		"featureUpdates", "userFeedback", "productMetrics", "roadmap",
		"dealsClosed", "pipeline", "customerFeedback", "targets",
	}
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		if v := c.Field(key); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// CheckIn DTOs
type SubmitCheckInRequest struct {
	TeamID       uuid.UUID         `json:"teamId"`
	MemberID     uuid.UUID         `json:"memberId"`
	TemplateType string            `json:"templateType" validate:"required"`
	Fields       map[string]string `json:"fields"`
}
