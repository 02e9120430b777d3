package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionItem struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description"`
	Source          string     `json:"source" gorm:"default:manual"` // manual, checkin, ai
	SourceCheckInID *uuid.UUID `json:"sourceCheckInId" gorm:"type:uuid"`
	AssignedTo      *uuid.UUID `json:"assignedTo" gorm:"type:uuid"`
	TeamID          uuid.UUID  `json:"teamId" gorm:"type:uuid;index;not null"`
	Status          string     `json:"status" gorm:"default:todo"`     // todo, in-progress, done
	Priority        string     `json:"priority" gorm:"default:medium"` // high, medium, low
	DueDate         *time.Time `json:"dueDate"`
	CreatedBy       uuid.UUID  `json:"createdBy" gorm:"type:uuid"`
	// Set once, on the first transition into done. Never cleared or
	// updated on later status changes.
	CompletedAt *time.Time     `json:"completedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (a *ActionItem) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// SetStatus applies a status transition. CompletedAt is stamped on the
// first transition into done and reports true; regressions and
// re-entries leave the original timestamp untouched.
func (a *ActionItem) SetStatus(status string, now time.Time) (completedNow bool) {
	a.Status = status
	if status == "done" && a.CompletedAt == nil {
		t := now
		a.CompletedAt = &t
		return true
	}
	return false
}

// ActionItem DTOs
type CreateActionItemRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type UpdateActionItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}
