package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string         `json:"name" gorm:"not null"`
	ManagerID        uuid.UUID      `json:"managerId" gorm:"type:uuid;index;not null"`
	Sector           string         `json:"sector" gorm:"default:general"` // engineering, product, sales, general
	Description      string         `json:"description"`
	PhotoURL         string         `json:"photoUrl"`
	DefaultTemplate  string         `json:"defaultTemplate" gorm:"default:weekly"`
	CheckInFrequency string         `json:"checkInFrequency" gorm:"default:weekly"` // daily, weekly, monthly
	IsPublic         bool           `json:"isPublic" gorm:"default:true"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
	Members          []Member       `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Team DTOs
type CreateTeamRequest struct {
	Name   string `json:"name" validate:"required"`
	Sector string `json:"sector"`
}

type UpdateTeamRequest struct {
	Name             *string `json:"name"`
	Sector           *string `json:"sector"`
	Description      *string `json:"description"`
	PhotoURL         *string `json:"photoUrl"`
	DefaultTemplate  *string `json:"defaultTemplate"`
	CheckInFrequency *string `json:"checkInFrequency"`
	IsPublic         *bool   `json:"isPublic"`
}

type TeamSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Sector      string    `json:"sector"`
	IsPublic    bool      `json:"isPublic"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
