package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderSettings configures the simulated check-in reminder for one
// user. One row per user, upserted in place.
type ReminderSettings struct {
	ID         uuid.UUID      `json:"-" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID      `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Enabled    bool           `json:"enabled" gorm:"default:true"`
	Day        string         `json:"day" gorm:"default:friday"` // monday..friday
	Time       string         `json:"time" gorm:"default:10:00"`
	DigestMode string         `json:"digestMode" gorm:"default:weekly"` // daily, weekly, none
	CreatedAt  time.Time      `json:"-"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (r *ReminderSettings) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type UpdateReminderSettingsRequest struct {
	Enabled    *bool   `json:"enabled"`
	Day        *string `json:"day"`
	Time       *string `json:"time"`
	DigestMode *string `json:"digestMode"`
}
