package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kudos is an append-only shoutout from one member to another.
type Kudos struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	FromMemberID uuid.UUID      `json:"fromMemberId" gorm:"type:uuid;index;not null"`
	ToMemberID   uuid.UUID      `json:"toMemberId" gorm:"type:uuid;index;not null"`
	TeamID       uuid.UUID      `json:"teamId" gorm:"type:uuid;index;not null"`
	Message      string         `json:"message" gorm:"not null"`
	Date         time.Time      `json:"date"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (k *Kudos) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	if k.Date.IsZero() {
		k.Date = time.Now()
	}
	return nil
}

type GiveKudosRequest struct {
	ToMemberID uuid.UUID `json:"toMemberId" validate:"required"`
	TeamID     uuid.UUID `json:"teamId" validate:"required"`
	Message    string    `json:"message" validate:"required"`
}
