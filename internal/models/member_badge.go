package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberBadge records a badge grant. The unique index enforces the
// at-most-one-grant-per-(member, badge) invariant at the storage layer.
type MemberBadge struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID      `json:"memberId" gorm:"type:uuid;not null;uniqueIndex:idx_member_badge"`
	BadgeID   string         `json:"badgeId" gorm:"not null;uniqueIndex:idx_member_badge"`
	EarnedAt  time.Time      `json:"earnedAt"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (b *MemberBadge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.EarnedAt.IsZero() {
		b.EarnedAt = time.Now()
	}
	return nil
}

type GrantBadgeRequest struct {
	BadgeID string `json:"badgeId" validate:"required"`
}
