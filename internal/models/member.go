package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Member struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"index;not null"`
	TeamID    uuid.UUID      `json:"teamId" gorm:"type:uuid;index;not null"`
	Role      string         `json:"role" gorm:"default:member"` // leader, member
	Password  string         `json:"-"`                          // empty until the member claims the record
	PhotoURL  string         `json:"photoUrl"`
	Bio       string         `json:"bio"`
	JoinedAt  *time.Time     `json:"joinedAt"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Preferences MemberPreferences `json:"preferences" gorm:"embedded;embeddedPrefix:pref_"`
}

type MemberPreferences struct {
	Theme              string `json:"theme" gorm:"default:dark"`    // dark, light, auto
	Language           string `json:"language" gorm:"default:en"`   // en, tr
	EmailNotifications bool   `json:"emailNotifications" gorm:"default:true"`
	EmailDigest        string `json:"emailDigest" gorm:"default:weekly"` // daily, weekly, none
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Member DTOs
type AddMemberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

type UpdateMemberRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoUrl"`
	Bio      *string `json:"bio"`

	Preferences *UpdatePreferencesRequest `json:"preferences"`
}

type UpdatePreferencesRequest struct {
	Theme              *string `json:"theme"`
	Language           *string `json:"language"`
	EmailNotifications *bool   `json:"emailNotifications"`
	EmailDigest        *string `json:"emailDigest"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=leader member"`
}
