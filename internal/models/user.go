package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a manager account. Team members authenticate through their
// Member record instead (see Member.Password).
type User struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-"`
	Name      string         `json:"name"`
	PhotoURL  string         `json:"photoUrl"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Teams     []Team         `json:"teams,omitempty" gorm:"foreignKey:ManagerID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Auth DTOs
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ClaimRequest lets a pre-created member record set its password and
// start logging in.
type ClaimRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoUrl"`
	Bio      *string `json:"bio"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	Actor string      `json:"actor"` // manager or member
	User  interface{} `json:"user"`
}
