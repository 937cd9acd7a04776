package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an identity record. Emails are stored lower-cased so the
// unique index enforces case-insensitive uniqueness.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;default:'user'"`
	Phone        *string   `json:"phone,omitempty" gorm:"size:50"`
	ProfileImage *string   `json:"profile_image,omitempty" gorm:"size:512"`

	// At most one live reset token per user; both fields are cleared
	// atomically when the token is consumed.
	ResetToken       *string    `json:"-" gorm:"size:128;index"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
