package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationCode holds a bcrypt hash of a one-time login code. Codes are
// single-use and expire ten minutes after issue.
type VerificationCode struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:20;not null;index"`
	CodeHash    string    `json:"-" gorm:"size:255;not null"`
	ExpiresAt   time.Time `json:"expiresAt" gorm:"not null"`
	Consumed    bool      `json:"consumed" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (VerificationCode) TableName() string {
	return "verification_codes"
}

func (v *VerificationCode) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
