package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeSayenly  NotificationType = "SAYENLY"
	NotificationTypeReminder NotificationType = "REMINDER"
	NotificationTypeQuote    NotificationType = "QUOTE"
)

// Notification records are created and optionally read-flagged, never
// otherwise mutated. Route holds the deep-link payload for the client app.
type Notification struct {
	ID        string           `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string           `json:"userId" gorm:"type:uuid;not null;index"`
	Message   string           `json:"message" gorm:"size:1000;not null"`
	MessageAr string           `json:"messageAr" gorm:"size:1000"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null;default:'SAYENLY'"`
	Read      bool             `json:"read" gorm:"default:false"`
	Route     datatypes.JSON   `json:"route"`
	CreatedAt time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = NotificationTypeSayenly
	}
	return nil
}
