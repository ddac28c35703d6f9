package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string    `json:"name" gorm:"size:255;not null"`
	NameAr           string    `json:"nameAr" gorm:"size:255"`
	Description      string    `json:"description" gorm:"size:2000"`
	PastJobs         int       `json:"pastJobs" gorm:"default:0"`
	ServiceCardImage string    `json:"serviceCardImage" gorm:"size:255"`
	InApp            bool      `json:"inApp" gorm:"default:true"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
