package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Area struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	NameAr    string    `json:"nameAr" gorm:"size:255"`
	AreaImage string    `json:"areaImage" gorm:"size:255"`
	InApp     bool      `json:"inApp" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Area) TableName() string {
	return "areas"
}

func (a *Area) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
