package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is a portfolio entry showcased in the client app.
type Project struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey"`
	Headline    string         `json:"headline" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"size:2000"`
	Images      datatypes.JSON `json:"images"`
	Address     string         `json:"address" gorm:"size:500"`
	Date        time.Time      `json:"date"`
	InApp       bool           `json:"inApp" gorm:"default:true"`
	HTMLContent datatypes.JSON `json:"htmlContent"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Services []Service `json:"services,omitempty" gorm:"many2many:project_services"`
	Areas    []Area    `json:"areas,omitempty" gorm:"many2many:project_areas"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
