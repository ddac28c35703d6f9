package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Company struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string         `json:"name" gorm:"size:255;not null"`
	NameAr         string         `json:"nameAr" gorm:"size:255"`
	Logo           string         `json:"logo" gorm:"size:255"`
	PhoneNumbers   datatypes.JSON `json:"phoneNumbers"`
	EmailAddresses datatypes.JSON `json:"emailAddresses"`
	Addresses      datatypes.JSON `json:"addresses"`
	TotalEarnings  float64        `json:"totalEarnings" gorm:"type:decimal(12,2);default:0"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Services []Service `json:"services,omitempty" gorm:"many2many:company_services"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
