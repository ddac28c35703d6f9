package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusWaitingQuote    OrderStatus = "WAITING_QUOTE"
	OrderStatusWaitingApproval OrderStatus = "WAITING_APPROVAL"
	OrderStatusApproved        OrderStatus = "APPROVED"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

// Order is a service request awaiting or holding a price quote from a company.
// Quote stays null while the order is in WAITING_QUOTE.
type Order struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID         string         `json:"clientId" gorm:"type:uuid;not null;index"`
	CompanyID        *string        `json:"companyId" gorm:"type:uuid;index"`
	IssueDescription string         `json:"issueDescription" gorm:"size:2000;not null"`
	Attachments      datatypes.JSON `json:"attachments"`
	Address          string         `json:"address" gorm:"size:500;not null"`
	Schedule         time.Time      `json:"schedule" gorm:"not null"`
	ContactNumber    string         `json:"contactNumber" gorm:"size:20;not null"`
	Quote            *float64       `json:"quote" gorm:"type:decimal(10,2)"`
	Status           OrderStatus    `json:"status" gorm:"type:varchar(20);not null;default:'WAITING_QUOTE'"`
	BOQ              datatypes.JSON `json:"boq"`
	CreatedAt        time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Client   *User     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Company  *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Services []Service `json:"services,omitempty" gorm:"many2many:order_services"`
	Areas    []Area    `json:"areas,omitempty" gorm:"many2many:order_areas"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusWaitingQuote
	}
	return nil
}
