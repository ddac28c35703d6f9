package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "UPCOMING"
	BookingStatusOngoing   BookingStatus = "ONGOING"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a confirmed, scheduled appointment. Bookings derived from an
// approved order carry a denormalized copy of its services, areas and price;
// there is no foreign key back to the order.
type Booking struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID         string         `json:"clientId" gorm:"type:uuid;not null;index"`
	CompanyID        *string        `json:"companyId" gorm:"type:uuid;index"`
	IssueDescription string         `json:"issueDescription" gorm:"size:2000"`
	Attachments      datatypes.JSON `json:"attachments"`
	Address          string         `json:"address" gorm:"size:500;not null"`
	Schedule         time.Time      `json:"schedule" gorm:"not null"`
	ContactNumber    string         `json:"contactNumber" gorm:"size:20;not null"`
	BookingPrice     *float64       `json:"bookingPrice" gorm:"type:decimal(10,2)"`
	Status           BookingStatus  `json:"status" gorm:"type:varchar(20);not null;default:'UPCOMING'"`
	Notes            datatypes.JSON `json:"notes"`
	ReviewID         *string        `json:"reviewId" gorm:"type:uuid"`
	CreatedAt        time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Client       *User     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Company      *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Services     []Service `json:"services,omitempty" gorm:"many2many:booking_services"`
	Areas        []Area    `json:"areas,omitempty" gorm:"many2many:booking_areas"`
	ClientReview *Review   `json:"clientReview,omitempty" gorm:"foreignKey:ReviewID"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusUpcoming
	}
	return nil
}
