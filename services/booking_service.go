package services

import (
	"time"

	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type BookingCreateParams struct {
	ClientID         string               `json:"clientId"`
	IssueDescription string               `json:"issueDescription" binding:"required"`
	Attachments      []string             `json:"attachments"`
	Address          string               `json:"address" binding:"required"`
	Schedule         time.Time            `json:"schedule" binding:"required"`
	ContactNumber    string               `json:"contactNumber" binding:"required"`
	CompanyID        *string              `json:"companyId"`
	BookingPrice     *float64             `json:"bookingPrice"`
	Status           models.BookingStatus `json:"status" binding:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
	Notes            map[string]any       `json:"notes"`
	Services         []RefID              `json:"services" binding:"required,dive"`
	Areas            []RefID              `json:"areas" binding:"required,dive"`
}

type BookingUpdateParams struct {
	IssueDescription *string               `json:"issueDescription"`
	Attachments      []string              `json:"attachments"`
	Address          *string               `json:"address"`
	Schedule         *time.Time            `json:"schedule"`
	ContactNumber    *string               `json:"contactNumber"`
	CompanyID        *string               `json:"companyId"`
	BookingPrice     *float64              `json:"bookingPrice"`
	Status           *models.BookingStatus `json:"status" binding:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
	Notes            map[string]any        `json:"notes"`
	ReviewID         *string               `json:"reviewId"`
	Services         []RefID               `json:"services" binding:"omitempty,dive"`
	Areas            []RefID               `json:"areas" binding:"omitempty,dive"`
}

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Client").
		Preload("Company").
		Preload("Services").
		Preload("Areas").
		Preload("ClientReview").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, types.Internal("ERR_BOOKING_LIST")
	}
	return bookings, nil
}

func (s *BookingService) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Preload("Client").
		Preload("Company").
		Preload("Services").
		Preload("Areas").
		Preload("ClientReview").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, types.FromDBError(err, "BOOKING_NOT_FOUND", "ERR_BOOKING_GET")
	}
	return &booking, nil
}

func (s *BookingService) Create(params BookingCreateParams) (*models.Booking, error) {
	booking := models.Booking{
		ClientID:         params.ClientID,
		IssueDescription: params.IssueDescription,
		Address:          params.Address,
		Schedule:         params.Schedule,
		ContactNumber:    params.ContactNumber,
		CompanyID:        params.CompanyID,
		BookingPrice:     params.BookingPrice,
		Status:           params.Status,
		Services:         refsToServices(params.Services),
		Areas:            refsToAreas(params.Areas),
	}
	if params.Attachments != nil {
		booking.Attachments = marshalJSON(params.Attachments)
	}
	if params.Notes != nil {
		booking.Notes = marshalJSON(params.Notes)
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, types.Internal("ERR_BOOKING_CREATE")
	}
	return s.GetByID(booking.ID)
}

// CreateFromOrder builds the booking draft derived from an approved order:
// services, areas, address, schedule, contact number, attachments and the
// assigned company are copied verbatim, the quote becomes the price. The
// booking keeps no reference back to the order.
func (s *BookingService) CreateFromOrder(order *models.Order) (*models.Booking, error) {
	booking := models.Booking{
		ClientID:         order.ClientID,
		CompanyID:        order.CompanyID,
		IssueDescription: order.IssueDescription,
		Attachments:      order.Attachments,
		Address:          order.Address,
		Schedule:         order.Schedule,
		ContactNumber:    order.ContactNumber,
		BookingPrice:     order.Quote,
		Status:           models.BookingStatusUpcoming,
		Services:         order.Services,
		Areas:            order.Areas,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return s.GetByID(booking.ID)
}

func (s *BookingService) Update(id string, params BookingUpdateParams) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, types.FromDBError(err, "BOOKING_NOT_FOUND", "ERR_BOOKING_UPDATE")
	}

	updates := map[string]any{}
	if params.IssueDescription != nil {
		updates["issue_description"] = *params.IssueDescription
	}
	if params.Attachments != nil {
		updates["attachments"] = marshalJSON(params.Attachments)
	}
	if params.Address != nil {
		updates["address"] = *params.Address
	}
	if params.Schedule != nil {
		updates["schedule"] = *params.Schedule
	}
	if params.ContactNumber != nil {
		updates["contact_number"] = *params.ContactNumber
	}
	if params.CompanyID != nil {
		updates["company_id"] = *params.CompanyID
	}
	if params.BookingPrice != nil {
		updates["booking_price"] = *params.BookingPrice
	}
	if params.Status != nil {
		updates["status"] = *params.Status
	}
	if params.Notes != nil {
		updates["notes"] = marshalJSON(params.Notes)
	}
	if params.ReviewID != nil {
		updates["review_id"] = *params.ReviewID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&booking).Updates(updates).Error; err != nil {
			return nil, types.Internal("ERR_BOOKING_UPDATE")
		}
	}

	if params.Services != nil {
		if err := s.db.Model(&booking).Association("Services").Replace(refsToServicePtrs(params.Services)); err != nil {
			return nil, types.Internal("ERR_BOOKING_UPDATE")
		}
	}
	if params.Areas != nil {
		if err := s.db.Model(&booking).Association("Areas").Replace(refsToAreaPtrs(params.Areas)); err != nil {
			return nil, types.Internal("ERR_BOOKING_UPDATE")
		}
	}

	return s.GetByID(id)
}

func (s *BookingService) Delete(id string) error {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "BOOKING_NOT_FOUND", "ERR_BOOKING_DELETE")
	}
	if err := s.db.Delete(&booking).Error; err != nil {
		return types.Internal("ERR_BOOKING_DELETE")
	}
	return nil
}

// UpcomingForDay returns UPCOMING bookings scheduled inside the given day,
// with the relations the reminder message needs.
func (s *BookingService) UpcomingForDay(dayStart, dayEnd time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.
		Preload("Client").
		Preload("Company").
		Preload("Services").
		Where("schedule >= ? AND schedule <= ? AND status = ?", dayStart, dayEnd, models.BookingStatusUpcoming).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
