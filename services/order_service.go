package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

// RefID is a bare entity reference carried in request bodies.
type RefID struct {
	ID string `json:"id" binding:"required"`
}

type OrderCreateParams struct {
	ClientID         string             `json:"clientId"`
	IssueDescription string             `json:"issueDescription" binding:"required"`
	Attachments      []string           `json:"attachments"`
	Address          string             `json:"address" binding:"required"`
	Schedule         time.Time          `json:"schedule" binding:"required"`
	ContactNumber    string             `json:"contactNumber" binding:"required"`
	CompanyID        *string            `json:"companyId"`
	Quote            *float64           `json:"quote"`
	Status           models.OrderStatus `json:"status" binding:"omitempty,oneof=WAITING_QUOTE"`
	BOQ              map[string]any     `json:"boq"`
	Services         []RefID            `json:"services" binding:"required,dive"`
	Areas            []RefID            `json:"areas" binding:"required,dive"`
}

type OrderUpdateParams struct {
	IssueDescription *string             `json:"issueDescription"`
	Attachments      []string            `json:"attachments"`
	Address          *string             `json:"address"`
	Schedule         *time.Time          `json:"schedule"`
	ContactNumber    *string             `json:"contactNumber"`
	CompanyID        *string             `json:"companyId"`
	Quote            *float64            `json:"quote"`
	Status           *models.OrderStatus `json:"status" binding:"omitempty,oneof=WAITING_QUOTE WAITING_APPROVAL APPROVED REJECTED CANCELLED"`
	BOQ              map[string]any      `json:"boq"`
	Services         []RefID             `json:"services" binding:"omitempty,dive"`
	Areas            []RefID             `json:"areas" binding:"omitempty,dive"`
}

// OrderUpdateResult is the updated order, augmented with the derived booking
// when the update crossed into approval and the booking write succeeded.
type OrderUpdateResult struct {
	*models.Order
	BookingCreated bool            `json:"bookingCreated,omitempty"`
	Booking        *models.Booking `json:"booking,omitempty"`
}

// orderSnapshot is the minimal pre-update read used to derive side effects.
type orderSnapshot struct {
	ID       string
	Quote    *float64
	ClientID string
	Status   models.OrderStatus
}

type OrderService struct {
	db       *gorm.DB
	bookings *BookingService
	notifier *Notifier
}

func NewOrderService(db *gorm.DB, bookings *BookingService, notifier *Notifier) *OrderService {
	return &OrderService{db: db, bookings: bookings, notifier: notifier}
}

func (s *OrderService) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Preload("Client").
		Preload("Company").
		Preload("Services").
		Preload("Areas").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, types.Internal("ERR_ORDER_LIST")
	}
	return orders, nil
}

func (s *OrderService) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Client").
		Preload("Company").
		Preload("Services").
		Preload("Areas").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, types.FromDBError(err, "ORDER_NOT_FOUND", "ERR_ORDER_GET")
	}
	return &order, nil
}

func (s *OrderService) Create(params OrderCreateParams) (*models.Order, error) {
	order := models.Order{
		ClientID:         params.ClientID,
		IssueDescription: params.IssueDescription,
		Address:          params.Address,
		Schedule:         params.Schedule,
		ContactNumber:    params.ContactNumber,
		CompanyID:        params.CompanyID,
		Quote:            params.Quote,
		Status:           params.Status,
		Services:         refsToServices(params.Services),
		Areas:            refsToAreas(params.Areas),
	}
	if params.Attachments != nil {
		order.Attachments = marshalJSON(params.Attachments)
	}
	if params.BOQ != nil {
		order.BOQ = marshalJSON(params.BOQ)
	}

	if err := s.db.Create(&order).Error; err != nil {
		log.Printf("❌ Failed to create order: %v", err)
		return nil, types.Internal("ERR_ORDER_CREATE")
	}

	return s.GetByID(order.ID)
}

// getForQuoteCheck reads the fields needed to derive side effects. The read
// tolerates transient failure: two extra attempts with 100ms*2^attempt delay
// before the error surfaces. A missing row is not retried.
func (s *OrderService) getForQuoteCheck(id string, retries int) (*orderSnapshot, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		var snap orderSnapshot
		err := s.db.Model(&models.Order{}).
			Select("id", "quote", "client_id", "status").
			Where("id = ?", id).
			Take(&snap).Error
		if err == nil {
			return &snap, nil
		}
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}

		lastErr = err
		if attempt == retries {
			break
		}

		delay := time.Duration(1<<attempt) * 100 * time.Millisecond
		log.Printf("⚠️ quote check read attempt %d failed, retrying in %v: %v", attempt+1, delay, err)
		time.Sleep(delay)
	}
	return nil, lastErr
}

// Update applies a partial update and derives its side effects: a booking
// draft when the order crosses into approval, and a quote notification when
// the quote value changed. Neither side effect can fail the update response.
func (s *OrderService) Update(id string, params OrderUpdateParams) (*OrderUpdateResult, error) {
	current, err := s.getForQuoteCheck(id, 2)
	if err != nil {
		return nil, types.FromDBError(err, "ORDER_NOT_FOUND", "ERR_ORDER_GET")
	}

	// Both checks compare against the pre-update row, so they must be
	// computed before the write.
	quoteChanged := params.Quote != nil &&
		(current.Quote == nil || formatQuote(*current.Quote) != formatQuote(*params.Quote))
	enteringApproval := params.Status != nil &&
		*params.Status == models.OrderStatusApproved &&
		current.Status != models.OrderStatusApproved

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
	if params.Quote != nil {
		updates["quote"] = *params.Quote
	}
	if params.Status != nil {
		updates["status"] = *params.Status
	}
	if params.BOQ != nil {
		updates["boq"] = marshalJSON(params.BOQ)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, types.FromDBError(err, "ORDER_NOT_FOUND", "ERR_ORDER_UPDATE")
		}
	}

	if params.Services != nil {
		if err := s.db.Model(&models.Order{ID: id}).Association("Services").Replace(refsToServicePtrs(params.Services)); err != nil {
			return nil, types.Internal("ERR_ORDER_UPDATE")
		}
	}
	if params.Areas != nil {
		if err := s.db.Model(&models.Order{ID: id}).Association("Areas").Replace(refsToAreaPtrs(params.Areas)); err != nil {
			return nil, types.Internal("ERR_ORDER_UPDATE")
		}
	}

	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := &OrderUpdateResult{Order: order}

	if enteringApproval {
		booking, err := s.bookings.CreateFromOrder(order)
		if err != nil {
			// Best effort: the approved order stands even when the booking
			// draft cannot be written.
			log.Printf("❌ Failed to create booking for approved order %s: %v", order.ID, err)
		} else {
			result.BookingCreated = true
			result.Booking = booking
		}
	}

	if quoteChanged && order.ClientID != "" && order.Quote != nil {
		companyName := "the company"
		companyNameAr := "الشركة"
		if order.Company != nil {
			companyName = order.Company.Name
			if order.Company.NameAr != "" {
				companyNameAr = order.Company.NameAr
			}
		}
		quote := formatQuote(*order.Quote)
		message := fmt.Sprintf("A quote of %s has been provided by %s for your order.", quote, companyName)
		messageAr := fmt.Sprintf("تم تقديم تسعيرة بقيمة %s من %s لطلبك.", quote, companyNameAr)
		s.notifier.SendQuote(order.ClientID, message, messageAr)
	}

	return result, nil
}

func (s *OrderService) Delete(id string) error {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return types.FromDBError(err, "ORDER_NOT_FOUND", "ERR_ORDER_DELETE")
	}
	if err := s.db.Delete(&order).Error; err != nil {
		return types.Internal("ERR_ORDER_DELETE")
	}
	return nil
}

// formatQuote renders a quote the way it is compared: shortest decimal form.
func formatQuote(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func marshalJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func refsToServices(refs []RefID) []models.Service {
	out := make([]models.Service, 0, len(refs))
	for _, r := range refs {
		out = append(out, models.Service{ID: r.ID})
	}
	return out
}

func refsToAreas(refs []RefID) []models.Area {
	out := make([]models.Area, 0, len(refs))
	for _, r := range refs {
		out = append(out, models.Area{ID: r.ID})
	}
	return out
}

func refsToServicePtrs(refs []RefID) []*models.Service {
	out := make([]*models.Service, 0, len(refs))
	for _, r := range refs {
		out = append(out, &models.Service{ID: r.ID})
	}
	return out
}

func refsToAreaPtrs(refs []RefID) []*models.Area {
	out := make([]*models.Area, 0, len(refs))
	for _, r := range refs {
		out = append(out, &models.Area{ID: r.ID})
	}
	return out
}
