package services

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

type orderFixture struct {
	db       *gorm.DB
	orders   *OrderService
	bookings *BookingService
	notifier *Notifier
	push     *fakePush
	user     *models.User
	svc      *models.Service
	area     *models.Area
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := newTestDB(t)
	push := &fakePush{}
	notifier := NewNotifier(db, push)
	t.Cleanup(notifier.Close)

	bookings := NewBookingService(db)
	orders := NewOrderService(db, bookings, notifier)

	user := createTestUser(t, db, "")
	svc, area := createTestCatalog(t, db)
	return &orderFixture{
		db:       db,
		orders:   orders,
		bookings: bookings,
		notifier: notifier,
		push:     push,
		user:     user,
		svc:      svc,
		area:     area,
	}
}

func TestOrderCreateDefaultsToWaitingQuote(t *testing.T) {
	fx := newOrderFixture(t)

	order := createTestOrder(t, fx.orders, fx.user.ID, fx.svc, fx.area)

	if order.Status != models.OrderStatusWaitingQuote {
		t.Fatalf("status = %s, want %s", order.Status, models.OrderStatusWaitingQuote)
	}
	if order.Quote != nil {
		t.Fatalf("quote = %v, want nil", *order.Quote)
	}
	if len(order.Services) != 1 || order.Services[0].ID != fx.svc.ID {
		t.Fatalf("services not attached: %+v", order.Services)
	}
}

func TestOrderUpdateQuoteNotifiesExactlyOnce(t *testing.T) {
	fx := newOrderFixture(t)
	order := createTestOrder(t, fx.orders, fx.user.ID, fx.svc, fx.area)

	quote := 500.0
	result, err := fx.orders.Update(order.ID, OrderUpdateParams{Quote: &quote})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if result.Quote == nil || *result.Quote != 500 {
		t.Fatalf("response quote = %v, want 500", result.Quote)
	}
	if got := countNotifications(t, fx.db, fx.user.ID, models.NotificationTypeQuote); got != 1 {
		t.Fatalf("quote notifications after first update = %d, want 1", got)
	}

	// Same value again: no new notification.
	if _, err := fx.orders.Update(order.ID, OrderUpdateParams{Quote: &quote}); err != nil {
		t.Fatalf("second update: %v", err)
	}
	if got := countNotifications(t, fx.db, fx.user.ID, models.NotificationTypeQuote); got != 1 {
		t.Fatalf("quote notifications after unchanged update = %d, want 1", got)
	}

	// Changed value: one more.
	raised := 750.0
	if _, err := fx.orders.Update(order.ID, OrderUpdateParams{Quote: &raised}); err != nil {
		t.Fatalf("third update: %v", err)
	}
	if got := countNotifications(t, fx.db, fx.user.ID, models.NotificationTypeQuote); got != 2 {
		t.Fatalf("quote notifications after changed update = %d, want 2", got)
	}

	var first models.Notification
	if err := fx.db.
		Where("user_id = ? AND type = ?", fx.user.ID, models.NotificationTypeQuote).
		Order("created_at ASC").
		First(&first).Error; err != nil {
		t.Fatalf("load notification: %v", err)
	}
	if !strings.Contains(first.Message, "500") {
		t.Fatalf("notification message %q does not mention the quote", first.Message)
	}
}

func TestOrderApprovalCreatesBookingCopy(t *testing.T) {
	fx := newOrderFixture(t)
	order := createTestOrder(t, fx.orders, fx.user.ID, fx.svc, fx.area)

	quote := 320.5
	if _, err := fx.orders.Update(order.ID, OrderUpdateParams{Quote: &quote}); err != nil {
		t.Fatalf("quote update: %v", err)
	}

	approved := models.OrderStatusApproved
	result, err := fx.orders.Update(order.ID, OrderUpdateParams{Status: &approved})
	if err != nil {
		t.Fatalf("approval update: %v", err)
	}
	if !result.BookingCreated || result.Booking == nil {
		t.Fatal("expected a booking to be created on approval")
	}

	booking := result.Booking
	if booking.ClientID != order.ClientID {
		t.Fatalf("booking client = %s, want %s", booking.ClientID, order.ClientID)
	}
	if booking.Status != models.BookingStatusUpcoming {
		t.Fatalf("booking status = %s, want UPCOMING", booking.Status)
	}
	if booking.BookingPrice == nil || *booking.BookingPrice != quote {
		t.Fatalf("booking price = %v, want %v", booking.BookingPrice, quote)
	}
	if booking.IssueDescription != order.IssueDescription || booking.Address != order.Address {
		t.Fatal("booking did not copy order details")
	}

	loaded, err := fx.bookings.GetByID(booking.ID)
	if err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if len(loaded.Services) != 1 || loaded.Services[0].ID != fx.svc.ID {
		t.Fatalf("booking services not copied: %+v", loaded.Services)
	}

	// Approving an already approved order does not create another booking.
	result, err = fx.orders.Update(order.ID, OrderUpdateParams{Status: &approved})
	if err != nil {
		t.Fatalf("repeated approval: %v", err)
	}
	if result.BookingCreated {
		t.Fatal("repeated approval must not create a second booking")
	}

	var count int64
	if err := fx.db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 1 {
		t.Fatalf("bookings = %d, want 1", count)
	}
}

func TestOrderApprovalSurvivesBookingFailure(t *testing.T) {
	fx := newOrderFixture(t)
	order := createTestOrder(t, fx.orders, fx.user.ID, fx.svc, fx.area)

	// Losing the bookings table makes the draft write fail.
	if err := fx.db.Migrator().DropTable(&models.Booking{}); err != nil {
		t.Fatalf("drop bookings table: %v", err)
	}

	approved := models.OrderStatusApproved
	result, err := fx.orders.Update(order.ID, OrderUpdateParams{Status: &approved})
	if err != nil {
		t.Fatalf("approval update must not fail on booking trouble: %v", err)
	}
	if result.BookingCreated || result.Booking != nil {
		t.Fatal("no booking should be reported when the write failed")
	}
	if result.Status != models.OrderStatusApproved {
		t.Fatalf("order status = %s, want APPROVED", result.Status)
	}
}

func TestOrderUpdateMissingOrder(t *testing.T) {
	fx := newOrderFixture(t)

	quote := 100.0
	_, err := fx.orders.Update("00000000-0000-0000-0000-000000000000", OrderUpdateParams{Quote: &quote})
	if err == nil {
		t.Fatal("expected an error for a missing order")
	}
	appErr, ok := types.AsAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Fatalf("error = %v, want 404 AppError", err)
	}
}

func TestOrderQuotePushDeliveredToDevices(t *testing.T) {
	db := newTestDB(t)
	push := &fakePush{}
	notifier := NewNotifier(db, push)

	bookings := NewBookingService(db)
	orders := NewOrderService(db, bookings, notifier)

	user := createTestUser(t, db, `{"fcmTokens":[{"token":"ExponentPushToken[abc]"},{"token":"ExponentPushToken[def]"}],"lang":"ar"}`)
	svc, area := createTestCatalog(t, db)
	order := createTestOrder(t, orders, user.ID, svc, area)

	quote := 500.0
	if _, err := orders.Update(order.ID, OrderUpdateParams{Quote: &quote}); err != nil {
		t.Fatalf("update: %v", err)
	}

	notifier.Close()

	calls := push.Calls()
	if len(calls) != 2 {
		t.Fatalf("push deliveries = %d, want 2 (one per device)", len(calls))
	}
	for _, call := range calls {
		if call.Title != "تسعيرة جديدة" {
			t.Fatalf("push title = %q, want the Arabic title for lang=ar", call.Title)
		}
		if !strings.Contains(call.Body, "500") {
			t.Fatalf("push body %q does not mention the quote", call.Body)
		}
	}
}
