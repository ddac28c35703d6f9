package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/services"
)

type serverFixture struct {
	db       *gorm.DB
	engine   *gin.Engine
	notifier *services.Notifier
	token    string
	user     *models.User
	svc      *models.Service
	area     *models.Area
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	db := newTestDB(t)
	user, token := createAuthedUser(t, db)

	svc := models.Service{Name: "Electrical", NameAr: "كهرباء", InApp: true}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	area := models.Area{Name: "Bathroom", NameAr: "حمام", InApp: true}
	if err := db.Create(&area).Error; err != nil {
		t.Fatalf("create area: %v", err)
	}

	notifier := services.NewNotifier(db, &nullPush{})
	t.Cleanup(notifier.Close)

	bookings := services.NewBookingService(db)
	r := gin.New()
	Register(r, Deps{
		DB:            db,
		JWTSecret:     testJWTSecret,
		Orders:        services.NewOrderService(db, bookings, notifier),
		Bookings:      bookings,
		Users:         services.NewUserService(db),
		Notifications: services.NewNotificationService(db),
		Notifier:      notifier,
		Companies:     services.NewCompanyService(db),
		Catalog:       services.NewCatalogService(db),
		Areas:         services.NewAreaService(db),
		Projects:      services.NewProjectService(db),
		Reviews:       services.NewReviewService(db),
		Faqs:          services.NewFaqService(db),
	})

	return &serverFixture{
		db:       db,
		engine:   r,
		notifier: notifier,
		token:    token,
		user:     user,
		svc:      &svc,
		area:     &area,
	}
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	fx := newServerFixture(t)

	createBody := fmt.Sprintf(`{
		"issueDescription": "Socket sparks when the heater is plugged in",
		"address": "Apartment 4B, Marina Walk",
		"schedule": %q,
		"contactNumber": "+971504445566",
		"services": [{"id": %q}],
		"areas": [{"id": %q}]
	}`, time.Now().Add(72*time.Hour).Format(time.RFC3339), fx.svc.ID, fx.area.ID)

	w := doRequest(fx.engine, http.MethodPost, "/order/create", fx.token, createBody)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		ID       string   `json:"id"`
		ClientID string   `json:"clientId"`
		Status   string   `json:"status"`
		Quote    *float64 `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Status != "WAITING_QUOTE" {
		t.Fatalf("status = %s, want WAITING_QUOTE", created.Status)
	}
	if created.Quote != nil {
		t.Fatalf("quote = %v, want null", *created.Quote)
	}
	if created.ClientID != fx.user.ID {
		t.Fatalf("clientId = %s, want the session user %s", created.ClientID, fx.user.ID)
	}

	w = doRequest(fx.engine, http.MethodPut, "/order/update?id="+created.ID, fx.token, `{"quote": 500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}

	var updated struct {
		Quote *float64 `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Quote == nil || *updated.Quote != 500 {
		t.Fatalf("response quote = %v, want 500", updated.Quote)
	}

	var notifications []models.Notification
	if err := fx.db.
		Where("user_id = ? AND type = ?", fx.user.ID, models.NotificationTypeQuote).
		Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("quote notifications = %d, want exactly 1", len(notifications))
	}
	if !strings.Contains(notifications[0].Message, "500") {
		t.Fatalf("notification %q does not mention the quote", notifications[0].Message)
	}
}

func TestOrderUpdateUnknownIDOverHTTP(t *testing.T) {
	fx := newServerFixture(t)

	w := doRequest(fx.engine, http.MethodPut, "/order/update?id=00000000-0000-0000-0000-000000000000", fx.token, `{"quote": 42}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
	if _, msg := decodeError(t, w); msg != "ORDER_NOT_FOUND" {
		t.Fatalf("message = %q, want ORDER_NOT_FOUND", msg)
	}
}

func TestReviewOwnershipOverHTTP(t *testing.T) {
	fx := newServerFixture(t)
	_, otherToken := createAuthedUser(t, fx.db)

	w := doRequest(fx.engine, http.MethodPost, "/review/create", fx.token, `{"rating": 5, "review": "Fast and clean work"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var review struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &review); err != nil {
		t.Fatalf("decode review: %v", err)
	}

	w = doRequest(fx.engine, http.MethodPut, "/review/update?id="+review.ID, otherToken, `{"rating": 1}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update status = %d, want 403: %s", w.Code, w.Body.String())
	}

	w = doRequest(fx.engine, http.MethodPut, "/review/update?id="+review.ID, fx.token, `{"rating": 4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("owner update status = %d: %s", w.Code, w.Body.String())
	}
}
