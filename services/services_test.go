package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"syana-server/database"
	"syana-server/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type pushCall struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// fakePush records deliveries; Fail makes every send error.
type fakePush struct {
	mu    sync.Mutex
	Fail  bool
	calls []pushCall
}

func (f *fakePush) Send(token, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return fmt.Errorf("push rejected")
	}
	f.calls = append(f.calls, pushCall{Token: token, Title: title, Body: body, Data: data})
	return nil
}

func (f *fakePush) Calls() []pushCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]pushCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func createTestUser(t *testing.T, db *gorm.DB, settings string) *models.User {
	t.Helper()
	user := models.User{
		Name:        "Test Client",
		Email:       fmt.Sprintf("client%d@example.com", time.Now().UnixNano()),
		PhoneNumber: fmt.Sprintf("+97150%07d", time.Now().UnixNano()%10000000),
	}
	if settings != "" {
		user.Settings = datatypes.JSON(settings)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &user
}

func createTestCatalog(t *testing.T, db *gorm.DB) (*models.Service, *models.Area) {
	t.Helper()
	svc := models.Service{Name: "Plumbing", NameAr: "سباكة", InApp: true}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("create test service: %v", err)
	}
	area := models.Area{Name: "Kitchen", NameAr: "مطبخ", InApp: true}
	if err := db.Create(&area).Error; err != nil {
		t.Fatalf("create test area: %v", err)
	}
	return &svc, &area
}

func createTestOrder(t *testing.T, orders *OrderService, clientID string, svc *models.Service, area *models.Area) *models.Order {
	t.Helper()
	order, err := orders.Create(OrderCreateParams{
		ClientID:         clientID,
		IssueDescription: "Leaking pipe under the sink",
		Address:          "Villa 12, Al Barsha",
		Schedule:         time.Now().Add(48 * time.Hour),
		ContactNumber:    "+971501112233",
		Services:         []RefID{{ID: svc.ID}},
		Areas:            []RefID{{ID: area.ID}},
	})
	if err != nil {
		t.Fatalf("create test order: %v", err)
	}
	return order
}

func countNotifications(t *testing.T, db *gorm.DB, userID string, kind models.NotificationType) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", userID, kind).
		Count(&count).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	return count
}
