package jobs

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"syana-server/database"
	"syana-server/models"
	"syana-server/services"
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

type countingPush struct {
	mu    sync.Mutex
	count int
}

func (p *countingPush) Send(token, title, body string, data map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	return nil
}

func createBooking(t *testing.T, db *gorm.DB, clientID string, schedule time.Time, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := models.Booking{
		ClientID:         clientID,
		IssueDescription: "Scheduled maintenance",
		Address:          "Villa 9, Jumeirah",
		Schedule:         schedule,
		ContactNumber:    "+971507778899",
		Status:           status,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return &booking
}

func TestSweepTomorrowNotifiesOnlyTomorrowsUpcoming(t *testing.T) {
	db := newTestDB(t)

	client := models.User{Name: "Reminder Client", Email: "reminder@example.com", PhoneNumber: "+971501230001"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	other := models.User{Name: "Quiet Client", Email: "quiet@example.com", PhoneNumber: "+971501230002"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create other client: %v", err)
	}

	now := time.Now()
	tomorrowNoon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	// Only this one qualifies.
	createBooking(t, db, client.ID, tomorrowNoon, models.BookingStatusUpcoming)
	// Wrong day.
	createBooking(t, db, other.ID, tomorrowNoon.AddDate(0, 0, 1), models.BookingStatusUpcoming)
	createBooking(t, db, other.ID, now, models.BookingStatusUpcoming)
	// Right day, wrong status.
	createBooking(t, db, other.ID, tomorrowNoon, models.BookingStatusCancelled)

	notifier := services.NewNotifier(db, &countingPush{})
	job := NewReminderJob(services.NewBookingService(db), notifier)

	job.SweepTomorrow(now)
	notifier.Close()

	var reminders []models.Notification
	if err := db.Where("type = ?", models.NotificationTypeReminder).Find(&reminders).Error; err != nil {
		t.Fatalf("load reminders: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("reminders = %d, want exactly 1", len(reminders))
	}
	if reminders[0].UserID != client.ID {
		t.Fatalf("reminder went to %s, want %s", reminders[0].UserID, client.ID)
	}
	if !strings.Contains(reminders[0].Message, "tomorrow") {
		t.Fatalf("reminder %q does not mention tomorrow", reminders[0].Message)
	}
}
