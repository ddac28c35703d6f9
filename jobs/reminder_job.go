package jobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"syana-server/models"
	"syana-server/services"
)

// ReminderJob notifies clients one day ahead of their upcoming bookings.
type ReminderJob struct {
	bookings *services.BookingService
	notifier *services.Notifier
	interval time.Duration
	stopChan chan bool
}

func NewReminderJob(bookings *services.BookingService, notifier *services.Notifier) *ReminderJob {
	return &ReminderJob{
		bookings: bookings,
		notifier: notifier,
		interval: 24 * time.Hour,
		stopChan: make(chan bool),
	}
}

// Start begins the reminder job
func (j *ReminderJob) Start() {
	go j.run()
	log.Println("🚀 Booking reminder job started")
}

// Stop stops the reminder job
func (j *ReminderJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Booking reminder job stopped")
}

func (j *ReminderJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// Fire once on startup so a restart never skips a day.
	j.SweepTomorrow(time.Now())

	for {
		select {
		case <-ticker.C:
			j.SweepTomorrow(time.Now())
		case <-j.stopChan:
			return
		}
	}
}

// SweepTomorrow sends one reminder per UPCOMING booking scheduled the day
// after now.
func (j *ReminderJob) SweepTomorrow(now time.Time) {
	tomorrow := now.AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	bookings, err := j.bookings.UpcomingForDay(dayStart, dayEnd)
	if err != nil {
		log.Printf("❌ Reminder sweep failed: %v", err)
		return
	}
	if len(bookings) == 0 {
		return
	}

	log.Printf("⏰ Sending reminders for %d upcoming bookings", len(bookings))
	for _, booking := range bookings {
		message, messageAr := reminderMessages(&booking)
		if _, err := j.notifier.SendReminder(booking.ClientID, message, messageAr); err != nil {
			log.Printf("❌ Failed to send reminder for booking %s: %v", booking.ID, err)
		}
	}
}

func reminderMessages(booking *models.Booking) (string, string) {
	company := "your service provider"
	companyAr := "مزود الخدمة"
	if booking.Company != nil {
		company = booking.Company.Name
		if booking.Company.NameAr != "" {
			companyAr = booking.Company.NameAr
		}
	}

	names := make([]string, 0, len(booking.Services))
	namesAr := make([]string, 0, len(booking.Services))
	for _, svc := range booking.Services {
		names = append(names, svc.Name)
		if svc.NameAr != "" {
			namesAr = append(namesAr, svc.NameAr)
		}
	}
	serviceList := "your booked services"
	if len(names) > 0 {
		serviceList = strings.Join(names, ", ")
	}
	serviceListAr := "خدماتك المحجوزة"
	if len(namesAr) > 0 {
		serviceListAr = strings.Join(namesAr, "، ")
	}

	message := fmt.Sprintf("Reminder: %s is scheduled to visit tomorrow for %s.", company, serviceList)
	messageAr := fmt.Sprintf("تذكير: %s سيزورك غداً من أجل %s.", companyAr, serviceListAr)
	return message, messageAr
}
