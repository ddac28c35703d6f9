package services

import (
	"encoding/json"
	"log"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

const (
	appTitle   = "SYANA"
	appTitleAr = "صيانة"
)

type pushJob struct {
	userID  string
	title   string
	titleAr string
	body    string
	bodyAr  string
	data    map[string]string
}

// Notifier persists notification records and attempts push delivery. The
// database insert is synchronous; delivery goes through a buffered queue
// drained by a single worker, so a push failure never blocks a caller.
// Failed deliveries land in the dead-letter log only.
type Notifier struct {
	db    *gorm.DB
	push  PushSender
	queue chan pushJob

	wg     sync.WaitGroup
	closed sync.Once
}

func NewNotifier(db *gorm.DB, push PushSender) *Notifier {
	n := &Notifier{
		db:    db,
		push:  push,
		queue: make(chan pushJob, 100),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// Close drains pending deliveries and stops the worker.
func (n *Notifier) Close() {
	n.closed.Do(func() {
		close(n.queue)
	})
	n.wg.Wait()
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for job := range n.queue {
		if err := n.deliver(job); err != nil {
			log.Printf("💀 push delivery dead-lettered for user %s: %v", job.userID, err)
		}
	}
}

// SendSystem creates a SAYENLY notification and queues its push delivery.
func (n *Notifier) SendSystem(userID, message, messageAr string, route map[string]any) (*models.Notification, error) {
	notification, err := n.create(userID, message, messageAr, models.NotificationTypeSayenly, route)
	if err != nil {
		return nil, err
	}
	n.enqueue(pushJob{userID: userID, title: appTitle, titleAr: appTitleAr, body: message, bodyAr: messageAr, data: routeData(route)})
	return notification, nil
}

// SendReminder creates a REMINDER notification routed to the bookings screen.
func (n *Notifier) SendReminder(userID, message, messageAr string) (*models.Notification, error) {
	route := map[string]any{"path": "bookings"}
	notification, err := n.create(userID, message, messageAr, models.NotificationTypeReminder, route)
	if err != nil {
		return nil, err
	}
	n.enqueue(pushJob{userID: userID, title: "SYANA Reminder", titleAr: "تذكير من صيانة", body: message, bodyAr: messageAr, data: routeData(route)})
	return notification, nil
}

// SendQuote creates a QUOTE notification routed to the orders screen. An
// insert failure is swallowed (logged, nil returned) so the order update
// write path is never blocked by notification trouble.
func (n *Notifier) SendQuote(userID, message, messageAr string) *models.Notification {
	route := map[string]any{"path": "orders"}
	notification, err := n.create(userID, message, messageAr, models.NotificationTypeQuote, route)
	if err != nil {
		log.Printf("❌ Failed to create quote notification for user %s: %v", userID, err)
		return nil
	}
	n.enqueue(pushJob{userID: userID, title: "New Quote", titleAr: "تسعيرة جديدة", body: message, bodyAr: messageAr, data: routeData(route)})
	return notification
}

func (n *Notifier) create(userID, message, messageAr string, kind models.NotificationType, route map[string]any) (*models.Notification, error) {
	notification := models.Notification{
		UserID:    userID,
		Message:   message,
		MessageAr: messageAr,
		Type:      kind,
		Read:      false,
	}
	if route != nil {
		raw, err := json.Marshal(route)
		if err != nil {
			return nil, types.Internal("ERR_NOTIFICATION_ROUTE")
		}
		notification.Route = datatypes.JSON(raw)
	}

	if err := n.db.Create(&notification).Error; err != nil {
		return nil, types.Internal("ERR_NOTIFICATION_CREATE")
	}
	return &notification, nil
}

func (n *Notifier) enqueue(job pushJob) {
	select {
	case n.queue <- job:
	default:
		log.Printf("⚠️ push queue full, dropping delivery for user %s", job.userID)
	}
}

// deliver resolves the user's device tokens and language and sends the push.
// The multi-device token array takes precedence; the legacy single token is
// the fallback. A user without tokens is logged and skipped.
func (n *Notifier) deliver(job pushJob) error {
	var user models.User
	if err := n.db.Select("id", "settings").First(&user, "id = ?", job.userID).Error; err != nil {
		return err
	}

	settings, err := user.DecodeSettings()
	if err != nil {
		return err
	}

	title, body := job.title, job.body
	if settings.Lang == "ar" {
		title, body = job.titleAr, job.bodyAr
	}

	tokens := make([]string, 0, len(settings.FCMTokens))
	for _, entry := range settings.FCMTokens {
		if entry.Token != "" {
			tokens = append(tokens, entry.Token)
		}
	}
	if len(tokens) == 0 && settings.FCMToken != "" {
		tokens = append(tokens, settings.FCMToken)
	}

	if len(tokens) == 0 {
		log.Printf("⚠️ No device token for user %s, notification stored without push", job.userID)
		return nil
	}

	var lastErr error
	sent := 0
	for _, token := range tokens {
		if err := n.push.Send(token, title, body, job.data); err != nil {
			lastErr = err
			continue
		}
		sent++
	}

	log.Printf("📱 push delivery for user %s: %d/%d sent", job.userID, sent, len(tokens))
	if sent == 0 {
		return lastErr
	}
	return nil
}

func routeData(route map[string]any) map[string]string {
	if route == nil {
		return nil
	}
	data := make(map[string]string, len(route))
	for k, v := range route {
		if s, ok := v.(string); ok {
			data[k] = s
		}
	}
	return data
}
