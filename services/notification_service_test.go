package services

import (
	"testing"

	"syana-server/models"
	"syana-server/types"
)

func seedNotifications(t *testing.T, svc *NotificationService, userID string, count int) []*models.Notification {
	t.Helper()
	out := make([]*models.Notification, 0, count)
	for i := 0; i < count; i++ {
		n, err := svc.Create(NotificationCreateParams{
			UserID:  userID,
			Message: "Your order has an update",
			Type:    models.NotificationTypeSayenly,
		})
		if err != nil {
			t.Fatalf("seed notification: %v", err)
		}
		out = append(out, n)
	}
	return out
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "")
	other := createTestUser(t, db, "")

	seedNotifications(t, svc, user.ID, 3)
	seedNotifications(t, svc, other.ID, 1)

	updated, err := svc.MarkAllRead(user.ID)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if updated != 3 {
		t.Fatalf("first pass updated %d, want 3", updated)
	}

	// Second pass touches nothing.
	updated, err = svc.MarkAllRead(user.ID)
	if err != nil {
		t.Fatalf("second mark all read: %v", err)
	}
	if updated != 0 {
		t.Fatalf("second pass updated %d, want 0", updated)
	}

	var unreadOther int64
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", other.ID, false).
		Count(&unreadOther).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if unreadOther != 1 {
		t.Fatal("another user's notifications must stay unread")
	}
}

func TestSetReadFlipsBothWays(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "")
	other := createTestUser(t, db, "")

	n := seedNotifications(t, svc, user.ID, 1)[0]

	if _, err := svc.SetRead(n.ID, user.ID, true); err != nil {
		t.Fatalf("set read: %v", err)
	}

	unread, err := svc.SetRead(n.ID, user.ID, false)
	if err != nil {
		t.Fatalf("set unread: %v", err)
	}
	if unread.Read {
		t.Fatal("notification should be unread after SetRead(false)")
	}

	var stored models.Notification
	if err := db.First(&stored, "id = ?", n.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Read {
		t.Fatal("stored notification should be unread after SetRead(false)")
	}

	if _, err := svc.SetRead(n.ID, other.ID, false); err == nil {
		t.Fatal("expected an error when flipping another user's notification")
	} else if appErr, ok := types.AsAppError(err); !ok || appErr.StatusCode != 404 {
		t.Fatalf("error = %v, want 404 AppError", err)
	}
}

func TestMarkReadEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "")
	other := createTestUser(t, db, "")

	n := seedNotifications(t, svc, user.ID, 1)[0]

	if _, err := svc.MarkRead(n.ID, other.ID); err == nil {
		t.Fatal("expected an error when flipping another user's notification")
	} else if appErr, ok := types.AsAppError(err); !ok || appErr.StatusCode != 404 {
		t.Fatalf("error = %v, want 404 AppError", err)
	}

	flipped, err := svc.MarkRead(n.ID, user.ID)
	if err != nil {
		t.Fatalf("owner mark read: %v", err)
	}
	if flipped.ID != n.ID {
		t.Fatalf("flipped wrong notification: %s", flipped.ID)
	}

	var stored models.Notification
	if err := db.First(&stored, "id = ?", n.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.Read {
		t.Fatal("notification should be read after MarkRead")
	}
}
