package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"syana-server/models"
)

func TestNotificationUpdateHonorsReadFlag(t *testing.T) {
	fx := newServerFixture(t)

	n := models.Notification{
		UserID:  fx.user.ID,
		Message: "Your order has an update",
		Type:    models.NotificationTypeSayenly,
		Read:    true,
	}
	if err := fx.db.Create(&n).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}

	w := doRequest(fx.engine, http.MethodPut, "/notification/update?id="+n.ID, fx.token, `{"read": false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		ID   string `json:"id"`
		Read bool   `json:"read"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Read {
		t.Fatal(`{"read": false} should leave the notification unread`)
	}

	var stored models.Notification
	if err := fx.db.First(&stored, "id = ?", n.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Read {
		t.Fatal("stored notification should be unread after the update")
	}

	// An empty body still defaults to marking the record read.
	w = doRequest(fx.engine, http.MethodPut, "/notification/update?id="+n.ID, fx.token, `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second update status = %d: %s", w.Code, w.Body.String())
	}
	if err := fx.db.First(&stored, "id = ?", n.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.Read {
		t.Fatal("update without a read flag should mark the record read")
	}
}
