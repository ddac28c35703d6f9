package routes

import (
	"net/http"
	"testing"
)

func TestAuthEndpointsAreRateLimited(t *testing.T) {
	fx := newServerFixture(t)

	// Every request from the httptest client shares a RemoteAddr, so the
	// auth limiter's burst of 5 drains after five calls.
	for i := 0; i < 5; i++ {
		w := doRequest(fx.engine, http.MethodPost, "/auth/send-otp", "", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("request %d: expected 400 for empty payload, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doRequest(fx.engine, http.MethodPost, "/auth/send-otp", "", `{}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the burst is spent, got %d: %s", w.Code, w.Body.String())
	}
	status, message := decodeError(t, w)
	if status != http.StatusTooManyRequests || message != "ERR_TOO_MANY_REQUESTS" {
		t.Fatalf("unexpected throttle payload: %d %s", status, message)
	}
}
