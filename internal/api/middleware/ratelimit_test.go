package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func doLimited(t *testing.T, e *echo.Echo, rl *RateLimiter, ip string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRateLimiter_EnforcesBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 2)

	if code := doLimited(t, e, rl, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("request 1: expected 200, got %d", code)
	}
	if code := doLimited(t, e, rl, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("request 2: expected 200, got %d", code)
	}
	if code := doLimited(t, e, rl, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("request 3: expected 429, got %d", code)
	}
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)

	if code := doLimited(t, e, rl, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("client A: expected 200, got %d", code)
	}
	if code := doLimited(t, e, rl, "10.0.0.2"); code != http.StatusOK {
		t.Fatalf("client B should have its own budget, got %d", code)
	}
	if code := doLimited(t, e, rl, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("client A: expected 429, got %d", code)
	}
}
