package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"woofer/internal/app/ratelimit"
	"woofer/internal/app/sanitize"
	"woofer/internal/app/service"
)

func newTestRouter() http.Handler {
	userService := service.NewUserService(nil)
	woofService := service.NewWoofService(nil, ratelimit.New(30*time.Second, 1), sanitize.New(nil), nil, nil)
	return NewRouter(userService, woofService)
}

func TestWelcomeRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Welcome to Woofer. Woof woof!") {
		t.Fatalf("unexpected welcome body: %s", rec.Body.String())
	}
}

func TestUnknownRouteResponds404(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORSHeadersPresent(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}
