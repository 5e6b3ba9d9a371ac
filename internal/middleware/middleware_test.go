// ABOUTME: Tests for HTTP middleware
// ABOUTME: Covers chaining order, logging, CORS, method checks, metrics and rate limiting

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cyan1/Availability/internal/metrics"
	"github.com/cyan1/Availability/internal/models"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.HandlerFunc) http.HandlerFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}

	h := Chain(okHandler, mark("first"), mark("second"), mark("third"))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, ",") != "first,second,third" {
		t.Errorf("Expected first,second,third, got %v", order)
	}
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline injection", "/api/v1/availability\nforged entry", "/api/v1/availabilityforged entry"},
		{"carriage return", "/api/test\rmalicious", "/api/testmalicious"},
		{"tab", "/api/test\tvalue", "/api/testvalue"},
		{"delete char", "/api/\x7ftest", "/api/test"},
		{"clean path", "/api/v1/health", "/api/v1/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.input); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogRequest_SetsRequestID(t *testing.T) {
	h := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if id := rec.Header().Get("X-Request-ID"); len(id) != 16 {
		t.Errorf("Expected 16-char request ID, got %q", id)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped status to pass through, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{"allowed origin", []string{"https://app.example.com"}, "https://app.example.com", "https://app.example.com"},
		{"other origin", []string{"https://app.example.com"}, "https://evil.example.com", ""},
		{"wildcard", []string{"*"}, "https://any.example.com", "https://any.example.com"},
		{"none configured", nil, "https://app.example.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := CORS(tc.allowed)(okHandler)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/availability", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()

			h(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantHeader {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tc.wantHeader)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS([]string{"*"})(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/availability", nil))

	if called {
		t.Error("Expected preflight not to reach handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
}

func TestRequireMethod(t *testing.T) {
	h := RequireMethod(http.MethodPost)(okHandler)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Errorf("Expected Allow: POST, got %q", rec.Header().Get("Allow"))
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if resp.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected code 405 in body, got %d", resp.Code)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/v1/availability", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected POST to pass, got %d", rec.Code)
	}
}

func TestInstrument_CountsRequests(t *testing.T) {
	route := "/api/v1/test-instrument"
	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, route, "200"))

	h := Instrument(route)(okHandler)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, route+"?x=1", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, route, nil))

	after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, route, "200"))
	if after-before != 2 {
		t.Errorf("Expected 2 counted requests, got %v", after-before)
	}
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if ok, _ := rl.Allow("ip:1.2.3.4"); !ok {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	ok, retry := rl.Allow("ip:1.2.3.4")
	if ok {
		t.Error("Expected 4th request to be denied")
	}
	if retry <= 0 {
		t.Errorf("Expected positive retry-after, got %v", retry)
	}

	if ok, _ := rl.Allow("ip:5.6.7.8"); !ok {
		t.Error("Expected a different key to have its own window")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("k")
	if ok, _ := rl.Allow("k"); ok {
		t.Fatal("Expected second request in window to be denied")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.Allow("k"); !ok {
		t.Error("Expected request at window boundary to start a new window")
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	h := RateLimit(rl, ClientIP)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected first request 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(nil, ClientIP)(okHandler)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected disabled limiter to pass, got %d", rec.Code)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{"remote addr", "192.168.1.5:1234", "", "ip:192.168.1.5"},
		{"forwarded", "10.0.0.1:1234", "203.0.113.7, 10.0.0.1", "ip:203.0.113.7"},
		{"garbage forwarded", "10.0.0.1:1234", "not-an-ip", "ip:10.0.0.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if got := ClientIP(req); got != tc.want {
				t.Errorf("ClientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
