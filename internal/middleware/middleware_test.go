package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"checklist-sync/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	// Same as the server: no proxy is trusted unless configured.
	_ = r.SetTrustedProxies(nil)
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw.RequestID())

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Errorf("expected propagated id, got %q", got)
		}
	})
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}{
		{"Disabled", "", "", http.StatusOK},
		{"Valid Key", "secret", "secret", http.StatusOK},
		{"Missing Key", "secret", "", http.StatusUnauthorized},
		{"Wrong Key", "secret", "nope", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(log.NewNop(), Config{APIKey: tt.apiKey})
			r := newEngine(mw.Auth())

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAPIKey, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		mw := New(log.NewNop(), Config{})
		r := newEngine(mw.RateLimit())
		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d throttled while disabled", i)
			}
		}
	})

	t.Run("Burst Exhausted", func(t *testing.T) {
		// 10 per minute gives a burst of one request.
		mw := New(log.NewNop(), Config{RequestsPerMin: 10})
		r := newEngine(mw.RateLimit())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("first request should pass, got %d", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})

	t.Run("Spoofed Forwarded For", func(t *testing.T) {
		mw := New(log.NewNop(), Config{RequestsPerMin: 10})
		r := newEngine(mw.RateLimit())

		allowed := 0
		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
			req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				allowed++
			}
		}
		if allowed != 1 {
			t.Errorf("forged forwarding headers must not open new buckets: %d requests allowed", allowed)
		}
	})

	t.Run("Per Client", func(t *testing.T) {
		rl := newRateLimiter(10)
		if !rl.Allow("a") || rl.Allow("a") {
			t.Error("client a should get exactly one request")
		}
		if !rl.Allow("b") {
			t.Error("client b has its own bucket")
		}
	})
}
