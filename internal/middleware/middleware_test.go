package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-worklog/internal/middleware"
	"voice-worklog/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/x", append(handlers, func(c *gin.Context) {
		sc, _ := middleware.GetScope(c)
		c.JSON(http.StatusOK, gin.H{
			"user":       sc.UserID,
			"request_id": log.RequestID(c.Request.Context()),
		})
	})...)
	return r
}

func TestAuth(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.Auth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.HeaderUserID, " ana ")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"user":"ana"`) {
		t.Errorf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)
	if w.Header().Get(middleware.HeaderRequestID) != "req-42" || !strings.Contains(w.Body.String(), `"request_id":"req-42"`) {
		t.Errorf("propagation failed: header=%q body=%s", w.Header().Get(middleware.HeaderRequestID), w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if len(w.Header().Get(middleware.HeaderRequestID)) != 36 {
		t.Errorf("expected generated uuid, got %q", w.Header().Get(middleware.HeaderRequestID))
	}
}

func TestRateLimit(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 1})
	r := newRouter(mw, mw.Auth(), mw.RateLimit())

	do := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(middleware.HeaderUserID, user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if got := do("ana"); got != http.StatusOK {
		t.Fatalf("first request: status = %d", got)
	}
	if got := do("ana"); got != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", got)
	}
	if got := do("bia"); got != http.StatusOK {
		t.Errorf("other user must have its own bucket, status = %d", got)
	}
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 1})
	r := newRouter(mw, mw.Auth(), mw.RateLimit())

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(middleware.HeaderUserID, "ana")
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1 for a shared bucket", got)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RateLimit())
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
}
