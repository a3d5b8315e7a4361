package ratelimit

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestMiddleware(t *testing.T) {
	limiter := New(0, 2)

	handler := limiter.Middleware(func(r *http.Request) (string, error) {
		key := r.Header.Get("X-Key")
		if key == "" {
			return "", errors.New("missing key")
		}

		return key, nil
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(key string) int {
		req := httptest.NewRequest(http.MethodPost, "/ui/search", nil)
		if key != "" {
			req.Header.Set("X-Key", key)
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res.Code
	}

	expected := []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}
	for idx, e := range expected {
		if g := call("session-a"); e != g {
			t.Errorf("call #%d: expected status '%v', got '%v'", idx, e, g)
		}
	}

	if e, g := http.StatusNoContent, call("session-b"); e != g {
		t.Errorf("other key: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusInternalServerError, call(""); e != g {
		t.Errorf("missing key: expected status '%v', got '%v'", e, g)
	}
}

func TestIdleKeysEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	limiter := New(0, 1, WithIdleTimeout(time.Minute), WithClock(clock))

	for idx := 0; idx < 20; idx++ {
		limiter.Allow(fmt.Sprintf("key-%d", idx))
	}

	if e, g := 20, limiter.Len(); e != g {
		t.Errorf("limiter.Len(): expected '%v', got '%v'", e, g)
	}

	now = now.Add(30 * time.Second)
	limiter.Allow("key-0")

	now = now.Add(45 * time.Second)
	limiter.Sweep()

	if e, g := 1, limiter.Len(); e != g {
		t.Errorf("limiter.Len(): expected '%v', got '%v'", e, g)
	}

	if limiter.Allow("key-0") {
		t.Errorf("limiter.Allow(\"key-0\"): expected the recently seen key to keep its exhausted limiter")
	}

	if !limiter.Allow("key-1") {
		t.Errorf("limiter.Allow(\"key-1\"): expected the evicted key to start with a fresh burst")
	}
}

func TestSweepOnAllow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	limiter := New(1, 1, WithIdleTimeout(time.Minute), WithClock(clock))

	for idx := 0; idx < 5; idx++ {
		limiter.Allow(fmt.Sprintf("key-%d", idx))
	}

	now = now.Add(2 * time.Minute)
	limiter.Allow("key-late")

	if e, g := 1, limiter.Len(); e != g {
		t.Errorf("limiter.Len(): expected '%v', got '%v'", e, g)
	}
}
