package limiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"frenchreborn/internal/pkg/limiter"
)

func TestIPRateLimiter_Middleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := limiter.NewIPRateLimiter(ctx, rate.Limit(0.001), 2)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("198.51.100.1:1000"))
	assert.Equal(t, http.StatusNoContent, call("198.51.100.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("198.51.100.1:1002"))

	// a different client has its own bucket
	assert.Equal(t, http.StatusNoContent, call("198.51.100.2:1000"))
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := limiter.NewIPRateLimiter(ctx, rate.Limit(1), 1)
	l.GetLimiter("a").Allow()
	l.GetLimiter("b")
	assert.Equal(t, 2, l.Len())

	// "b" never spent a token, "a" refills within a minute
	assert.Equal(t, 1, l.Sweep(time.Now()))
	assert.Equal(t, 1, l.Sweep(time.Now().Add(time.Minute)))
	assert.Equal(t, 0, l.Len())
}
