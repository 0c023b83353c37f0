package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// Quota is the number of attempts a client may make on one route per window.
type Quota struct {
	Attempts int
	Window   time.Duration
}

type window struct {
	attempts int
	resetAt  time.Time
}

// RateLimiter counts session attempts per route and client IP. Each route
// gets its own quota, so a burst of logins does not lock a client out of
// signup.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
	bypass  bool
}

// NewRateLimiter creates a rate limiter. A bypassed limiter lets every
// request through; the test environment runs with it.
func NewRateLimiter(bypass bool) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
		bypass:  bypass,
	}
}

// Limit returns a handler enforcing q on the route named route.
func (rl *RateLimiter) Limit(route string, q Quota) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.bypass || q.Attempts <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if wait, ok := rl.take(route+"|"+clientIP, q); !ok {
			slog.Warn("Session attempts exhausted", "route", route, "client_ip", clientIP, "retry_in", wait)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			abort(c, http.StatusTooManyRequests, "Too many "+route+" attempts. Please try again later.", domainerror.ErrCodeRateLimited)
			return
		}

		c.Next()
	}
}

// take spends one attempt from key's window. When the window is used up it
// reports how long until it reopens.
func (rl *RateLimiter) take(key string, q Quota) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &window{attempts: 1, resetAt: now.Add(q.Window)}
		return 0, true
	}
	if w.attempts >= q.Attempts {
		return w.resetAt.Sub(now), false
	}
	w.attempts++
	return 0, true
}

// Sweep drops windows that have reopened and returns how many were dropped.
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	n := 0
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := rl.Sweep(); n > 0 {
				slog.Debug("Rate limit windows swept", "count", n)
			}
		}
	}
}
