package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"golang.org/x/time/rate"
)

// limiterEntry holds a rate limiter with last used timestamp
type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// windowEntry counts attempts inside a fixed window starting at start
type windowEntry struct {
	start time.Time
	count int
}

// keyRateLimiter manages per-key rate limiters with automatic cleanup.
// Keys hold either a token bucket or a fixed-window counter.
type keyRateLimiter struct {
	limiters map[string]*limiterEntry
	windows  map[string]*windowEntry
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newKeyRateLimiter(limit rate.Limit, burst int, idle time.Duration) *keyRateLimiter {
	k := &keyRateLimiter{
		limiters: make(map[string]*limiterEntry),
		windows:  make(map[string]*windowEntry),
		limit:    limit,
		burst:    burst,
		idle:     idle,
		stopCh:   make(chan struct{}),
	}
	go k.cleanupLoop()
	return k
}

func (k *keyRateLimiter) getLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	if entry, ok := k.limiters[key]; ok {
		entry.lastUsed = time.Now()
		return entry.limiter
	}
	limiter := rate.NewLimiter(k.limit, k.burst)
	k.limiters[key] = &limiterEntry{limiter: limiter, lastUsed: time.Now()}
	return limiter
}

// take charges one attempt to key's fixed window, opening a new window
// when the current one has expired. It returns the window start and
// whether the attempt fits under max.
func (k *keyRateLimiter) take(key string, now time.Time, window time.Duration, max int) (time.Time, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, ok := k.windows[key]
	if !ok || now.Sub(entry.start) >= window {
		entry = &windowEntry{start: now}
		k.windows[key] = entry
	}
	if entry.count >= max {
		return entry.start, false
	}
	entry.count++
	return entry.start, true
}

// refund returns an attempt taken in the window starting at start. A window
// that has since rolled over is left alone.
func (k *keyRateLimiter) refund(key string, start time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if entry, ok := k.windows[key]; ok && entry.start.Equal(start) && entry.count > 0 {
		entry.count--
	}
}

// cleanupLoop removes stale entries every 5 minutes
func (k *keyRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			k.cleanup(time.Now())
		case <-k.stopCh:
			return
		}
	}
}

// cleanup drops entries idle for longer than a full refill. A dropped
// entry is indistinguishable from a fresh, full bucket.
func (k *keyRateLimiter) cleanup(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := now.Add(-k.idle)
	for key, entry := range k.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(k.limiters, key)
		}
	}
	for key, entry := range k.windows {
		if entry.start.Before(cutoff) {
			delete(k.windows, key)
		}
	}
}

func (k *keyRateLimiter) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters) + len(k.windows)
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (k *keyRateLimiter) Stop() {
	k.stopOnce.Do(func() { close(k.stopCh) })
}

// RateLimitConfig defines a per-IP limiter: Max requests per Window
type RateLimitConfig struct {
	Window  time.Duration
	Max     int
	Message string
	// OnlyFailures switches to a fixed window where every attempt is charged
	// up front and refunded when the response is a success (< 400), as for
	// login attempts
	OnlyFailures bool
}

// IPRateLimiter enforces a RateLimitConfig per client IP
type IPRateLimiter struct {
	keys       *keyRateLimiter
	cfg        RateLimitConfig
	retryAfter string
}

// NewIPRateLimiter creates a limiter and starts its cleanup goroutine. Call Stop on shutdown.
func NewIPRateLimiter(cfg RateLimitConfig) *IPRateLimiter {
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	if cfg.Max <= 0 {
		cfg.Max = 100
	}
	if cfg.Message == "" {
		cfg.Message = apperrors.ErrTooManyRequests.Message
	}

	refill := cfg.Window / time.Duration(cfg.Max)
	idle := cfg.Window
	if idle < 10*time.Minute {
		idle = 10 * time.Minute
	}

	return &IPRateLimiter{
		keys:       newKeyRateLimiter(rate.Every(refill), cfg.Max, idle),
		cfg:        cfg,
		retryAfter: retryAfterSeconds(refill),
	}
}

// PublicRateLimiter guards anonymous write endpoints
func PublicRateLimiter(window time.Duration, max int) *IPRateLimiter {
	return NewIPRateLimiter(RateLimitConfig{
		Window:  window,
		Max:     max,
		Message: "Too many requests from this IP, please try again later.",
	})
}

// LoginRateLimiter guards the login endpoint. Only failed attempts count.
func LoginRateLimiter(window time.Duration, max int) *IPRateLimiter {
	return NewIPRateLimiter(RateLimitConfig{
		Window:       window,
		Max:          max,
		Message:      "Too many login attempts from this IP, please try again after 15 minutes.",
		OnlyFailures: true,
	})
}

// Stop terminates the cleanup goroutine
func (l *IPRateLimiter) Stop() {
	l.keys.Stop()
}

// Middleware returns the gin handler enforcing the limit
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if l.cfg.OnlyFailures {
			now := time.Now()
			start, ok := l.keys.take(ip, now, l.cfg.Window, l.cfg.Max)
			if !ok {
				l.reject(c, retryAfterSeconds(start.Add(l.cfg.Window).Sub(now)))
				return
			}
			c.Next()
			if !failed(c) {
				l.keys.refund(ip, start)
			}
			return
		}

		if !l.keys.getLimiter(ip).Allow() {
			l.reject(c, l.retryAfter)
			return
		}
		c.Next()
	}
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// failed reports whether the request ended in an error, written or pending
// for ErrorHandler
func failed(c *gin.Context) bool {
	return len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest
}

func (l *IPRateLimiter) reject(c *gin.Context, retryAfter string) {
	c.Header("Retry-After", retryAfter)
	_ = c.Error(apperrors.ErrTooManyRequests.WithMessage(l.cfg.Message))
	c.Abort()
}
