package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/dto"
	"github.com/guttosm/container-order-service/internal/i18n"
)

const (
	limiterShards = 16
	sweepInterval = time.Minute
)

// fixedWindow counts hits for one key inside the current window.
type fixedWindow struct {
	start time.Time
	hits  int
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*fixedWindow
}

// RateLimiter allows up to limit hits per key within each window. Keys are
// spread over shards so unrelated clients do not contend on one mutex.
type RateLimiter struct {
	shards [limiterShards]limiterShard
	limit  int
	window time.Duration
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter and its background sweep. Call Stop to
// release the sweep goroutine.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(limit, window, time.Now)
	go rl.sweepLoop()
	return rl
}

func newRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{
		limit:  max(limit, 1),
		window: window,
		now:    now,
		stop:   make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i].windows = make(map[string]*fixedWindow)
	}
	return rl
}

func (rl *RateLimiter) shardFor(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &rl.shards[h.Sum32()%limiterShards]
}

// take records a hit for key and reports whether it fits the window, plus
// how many hits are left.
func (rl *RateLimiter) take(key string) (bool, int) {
	s := rl.shardFor(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= rl.window {
		w = &fixedWindow{start: now}
		s.windows[key] = w
	}
	if w.hits >= rl.limit {
		return false, 0
	}
	w.hits++
	return true, rl.limit - w.hits
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.middleware(clientKey)
}

// SessionRateLimit limits requests per order session. Routes without an :id
// parameter are keyed by client IP.
func (rl *RateLimiter) SessionRateLimit() gin.HandlerFunc {
	return rl.middleware(sessionKey)
}

func (rl *RateLimiter) middleware(keyOf func(*gin.Context) string) gin.HandlerFunc {
	limit := strconv.Itoa(rl.limit)
	retryAfter := strconv.Itoa(int(math.Ceil(rl.window.Seconds())))

	return func(c *gin.Context) {
		ok, left := rl.take(keyOf(c))
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(left))
		if ok {
			c.Next()
			return
		}

		c.Header("Retry-After", retryAfter)
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, i18n.Message(c, i18n.ErrKeyRateLimitExceeded)).
				WithRequestID(GetRequestID(c)))
	}
}

func clientKey(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

func sessionKey(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return "session:" + id
	}
	return clientKey(c)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

// sweep drops windows that have been closed for at least one full window.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-2 * rl.window)
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		for key, w := range s.windows {
			if w.start.Before(cutoff) {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}

// tracked returns the number of keys currently held.
func (rl *RateLimiter) tracked() int {
	n := 0
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		n += len(s.windows)
		s.mu.Unlock()
	}
	return n
}

// Stop ends the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}
