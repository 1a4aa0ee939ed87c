package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const maxTrackedClients = 10000

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewRateLimiter allows perMinute requests per client with a burst of the
// same size. perMinute <= 0 disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{clients: map[string]*rate.Limiter{}}
	if perMinute <= 0 {
		rl.limit = rate.Inf
		return rl
	}
	rl.limit = rate.Every(time.Minute / time.Duration(perMinute))
	rl.burst = perMinute
	return rl
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.clients[key]
	if !ok {
		if len(rl.clients) >= maxTrackedClients {
			rl.clients = map[string]*rate.Limiter{}
		}
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.clients[key] = l
	}
	return l
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// RateLimit answers 429 once the client's bucket is empty.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			AbortWithError(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}
