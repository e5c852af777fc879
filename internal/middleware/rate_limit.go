package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-worklog/pkg/response"
)

// RateLimit throttles per user, or per client IP before Auth ran.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}
		key := "ip:" + c.ClientIP()
		if sc, ok := GetScope(c); ok && sc.UserID != "" {
			key = "user:" + sc.UserID
		}
		if !mw.limiter.Allow(key) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key, evicting idle keys.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

// limiterFor returns the bucket for key, creating it once.
func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
