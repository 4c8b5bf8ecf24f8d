package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window in-memory limiter keyed by user id when
// available, client IP otherwise.
type RateLimiter struct {
	requests map[string]*windowState
	mu       sync.Mutex
	limit    int
	window   time.Duration
}

type windowState struct {
	count     int
	resetTime time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*windowState),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.ClientIP()
		if userID, exists := c.Get("user_id"); exists {
			if uid, ok := userID.(string); ok && uid != "" {
				identifier = "user:" + uid
			}
		}

		if !rl.Allow(identifier) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate limit exceeded",
				"message": "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) Allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	state, exists := rl.requests[identifier]

	if !exists || now.After(state.resetTime) {
		rl.requests[identifier] = &windowState{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if state.count >= rl.limit {
		return false
	}

	state.count++
	return true
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, state := range rl.requests {
			if now.After(state.resetTime) {
				delete(rl.requests, key)
			}
		}
		rl.mu.Unlock()
	}
}
