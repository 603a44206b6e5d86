package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SlidingWindowLimiter caps requests per key over a rolling window.
type SlidingWindowLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	l := &SlidingWindowLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go l.cleanup()
	return l
}

func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	cutoff := now.Add(-l.window)
	var valid []time.Time
	for _, t := range l.requests[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	if len(valid) >= l.limit {
		l.requests[key] = valid
		return false
	}
	l.requests[key] = append(valid, now)
	return true
}

func (l *SlidingWindowLimiter) cleanup() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for k, times := range l.requests {
			var valid []time.Time
			for _, t := range times {
				if t.After(cutoff) {
					valid = append(valid, t)
				}
			}
			if len(valid) == 0 {
				delete(l.requests, k)
			} else {
				l.requests[k] = valid
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit limits by session user when authenticated, by client IP otherwise.
func RateLimit(limiter *SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if id := GetUserID(c); id != uuid.Nil {
			key = id.String()
		}
		if !limiter.Allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
