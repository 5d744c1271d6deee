package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket tracks a fixed-window request count for one IP.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

type limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	max       int
	window    time.Duration
	nextSweep time.Time
}

// bucketFor returns the caller's bucket, sweeping expired ones at most once
// per window so memory stays bounded without a background goroutine.
func (l *limiter) bucketFor(ip string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.nextSweep) {
		for k, b := range l.buckets {
			b.mu.Lock()
			expired := now.After(b.resetAt)
			b.mu.Unlock()
			if expired {
				delete(l.buckets, k)
			}
		}
		l.nextSweep = now.Add(l.window)
	}

	if b, ok := l.buckets[ip]; ok {
		return b
	}
	b := &bucket{resetAt: now.Add(l.window)}
	l.buckets[ip] = b
	return b
}

// RateLimit limits each client IP to max requests per window.
// Example: middlewares.RateLimit(30, time.Minute) on the view route.
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	l := &limiter{
		buckets:   map[string]*bucket{},
		max:       max,
		window:    window,
		nextSweep: time.Now().Add(window),
	}

	return func(c *gin.Context) {
		if !l.bucketFor(c.ClientIP()).allow(l.max, l.window) {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
