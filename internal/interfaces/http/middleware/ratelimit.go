package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter applies a per-client token bucket. Each client IP gets its
// own bucket holding `requests` tokens refilled over `interval`. The
// bucket-cleanup goroutine runs until ctx is cancelled.
func RateLimiter(ctx context.Context, requests int, interval time.Duration) gin.HandlerFunc {
	if requests <= 0 || interval <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	perRequest := interval / time.Duration(requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var mu sync.Mutex
	clients := make(map[string]*client)

	// Drop buckets idle for "interval" so the map cannot grow unbounded
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				mu.Lock()
				for ip, cl := range clients {
					if time.Since(cl.lastSeen) > interval {
						delete(clients, ip)
					}
				}
				mu.Unlock()
			}
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(rate.Every(perRequest), requests)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
