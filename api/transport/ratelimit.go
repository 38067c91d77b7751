package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Truecroo/championship-scoring/logging"
)

// ClientRateLimiter keeps one token bucket per client IP. Buckets refill
// at requests/window with a burst of the full window allowance, which
// approximates a fixed request budget per window without a sliding log.
type ClientRateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*rate.Limiter
}

func NewClientRateLimiter(requests int, window time.Duration) *ClientRateLimiter {
	return &ClientRateLimiter{
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		clients: make(map[string]*rate.Limiter),
	}
}

func (l *ClientRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.clients[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.clients[ip] = limiter
	}
	return limiter
}

// Middleware rejects with 429 once the client's bucket is drained.
func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			logging.Log.Warnf("RATE: throttled %s on %s", c.ClientIP(), c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
