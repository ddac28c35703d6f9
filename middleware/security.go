package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORSMiddleware configures cross-origin access for the client apps.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	})
}

// SecurityHeadersMiddleware sets baseline security headers.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}

// RateLimiter keeps one token bucket per client IP. Idle entries are swept
// lazily so the maps do not grow without bound.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	lastSeen  map[string]time.Time
	lastSweep time.Time
}

func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		burst:     burst,
		limiters:  make(map[string]*rate.Limiter),
		lastSeen:  make(map[string]time.Time),
		lastSweep: time.Now(),
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > time.Hour {
		for ip, seen := range rl.lastSeen {
			if now.Sub(seen) > time.Hour {
				delete(rl.limiters, ip)
				delete(rl.lastSeen, ip)
			}
		}
		rl.lastSweep = now
	}

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.lastSeen[key] = now

	return limiter.Allow()
}

// RateLimitMiddleware throttles requests per client IP: 10 per minute with a
// burst of 20.
func RateLimitMiddleware() gin.HandlerFunc {
	return rateLimit(NewRateLimiter(rate.Every(time.Minute/10), 20))
}

// AuthRateLimitMiddleware is the stricter limiter for the OTP endpoints,
// where every admitted request can cost a paid message send.
func AuthRateLimitMiddleware() gin.HandlerFunc {
	return rateLimit(NewRateLimiter(rate.Every(time.Minute/5), 5))
}

func rateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			log.Printf("🚫 Rate limit exceeded for %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"statusCode": http.StatusTooManyRequests,
				"message":    "ERR_TOO_MANY_REQUESTS",
			})
			return
		}
		c.Next()
	}
}

// Logger logs request timing after the handler chain completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
