package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an IP's limiter survives without traffic.
const idleLimiterTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters  map[string]*ipLimiter
	perMinute int
	lastSweep time.Time
	mu        sync.Mutex
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:  make(map[string]*ipLimiter),
		perMinute: perMinute,
		lastSweep: time.Now(),
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > idleLimiterTTL {
		for k, l := range s.limiters {
			if now.Sub(l.lastSeen) > idleLimiterTTL {
				delete(s.limiters, k)
			}
		}
		s.lastSweep = now
	}

	l, exists := s.limiters[ip]
	if !exists {
		// perMinute requests per minute, bursting up to the full minute's allowance.
		l = &ipLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute)}
		s.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter
}

// RateLimitMiddleware limits requests per IP address. perMinute <= 0 disables limiting.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := newRateLimiterStore(perMinute)
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.getLimiter(ip, time.Now()).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
