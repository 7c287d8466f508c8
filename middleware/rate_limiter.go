package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"pawspa/config"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds per-IP token buckets used when Redis is unavailable.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

func requestsPerMinute() int {
	if config.AppConfig.MaxRequestsPerMin > 0 {
		return config.AppConfig.MaxRequestsPerMin
	}
	return 200
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string, perMinute int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		s.limiters[ip] = limiter
	}
	return limiter
}

// allowRedis counts the request in a fixed one-minute window shared across
// instances. The returned ok is false when the count could not be taken.
func allowRedis(c *gin.Context, ip string, perMinute int) (allowed, ok bool) {
	client := utils.RateCacheClient
	if client == nil {
		return false, false
	}

	ctx := c.Request.Context()
	key := fmt.Sprintf("rate:%s:%d", ip, time.Now().Unix()/60)
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, false
	}
	if count == 1 {
		client.Expire(ctx, key, time.Minute)
	}
	return count <= int64(perMinute), true
}

// RateLimitMiddleware limits requests per client IP. It counts in Redis so
// the limit holds across instances, falling back to an in-process token
// bucket when Redis is down.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)
		perMinute := requestsPerMinute()

		allowed, ok := allowRedis(c, ip, perMinute)
		if !ok {
			allowed = limiterStore.getLimiter(ip, perMinute).Allow()
		}
		if !allowed {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
