package handlers

import (
	"fmt"
	"net/http"
	"time"

	"shop_api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	loginRateLimit  = 5
	loginRateWindow = time.Minute
)

// LoginRateLimiter throttles login attempts per client IP using a redis
// counter with a rolling one-minute key.
type LoginRateLimiter struct {
	client *redis.Client
	log    *logger.Logger
	limit  int64
	window time.Duration
}

func NewLoginRateLimiter(client *redis.Client, log *logger.Logger) *LoginRateLimiter {
	return &LoginRateLimiter{
		client: client,
		log:    log,
		limit:  loginRateLimit,
		window: loginRateWindow,
	}
}

func attemptsKey(clientIP string) string {
	return fmt.Sprintf("login_attempts:%s", clientIP)
}

// Middleware returns the gin handler enforcing the limit. A nil limiter (no
// redis configured) is a no-op. Redis failures fail open: rejecting all
// logins because the counter store is down would be the worse outage.
func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := attemptsKey(c.ClientIP())

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			if l.log != nil {
				l.log.Warnw("login_rate_limit_unavailable", "err", err)
			}
			c.Next()
			return
		}
		if count == 1 {
			// First attempt in the window starts the clock. A counter
			// without a TTL would throttle this IP forever, so if the
			// clock cannot start the window is discarded instead.
			if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
				if l.log != nil {
					l.log.Warnw("login_rate_limit_unavailable", "err", err)
				}
				l.client.Del(ctx, key)
				c.Next()
				return
			}
		}
		if count > l.limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many login attempts. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
