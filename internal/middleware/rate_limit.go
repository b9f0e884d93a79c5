package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/account-api/internal/api/dto"
	"github.com/kingrain94/account-api/pkg/logger"
)

const rateLimitWindow = time.Minute

// incrWindow counts the hit and starts the window on the first one in a
// single round trip, so concurrent requests never observe the same count.
var incrWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type RateLimitMiddleware struct {
	redis  *redis.Client
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		logger: logger,
	}
}

// GlobalRateLimit implements a per-IP limit of requests per minute
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)

		current, err := incrWindow.Run(ctx, m.redis, []string{key}, int(rateLimitWindow.Seconds())).Int64()
		if err != nil {
			m.logger.Error("Redis error in global rate limiting", err)
			// fail open
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Reset", reset)

		if current > int64(limit) {
			c.Header("X-RateLimit-Remaining", "0")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Error{
				StatusCode: http.StatusTooManyRequests,
				Message:    "Rate limit exceeded",
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-current, 10))
		c.Next()
	}
}
