package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"contact-back/internal/api/http/handler"
	"contact-back/internal/config"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimit enforces the per-client request ceiling over a rolling
// window, backed by a Redis sorted set of request timestamps keyed by
// client IP. Fails open when Redis is unreachable.
func RateLimit(log *zap.Logger, rdb *goredis.Client, cfg config.RateLimit) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		now := time.Now()
		windowStart := now.Add(-cfg.Window)

		ctx := c.Request.Context()

		pipe := rdb.TxPipeline()
		pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
		count := pipe.ZCard(ctx, key)

		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()

			return
		}

		if count.Val() >= cfg.MaxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, handler.Failure(handler.MsgTooManyReqs))
			return
		}

		pipe = rdb.TxPipeline()
		pipe.ZAdd(ctx, key, goredis.Z{
			Score:  float64(now.UnixNano()),
			Member: now.UnixNano(),
		})
		pipe.Expire(ctx, key, cfg.Window)

		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn("failed to record rate limit hit", zap.Error(err))
		}

		c.Next()
	}
}
