package middleware

import (
	"net/http"
	"strconv"
	"time"

	"crewlink_backend/internal/config"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// MonitoringAuth guards the metrics endpoint. In production a matching
// x-monitoring-key header is required; failed attempts are throttled per
// client IP so the key cannot be brute-forced. Outside production the
// endpoint is open.
func MonitoringAuth(cfg *config.Config, limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.IsProduction() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := ratelimit.HashKey(c.ClientIP())

		result, err := limiter.Check(ctx, key)
		if err != nil {
			// Limiter trouble never blocks monitoring.
			logger.CtxWithError(ctx, "rate limiter check failed, allowing attempt", err)
		} else {
			c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				c.Header("Retry-After", strconv.Itoa(result.RetryAfter(time.Now())))
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts, try again later"})
				return
			}
		}

		if c.GetHeader("x-monitoring-key") != cfg.Monitoring.Key {
			if err := limiter.RecordFailure(ctx, key); err != nil {
				logger.CtxWithError(ctx, "failed to record monitoring auth failure", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid monitoring key"})
			return
		}

		c.Next()
	}
}
