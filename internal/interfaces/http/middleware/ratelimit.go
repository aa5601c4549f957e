package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"redress/internal/shared/logger"
	"redress/internal/shared/utils"
)

// AttemptLimiter is satisfied by ratelimit.LoginLimiter.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ThrottleLogins caps attempts per client IP on the credential endpoints.
// Redis failures fail open: losing the limiter must not lock everyone out.
func ThrottleLogins(limiter AttemptLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("login rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
