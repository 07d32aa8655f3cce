package middleware

import (
	"context"

	"utube/internal/api/response"
	"utube/internal/apperror"
	"utube/internal/metrics"
	"utube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Limiter 按 key 计数的限流器
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginThrottle 按客户端 IP 限制登录尝试次数，limiter 为 nil 时不限流
// Redis 不可用时放行
func LoginThrottle(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("Login limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			metrics.LoginThrottled.Inc()
			response.Error(c, apperror.TooManyRequests("Too many login attempts"))
			return
		}
		c.Next()
	}
}
