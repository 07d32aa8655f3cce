package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"strings"

	"utube/internal/api/response"
	"utube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 捕获 panic 并返回统一的 500 响应；客户端断开导致的写失败只记录不响应
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if brokenPipe(rec) {
				logger.Warn("Client connection closed",
					zap.Any("error", rec),
					zap.String("request_id", c.GetString(ContextKeyRequestID)),
				)
				c.Abort()
				return
			}

			logger.Error("Panic recovered",
				zap.Any("error", rec),
				zap.String("request_id", c.GetString(ContextKeyRequestID)),
				zap.String("method", c.Request.Method),
				zap.String("route", c.FullPath()),
				zap.Stack("stack"),
			)
			response.Fail(c, http.StatusInternalServerError, "Internal Server Error")
		}()

		c.Next()
	}
}

func brokenPipe(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !errors.As(opErr, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
