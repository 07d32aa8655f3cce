package response

import (
	"errors"
	"net/http"

	"utube/internal/apperror"
	"utube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorInfo 错误详情，Message 为字符串或字符串列表（校验失败时）
type ErrorInfo struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// OK 200，body 为 {key: data}
func OK(c *gin.Context, key string, data any) {
	c.JSON(http.StatusOK, gin.H{key: data})
}

// Created 201，body 为 {key: data}
func Created(c *gin.Context, key string, data any) {
	c.JSON(http.StatusCreated, gin.H{key: data})
}

// JSON 多字段响应
func JSON(c *gin.Context, status int, body gin.H) {
	c.JSON(status, body)
}

func Fail(c *gin.Context, status int, message any) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorInfo{Message: message, Status: status},
	})
}

func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "Unauthorized")
}

func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, "Not Found")
}

// Error 把业务错误映射为状态码，未知错误记录日志并返回 500
func Error(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		var message any = appErr.Message
		if len(appErr.Details) > 0 {
			message = appErr.Details
		}
		Fail(c, StatusOf(appErr), message)
		return
	}

	logger.Error("Unhandled error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("requestID")),
		zap.Error(err),
	)

	message := "Internal Server Error"
	if gin.Mode() == gin.DebugMode {
		message = err.Error()
	}
	Fail(c, http.StatusInternalServerError, message)
}

// StatusOf 错误类别对应的 HTTP 状态码
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
