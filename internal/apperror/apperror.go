package apperror

import (
	"errors"
	"fmt"
)

// 错误类别，通过 errors.Is 判断
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests")
)

// AppError 业务错误，Kind 为上面的类别之一，Message 原样返回给客户端
type AppError struct {
	Kind    error
	Message string
	Details []string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

// BadRequest 400
func BadRequest(format string, args ...any) *AppError {
	return newError(ErrBadRequest, format, args...)
}

// Unauthorized 401
func Unauthorized(format string, args ...any) *AppError {
	return newError(ErrUnauthorized, format, args...)
}

// NotFound 404
func NotFound(format string, args ...any) *AppError {
	return newError(ErrNotFound, format, args...)
}

// TooManyRequests 429
func TooManyRequests(format string, args ...any) *AppError {
	return newError(ErrTooManyRequests, format, args...)
}

// Invalid 请求体校验失败，Details 为逐条的字段错误
func Invalid(details []string) *AppError {
	return &AppError{Kind: ErrBadRequest, Message: "Bad Request", Details: details}
}

// As 取出错误链中的 AppError
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func newError(kind error, format string, args ...any) *AppError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &AppError{Kind: kind, Message: msg}
}
