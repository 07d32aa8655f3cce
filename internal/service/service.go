package service

import (
	"context"
	"errors"

	"utube/internal/apperror"

	"gorm.io/gorm"
)

// EventPublisher 活动事件发布，失败由实现自行记录，不影响业务结果
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

// NopPublisher 未配置 Kafka 时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return NopPublisher{}
	}
	return p
}

// notFoundAs 把仓储层的 ErrRecordNotFound 换成给定的业务错误
func notFoundAs(err error, appErr *apperror.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErr
	}
	return err
}

// duplicateAs 并发插入撞上唯一约束时，返回与预检查相同的业务错误
func duplicateAs(err error, appErr *apperror.AppError) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appErr
	}
	return err
}

func userNotFound(username string) *apperror.AppError {
	return apperror.NotFound("No user with username: %s found", username)
}

func videoNotFound(id int64) *apperror.AppError {
	return apperror.NotFound("No video with id: %d found", id)
}
