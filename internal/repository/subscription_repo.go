package repository

import (
	"context"
	"fmt"

	"utube/internal/model"

	"gorm.io/gorm"
)

const subscriptionColumns = `id, created_at, subscriber_username, subscribed_to_username`

// 列表带上被订阅用户的头像与背景，一次 JOIN 完成
var subscriptionList = ListQuery{
	Select: `SELECT s.id, s.created_at, s.subscriber_username, s.subscribed_to_username,
		u.avatar_image AS user_avatar, u.cover_image AS user_header
	FROM subscriptions s
	JOIN users u ON u.username = s.subscribed_to_username`,
	OrderBy: "s.created_at, s.id",
	Limit:   500,
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscriber, subscribedTo string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO subscriptions (subscriber_username, subscribed_to_username)
		VALUES ($1, $2)
		RETURNING `+subscriptionColumns,
		subscriber, subscribedTo,
	).Scan(&sub).Error
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, subscriber, subscribedTo string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS (
			SELECT 1 FROM subscriptions WHERE subscriber_username = $1 AND subscribed_to_username = $2
		)`,
		subscriber, subscribedTo,
	).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return exists, nil
}

// List 按创建时间升序返回最多 500 条订阅
func (r *SubscriptionRepository) List(ctx context.Context, filter SubscriptionFilter) ([]model.SubscriptionItem, error) {
	var cond *Condition
	if filter != nil {
		cond = filter.subscriptionCondition()
	}
	query, args := subscriptionList.Build(cond)

	items := make([]model.SubscriptionItem, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return items, nil
}

// SubscribedTo 用户订阅的用户名，按字母序
func (r *SubscriptionRepository) SubscribedTo(ctx context.Context, username string) ([]string, error) {
	names := make([]string, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT subscribed_to_username FROM subscriptions WHERE subscriber_username = $1 ORDER BY subscribed_to_username",
		username,
	).Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("list subscriptions of user: %w", err)
	}
	return names, nil
}

// Subscribers 订阅该用户的用户名，按字母序
func (r *SubscriptionRepository) Subscribers(ctx context.Context, username string) ([]string, error) {
	names := make([]string, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT subscriber_username FROM subscriptions WHERE subscribed_to_username = $1 ORDER BY subscriber_username",
		username,
	).Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("list subscribers of user: %w", err)
	}
	return names, nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, subscriber, subscribedTo string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM subscriptions WHERE subscriber_username = $1 AND subscribed_to_username = $2",
		subscriber, subscribedTo,
	)
	if result.Error != nil {
		return false, fmt.Errorf("delete subscription: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
