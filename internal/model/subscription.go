package model

import "time"

// Subscription 用户订阅关系
type Subscription struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement;comment:订阅关系id" json:"id"`
	SubscriberUsername   string    `gorm:"column:subscriber_username;size:25;not null;uniqueIndex:uq_subscriptions_pair;comment:订阅者" json:"subscriberUsername"`
	SubscribedToUsername string    `gorm:"column:subscribed_to_username;size:25;not null;uniqueIndex:uq_subscriptions_pair;index:idx_subscriptions_subscribed_to;comment:被订阅者" json:"subscribedToUsername"`
	CreatedAt            time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;comment:订阅时间" json:"createdAt"`

	Subscriber   *User `gorm:"foreignKey:SubscriberUsername;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	SubscribedTo *User `gorm:"foreignKey:SubscribedToUsername;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// UserImages 被订阅用户的头像与背景
type UserImages struct {
	UserAvatar *string `gorm:"column:user_avatar" json:"userAvatar"`
	UserHeader *string `gorm:"column:user_header" json:"userHeader"`
}

// SubscriptionItem 订阅列表中的一行
type SubscriptionItem struct {
	ID                   int64      `gorm:"column:id" json:"id"`
	SubscriberUsername   string     `gorm:"column:subscriber_username" json:"subscriberUsername"`
	SubscribedToUsername string     `gorm:"column:subscribed_to_username" json:"subscribedToUsername"`
	CreatedAt            time.Time  `gorm:"column:created_at" json:"createdAt"`
	UserImages           UserImages `gorm:"embedded" json:"userImages"`
}
