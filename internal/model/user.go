package model

import "time"

// User 用户模型，username 为主键
type User struct {
	Username    string    `gorm:"column:username;primaryKey;size:25;comment:用户名" json:"username"`
	Password    string    `gorm:"column:password;not null;comment:密码哈希" json:"-"` // 任何读路径都不返回密码
	FirstName   string    `gorm:"column:first_name;size:50;not null;comment:名" json:"firstName"`
	LastName    string    `gorm:"column:last_name;size:50;not null;comment:姓" json:"lastName"`
	Email       string    `gorm:"column:email;size:254;not null;comment:邮箱" json:"email"`
	AvatarImage *string   `gorm:"column:avatar_image;type:text;comment:头像" json:"avatarImage"`
	CoverImage  *string   `gorm:"column:cover_image;type:text;comment:主页背景" json:"coverImage"`
	About       *string   `gorm:"column:about;type:text;comment:简介" json:"about"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;index:idx_users_created_at;comment:注册时间" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// UserDetail 用户详情，附带视频 id 与双向订阅关系
type UserDetail struct {
	User
	Videos        []int64  `json:"videos"`
	Subscriptions []string `json:"subscriptions"`
	Subscribers   []string `json:"subscribers"`
}
