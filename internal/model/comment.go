package model

import "time"

// Comment 评论模型
type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement;comment:评论ID" json:"id"`
	Username  string    `gorm:"column:username;size:25;not null;index:idx_comments_username;comment:评论用户" json:"username"`
	VideoID   int64     `gorm:"column:video_id;not null;index:idx_comments_video_id;comment:被评论视频ID" json:"videoId"`
	Content   string    `gorm:"column:content;type:text;not null;comment:评论内容" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;index:idx_comments_created_at;comment:评论时间" json:"createdAt"`

	User  *User  `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	Video *Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
