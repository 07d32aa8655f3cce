package model

import "time"

// Video 视频模型
type Video struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement;comment:视频标识" json:"id"`
	Title          string    `gorm:"column:title;size:200;not null;comment:视频标题" json:"title"`
	URL            string    `gorm:"column:url;type:text;not null;uniqueIndex:uq_videos_url;comment:视频地址" json:"url"`
	Description    string    `gorm:"column:description;type:text;not null;default:'';comment:视频描述" json:"description"`
	ThumbnailImage *string   `gorm:"column:thumbnail_image;type:text;comment:封面" json:"thumbnailImage"`
	Username       string    `gorm:"column:username;size:25;not null;index:idx_videos_username;comment:上传者" json:"username"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;index:idx_videos_created_at;comment:创建时间" json:"createdAt"`

	// 关联关系，仅用于建表时生成外键
	User *User `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoDetail 视频详情，附带点赞 id、播放 id 与评论（新的在前）
type VideoDetail struct {
	Video
	Likes    []int64   `json:"likes"`
	Views    []int64   `json:"views"`
	Comments []Comment `json:"comments"`
}
