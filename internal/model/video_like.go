package model

import "time"

// VideoLike 点赞模型，每个用户对同一视频最多一条
type VideoLike struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	Username  string    `gorm:"column:username;size:25;not null;uniqueIndex:uq_video_likes_user_video;comment:点赞用户" json:"username"`
	VideoID   int64     `gorm:"column:video_id;not null;uniqueIndex:uq_video_likes_user_video;index:idx_video_likes_video_id;comment:被点赞视频ID" json:"videoId"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;comment:点赞时间" json:"createdAt"`

	User  *User  `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	Video *Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}
