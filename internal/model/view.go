package model

import "time"

// View 播放记录，username 为空表示匿名播放
type View struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement;comment:播放记录ID" json:"id"`
	Username  *string   `gorm:"column:username;size:25;index:idx_views_username;comment:播放用户" json:"username"`
	VideoID   int64     `gorm:"column:video_id;not null;index:idx_views_video_id;comment:视频ID" json:"videoId"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP;comment:播放时间" json:"createdAt"`

	User  *User  `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:SET NULL" json:"-"`
	Video *Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (View) TableName() string {
	return "views"
}

// AllModels 参与 AutoMigrate 的模型，顺序即建表顺序
func AllModels() []any {
	return []any{&User{}, &Video{}, &Comment{}, &VideoLike{}, &Subscription{}, &View{}}
}
