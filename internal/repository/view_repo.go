package repository

import (
	"context"
	"fmt"

	"utube/internal/model"

	"gorm.io/gorm"
)

const viewColumns = `id, created_at, username, video_id`

var viewList = ListQuery{
	Select:  "SELECT " + viewColumns + " FROM views",
	OrderBy: "created_at, id",
	Limit:   500,
}

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Create 记录一次播放，username 为 nil 表示匿名
func (r *ViewRepository) Create(ctx context.Context, username *string, videoID int64) (*model.View, error) {
	var view model.View
	err := r.db.WithContext(ctx).Raw(
		"INSERT INTO views (username, video_id) VALUES ($1, $2) RETURNING "+viewColumns,
		username, videoID,
	).Scan(&view).Error
	if err != nil {
		return nil, fmt.Errorf("insert view: %w", err)
	}
	return &view, nil
}

// List 按创建时间升序返回最多 500 条播放记录
func (r *ViewRepository) List(ctx context.Context, filter ViewFilter) ([]model.View, error) {
	var cond *Condition
	if filter != nil {
		cond = filter.viewCondition()
	}
	query, args := viewList.Build(cond)

	views := make([]model.View, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	return views, nil
}

// IDsByVideo 视频的播放记录 id
func (r *ViewRepository) IDsByVideo(ctx context.Context, videoID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT id FROM views WHERE video_id = $1 ORDER BY id", videoID,
	).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("list view ids: %w", err)
	}
	return ids, nil
}
