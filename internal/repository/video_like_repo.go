package repository

import (
	"context"
	"fmt"

	"utube/internal/model"

	"gorm.io/gorm"
)

const likeColumns = `id, created_at, username, video_id`

var likeList = ListQuery{
	Select:  "SELECT " + likeColumns + " FROM video_likes",
	OrderBy: "created_at, id",
	Limit:   500,
}

type VideoLikeRepository struct {
	db *gorm.DB
}

func NewVideoLikeRepository(db *gorm.DB) *VideoLikeRepository {
	return &VideoLikeRepository{db: db}
}

func (r *VideoLikeRepository) Create(ctx context.Context, username string, videoID int64) (*model.VideoLike, error) {
	var like model.VideoLike
	err := r.db.WithContext(ctx).Raw(
		"INSERT INTO video_likes (username, video_id) VALUES ($1, $2) RETURNING "+likeColumns,
		username, videoID,
	).Scan(&like).Error
	if err != nil {
		return nil, fmt.Errorf("insert video like: %w", err)
	}
	return &like, nil
}

// Exists 用户是否已点赞该视频
func (r *VideoLikeRepository) Exists(ctx context.Context, username string, videoID int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM video_likes WHERE username = $1 AND video_id = $2)", username, videoID,
	).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("check video like: %w", err)
	}
	return exists, nil
}

// List 按创建时间升序返回最多 500 条点赞
func (r *VideoLikeRepository) List(ctx context.Context, filter LikeFilter) ([]model.VideoLike, error) {
	var cond *Condition
	if filter != nil {
		cond = filter.likeCondition()
	}
	query, args := likeList.Build(cond)

	likes := make([]model.VideoLike, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&likes).Error; err != nil {
		return nil, fmt.Errorf("list video likes: %w", err)
	}
	return likes, nil
}

// IDsByVideo 视频的点赞 id
func (r *VideoLikeRepository) IDsByVideo(ctx context.Context, videoID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT id FROM video_likes WHERE video_id = $1 ORDER BY id", videoID,
	).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("list video like ids: %w", err)
	}
	return ids, nil
}

// Delete 取消点赞，返回是否有行被删除
func (r *VideoLikeRepository) Delete(ctx context.Context, username string, videoID int64) (bool, error) {
	result := r.db.WithContext(ctx).Exec(
		"DELETE FROM video_likes WHERE username = $1 AND video_id = $2", username, videoID,
	)
	if result.Error != nil {
		return false, fmt.Errorf("delete video like: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
