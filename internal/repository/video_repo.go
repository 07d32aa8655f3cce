package repository

import (
	"context"
	"fmt"

	"utube/internal/model"

	"gorm.io/gorm"
)

const videoColumns = `id, created_at, title, url, description, username, thumbnail_image`

var videoList = ListQuery{
	Select:  "SELECT " + videoColumns + " FROM videos",
	OrderBy: "created_at, id",
	Limit:   250,
}

// VideoColumns 视频可更新字段到列名的映射
var VideoColumns = map[string]string{
	"thumbnailImage": "thumbnail_image",
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	var created model.Video
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO videos (title, url, description, username)
		VALUES ($1, $2, $3, $4)
		RETURNING `+videoColumns,
		video.Title, video.URL, video.Description, video.Username,
	).Scan(&created).Error
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return &created, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	result := r.db.WithContext(ctx).Raw(
		"SELECT "+videoColumns+" FROM videos WHERE id = $1", id,
	).Scan(&video)
	if result.Error != nil {
		return nil, fmt.Errorf("select video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &video, nil
}

// Exists 视频是否存在
func (r *VideoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM videos WHERE id = $1)", id,
	).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("check video: %w", err)
	}
	return exists, nil
}

// URLExists 视频地址是否已被占用
func (r *VideoRepository) URLExists(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM videos WHERE url = $1)", url,
	).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("check video url: %w", err)
	}
	return exists, nil
}

// Owner 返回视频上传者
func (r *VideoRepository) Owner(ctx context.Context, id int64) (string, error) {
	var username string
	result := r.db.WithContext(ctx).Raw("SELECT username FROM videos WHERE id = $1", id).Scan(&username)
	if result.Error != nil {
		return "", fmt.Errorf("select video owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return username, nil
}

// List 按创建时间升序返回最多 250 个视频，filter 为 nil 时不过滤
func (r *VideoRepository) List(ctx context.Context, filter VideoFilter) ([]model.Video, error) {
	var cond *Condition
	if filter != nil {
		cond = filter.videoCondition()
	}
	query, args := videoList.Build(cond)

	videos := make([]model.Video, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&videos).Error; err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// ListByIDs 按给定 id 顺序返回视频，不存在的 id 被忽略
func (r *VideoRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}
	videos := make([]model.Video, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+videoColumns+" FROM videos WHERE id = ANY($1) ORDER BY array_position($1, id)", ids,
	).Scan(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("list videos by ids: %w", err)
	}
	return videos, nil
}

// IDsByUser 用户上传的视频 id，按创建时间升序
func (r *VideoRepository) IDsByUser(ctx context.Context, username string) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT id FROM videos WHERE username = $1 ORDER BY created_at, id", username,
	).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("list user video ids: %w", err)
	}
	return ids, nil
}

func (r *VideoRepository) Update(ctx context.Context, id int64, changes Changes) (*model.Video, error) {
	set, err := BuildPartialUpdate(changes, VideoColumns)
	if err != nil {
		return nil, err
	}

	var video model.Video
	result := r.db.WithContext(ctx).Raw(
		fmt.Sprintf("UPDATE videos SET %s WHERE id = $%d RETURNING %s", set.SQL(), set.NextIndex(), videoColumns),
		append(set.Args, id)...,
	).Scan(&video)
	if result.Error != nil {
		return nil, fmt.Errorf("update video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Exec("DELETE FROM videos WHERE id = $1", id)
	if result.Error != nil {
		return false, fmt.Errorf("delete video: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListAfter 按 id 升序分批遍历全部视频，用于重建搜索索引
func (r *VideoRepository) ListAfter(ctx context.Context, afterID int64, limit int) ([]model.Video, error) {
	videos := make([]model.Video, 0, limit)
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+videoColumns+" FROM videos WHERE id > $1 ORDER BY id LIMIT $2", afterID, limit,
	).Scan(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("list videos after %d: %w", afterID, err)
	}
	return videos, nil
}
