package repository

import (
	"context"
	"fmt"

	"utube/internal/model"

	"gorm.io/gorm"
)

const commentColumns = `id, created_at, username, video_id, content`

var commentList = ListQuery{
	Select:  "SELECT " + commentColumns + " FROM comments",
	OrderBy: "created_at, id",
	Limit:   250,
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	var created model.Comment
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO comments (username, video_id, content)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns,
		comment.Username, comment.VideoID, comment.Content,
	).Scan(&created).Error
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &created, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	result := r.db.WithContext(ctx).Raw(
		"SELECT "+commentColumns+" FROM comments WHERE id = $1", id,
	).Scan(&comment)
	if result.Error != nil {
		return nil, fmt.Errorf("select comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

// List 按创建时间升序返回最多 250 条评论
func (r *CommentRepository) List(ctx context.Context, filter CommentFilter) ([]model.Comment, error) {
	var cond *Condition
	if filter != nil {
		cond = filter.commentCondition()
	}
	query, args := commentList.Build(cond)

	comments := make([]model.Comment, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// ListByVideoNewestFirst 视频详情中的评论，新的在前
func (r *CommentRepository) ListByVideoNewestFirst(ctx context.Context, videoID int64) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	err := r.db.WithContext(ctx).Raw(
		"SELECT "+commentColumns+" FROM comments WHERE video_id = $1 ORDER BY created_at DESC, id DESC", videoID,
	).Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list video comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, id int64, changes Changes) (*model.Comment, error) {
	set, err := BuildPartialUpdate(changes, nil)
	if err != nil {
		return nil, err
	}

	var comment model.Comment
	result := r.db.WithContext(ctx).Raw(
		fmt.Sprintf("UPDATE comments SET %s WHERE id = $%d RETURNING %s", set.SQL(), set.NextIndex(), commentColumns),
		append(set.Args, id)...,
	).Scan(&comment)
	if result.Error != nil {
		return nil, fmt.Errorf("update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Exec("DELETE FROM comments WHERE id = $1", id)
	if result.Error != nil {
		return false, fmt.Errorf("delete comment: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
