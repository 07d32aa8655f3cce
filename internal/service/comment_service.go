package service

import (
	"context"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/model"
	"utube/internal/repository"
)

// CreateCommentInput 发表评论参数
type CreateCommentInput struct {
	Username string
	VideoID  int64
	Content  string
}

type CommentService struct {
	commentRepo *repository.CommentRepository
	userRepo    *repository.UserRepository
	videoRepo   *repository.VideoRepository
	events      EventPublisher
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	events EventPublisher,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		events:      publisherOrNop(events),
	}
}

// Create 发表评论
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*model.Comment, error) {
	userExists, err := s.userRepo.Exists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, userNotFound(in.Username)
	}

	videoExists, err := s.videoRepo.Exists(ctx, in.VideoID)
	if err != nil {
		return nil, err
	}
	if !videoExists {
		return nil, videoNotFound(in.VideoID)
	}

	comment, err := s.commentRepo.Create(ctx, &model.Comment{
		Username: in.Username,
		VideoID:  in.VideoID,
		Content:  in.Content,
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, kafka.EventCommentCreated, videoKey(comment.VideoID), comment)
	return comment, nil
}

// List 评论列表，不检查过滤值对应的用户或视频是否存在
func (s *CommentService) List(ctx context.Context, filter repository.CommentFilter) ([]model.Comment, error) {
	return s.commentRepo.List(ctx, filter)
}

func (s *CommentService) Get(ctx context.Context, id int64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, commentNotFound(id))
	}
	return comment, nil
}

// Update 部分更新评论，仅 content 可改
func (s *CommentService) Update(ctx context.Context, id int64, changes repository.Changes) (*model.Comment, error) {
	comment, err := s.commentRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, notFoundAs(err, commentNotFound(id))
	}
	return comment, nil
}

func (s *CommentService) Remove(ctx context.Context, id int64) error {
	deleted, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return commentNotFound(id)
	}
	return nil
}

func commentNotFound(id int64) *apperror.AppError {
	return apperror.NotFound("No comment with id \"%d\" found", id)
}
