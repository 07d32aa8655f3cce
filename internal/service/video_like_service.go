package service

import (
	"context"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/model"
	"utube/internal/repository"
)

type VideoLikeService struct {
	likeRepo  *repository.VideoLikeRepository
	userRepo  *repository.UserRepository
	videoRepo *repository.VideoRepository
	events    EventPublisher
}

func NewVideoLikeService(
	likeRepo *repository.VideoLikeRepository,
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	events EventPublisher,
) *VideoLikeService {
	return &VideoLikeService{
		likeRepo:  likeRepo,
		userRepo:  userRepo,
		videoRepo: videoRepo,
		events:    publisherOrNop(events),
	}
}

// Create 点赞，同一用户对同一视频只能点赞一次
func (s *VideoLikeService) Create(ctx context.Context, username string, videoID int64) (*model.VideoLike, error) {
	userExists, err := s.userRepo.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	videoExists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperror.NotFound("Invalid username.")
	}
	if !videoExists {
		return nil, apperror.NotFound("Invalid video id.")
	}

	duplicate := apperror.BadRequest("This video like already exists!")
	liked, err := s.likeRepo.Exists(ctx, username, videoID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, duplicate
	}

	like, err := s.likeRepo.Create(ctx, username, videoID)
	if err != nil {
		return nil, duplicateAs(err, duplicate)
	}

	s.events.Publish(ctx, kafka.EventLikeCreated, videoKey(videoID), like)
	return like, nil
}

// List 点赞列表，不检查过滤值对应的用户或视频是否存在
func (s *VideoLikeService) List(ctx context.Context, filter repository.LikeFilter) ([]model.VideoLike, error) {
	return s.likeRepo.List(ctx, filter)
}

// Unlike 取消点赞
func (s *VideoLikeService) Unlike(ctx context.Context, username string, videoID int64) error {
	deleted, err := s.likeRepo.Delete(ctx, username, videoID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("No video like found")
	}
	return nil
}
