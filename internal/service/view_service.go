package service

import (
	"context"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/model"
	"utube/internal/repository"
)

type ViewService struct {
	viewRepo  *repository.ViewRepository
	userRepo  *repository.UserRepository
	videoRepo *repository.VideoRepository
	events    EventPublisher
}

func NewViewService(
	viewRepo *repository.ViewRepository,
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	events EventPublisher,
) *ViewService {
	return &ViewService{viewRepo: viewRepo, userRepo: userRepo, videoRepo: videoRepo, events: publisherOrNop(events)}
}

// Create 记录播放，username 为 nil 时为匿名播放
func (s *ViewService) Create(ctx context.Context, username *string, videoID int64) (*model.View, error) {
	invalid := apperror.NotFound("video id or username invalid.")

	videoExists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !videoExists {
		return nil, invalid
	}
	if username != nil {
		userExists, err := s.userRepo.Exists(ctx, *username)
		if err != nil {
			return nil, err
		}
		if !userExists {
			return nil, invalid
		}
	}

	view, err := s.viewRepo.Create(ctx, username, videoID)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, kafka.EventViewRecorded, videoKey(videoID), view)
	return view, nil
}

// List 播放记录列表，过滤值对应的用户或视频必须存在
func (s *ViewService) List(ctx context.Context, filter repository.ViewFilter) ([]model.View, error) {
	switch f := filter.(type) {
	case repository.ViewByUsername:
		exists, err := s.userRepo.Exists(ctx, string(f))
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, userNotFound(string(f))
		}
	case repository.ViewByVideo:
		exists, err := s.videoRepo.Exists(ctx, int64(f))
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, videoNotFound(int64(f))
		}
	}

	return s.viewRepo.List(ctx, filter)
}
