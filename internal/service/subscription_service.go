package service

import (
	"context"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/model"
	"utube/internal/repository"
)

type SubscriptionService struct {
	subRepo  *repository.SubscriptionRepository
	userRepo *repository.UserRepository
	events   EventPublisher
}

func NewSubscriptionService(
	subRepo *repository.SubscriptionRepository,
	userRepo *repository.UserRepository,
	events EventPublisher,
) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo, events: publisherOrNop(events)}
}

// Create 订阅，双方用户都必须存在
func (s *SubscriptionService) Create(ctx context.Context, subscriber, subscribedTo string) (*model.Subscription, error) {
	subscriberExists, err := s.userRepo.Exists(ctx, subscriber)
	if err != nil {
		return nil, err
	}
	subscribedToExists, err := s.userRepo.Exists(ctx, subscribedTo)
	if err != nil {
		return nil, err
	}
	if !subscriberExists || !subscribedToExists {
		return nil, apperror.NotFound("Both users must already exist!")
	}

	duplicate := apperror.BadRequest("This subscription already exists!")
	exists, err := s.subRepo.Exists(ctx, subscriber, subscribedTo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicate
	}

	sub, err := s.subRepo.Create(ctx, subscriber, subscribedTo)
	if err != nil {
		return nil, duplicateAs(err, duplicate)
	}

	s.events.Publish(ctx, kafka.EventSubscriptionCreated, subscribedTo, sub)
	return sub, nil
}

// List 订阅列表，过滤值对应的用户必须存在
func (s *SubscriptionService) List(ctx context.Context, filter repository.SubscriptionFilter) ([]model.SubscriptionItem, error) {
	var username string
	switch f := filter.(type) {
	case repository.BySubscriber:
		username = string(f)
	case repository.BySubscribedTo:
		username = string(f)
	}

	if filter != nil {
		exists, err := s.userRepo.Exists(ctx, username)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, userNotFound(username)
		}
	}

	return s.subRepo.List(ctx, filter)
}

// Unsubscribe 取消订阅
func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriber, subscribedTo string) error {
	deleted, err := s.subRepo.Delete(ctx, subscriber, subscribedTo)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("No subscription found")
	}
	return nil
}
