package service

import (
	"context"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/model"
	"utube/internal/repository"
	"utube/pkg/utils"
)

// RegisterInput 注册参数
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

type UserService struct {
	userRepo   *repository.UserRepository
	videoRepo  *repository.VideoRepository
	subRepo    *repository.SubscriptionRepository
	events     EventPublisher
	bcryptCost int
}

func NewUserService(
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	subRepo *repository.SubscriptionRepository,
	events EventPublisher,
	bcryptCost int,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		videoRepo:  videoRepo,
		subRepo:    subRepo,
		events:     publisherOrNop(events),
		bcryptCost: bcryptCost,
	}
}

// Authenticate 校验用户名密码，成功返回不含密码的用户
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	invalid := apperror.Unauthorized("Invalid username/password combination")

	user, err := s.userRepo.GetWithPassword(ctx, username)
	if err != nil {
		return nil, notFoundAs(err, invalid)
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, invalid
	}

	user.Password = ""
	return user, nil
}

// Register 用户注册
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	duplicate := apperror.BadRequest("Username %s already exists!", in.Username)

	exists, err := s.userRepo.Exists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicate
	}

	hashed, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Username:  in.Username,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		return nil, duplicateAs(err, duplicate)
	}

	s.events.Publish(ctx, kafka.EventUserRegistered, user.Username, user)
	return user, nil
}

// List 最多 250 个用户
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Get 用户详情：视频 id、订阅的用户、订阅者
func (s *UserService) Get(ctx context.Context, username string) (*model.UserDetail, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFoundAs(err, apperror.NotFound("No user with \"%s\" found", username))
	}

	subscriptions, err := s.subRepo.SubscribedTo(ctx, username)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subRepo.Subscribers(ctx, username)
	if err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.IDsByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &model.UserDetail{
		User:          *user,
		Videos:        videos,
		Subscriptions: subscriptions,
		Subscribers:   subscribers,
	}, nil
}

// Update 部分更新用户资料
func (s *UserService) Update(ctx context.Context, username string, changes repository.Changes) (*model.User, error) {
	user, err := s.userRepo.Update(ctx, username, changes)
	if err != nil {
		return nil, notFoundAs(err, apperror.NotFound("No user with \"%s\" found", username))
	}
	return user, nil
}

// Remove 删除用户，其视频、评论、点赞、订阅随之级联删除
func (s *UserService) Remove(ctx context.Context, username string) error {
	deleted, err := s.userRepo.Delete(ctx, username)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("No user with \"%s\" found", username)
	}

	s.events.Publish(ctx, kafka.EventUserDeleted, username, map[string]string{"username": username})
	return nil
}
