package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/model"
	"utube/internal/repository"

	"github.com/google/uuid"
)

// CreateVideoInput 创建视频参数
type CreateVideoInput struct {
	Title       string
	URL         string
	Description string
	Username    string
}

// ThumbnailUpload 待上传的封面文件
type ThumbnailUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ObjectStore 封面对象存储，返回公开 URL
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type VideoService struct {
	videoRepo   *repository.VideoRepository
	userRepo    *repository.UserRepository
	likeRepo    *repository.VideoLikeRepository
	viewRepo    *repository.ViewRepository
	commentRepo *repository.CommentRepository
	events      EventPublisher
	store       ObjectStore
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
	likeRepo *repository.VideoLikeRepository,
	viewRepo *repository.ViewRepository,
	commentRepo *repository.CommentRepository,
	events EventPublisher,
	store ObjectStore,
) *VideoService {
	return &VideoService{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		viewRepo:    viewRepo,
		commentRepo: commentRepo,
		events:      publisherOrNop(events),
		store:       store,
	}
}

// Create 创建视频，上传者必须存在，url 不可重复
func (s *VideoService) Create(ctx context.Context, in CreateVideoInput) (*model.Video, error) {
	exists, err := s.userRepo.Exists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, userNotFound(in.Username)
	}

	duplicate := apperror.BadRequest("This video (url: %s) already exists!", in.URL)
	taken, err := s.videoRepo.URLExists(ctx, in.URL)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, duplicate
	}

	video, err := s.videoRepo.Create(ctx, &model.Video{
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		Username:    in.Username,
	})
	if err != nil {
		return nil, duplicateAs(err, duplicate)
	}

	s.events.Publish(ctx, kafka.EventVideoCreated, videoKey(video.ID), video)
	return video, nil
}

// List 视频列表，过滤值不存在时返回空列表
func (s *VideoService) List(ctx context.Context, filter repository.VideoFilter) ([]model.Video, error) {
	return s.videoRepo.List(ctx, filter)
}

// Get 视频详情：点赞 id、播放 id、评论（新的在前）
func (s *VideoService) Get(ctx context.Context, id int64) (*model.VideoDetail, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, apperror.NotFound("No video with id \"%d\" found", id))
	}

	likes, err := s.likeRepo.IDsByVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.viewRepo.IDsByVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByVideoNewestFirst(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.VideoDetail{
		Video:    *video,
		Likes:    likes,
		Views:    views,
		Comments: comments,
	}, nil
}

// Owner 返回视频上传者
func (s *VideoService) Owner(ctx context.Context, id int64) (string, error) {
	owner, err := s.videoRepo.Owner(ctx, id)
	if err != nil {
		return "", notFoundAs(err, apperror.NotFound("No video with id \"%d\" found", id))
	}
	return owner, nil
}

// Update 部分更新视频
func (s *VideoService) Update(ctx context.Context, id int64, changes repository.Changes) (*model.Video, error) {
	video, err := s.videoRepo.Update(ctx, id, changes)
	if err != nil {
		return nil, duplicateAs(
			notFoundAs(err, apperror.NotFound("No video with id \"%d\" found", id)),
			apperror.BadRequest("This video url already exists!"),
		)
	}

	s.events.Publish(ctx, kafka.EventVideoUpdated, videoKey(video.ID), video)
	return video, nil
}

// Remove 删除视频
func (s *VideoService) Remove(ctx context.Context, id int64) error {
	deleted, err := s.videoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("No video with id \"%d\" found", id)
	}

	s.events.Publish(ctx, kafka.EventVideoDeleted, videoKey(id), map[string]int64{"id": id})
	return nil
}

// SetThumbnail 上传封面并写回 thumbnail_image
func (s *VideoService) SetThumbnail(ctx context.Context, id int64, upload ThumbnailUpload) (*model.Video, error) {
	if s.store == nil {
		return nil, apperror.BadRequest("Thumbnail uploads are not enabled")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, apperror.BadRequest("Thumbnail must be an image")
	}

	if _, err := s.Owner(ctx, id); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("videos/%d/%s%s", id, uuid.NewString(), strings.ToLower(path.Ext(upload.Filename)))
	url, err := s.store.Upload(ctx, objectName, upload.Reader, upload.Size, upload.ContentType)
	if err != nil {
		return nil, err
	}

	return s.Update(ctx, id, repository.Changes{}.Set("thumbnailImage", url))
}

func videoKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
