package service

import (
	"errors"
	"strings"
	"testing"

	"utube/internal/apperror"
	"utube/internal/infra/kafka"
	"utube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoCreateChecks(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")

	_, err := s.videos.Create(s.ctx, CreateVideoInput{Title: "t", URL: "https://v/1", Username: "ghost"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No user with username: ghost found", err.Error())

	v, err := s.videos.Create(s.ctx, CreateVideoInput{Title: "t", URL: "https://v/1", Description: "d", Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "t", v.Title)
	assert.Equal(t, "d", v.Description)
	assert.Equal(t, "alice", v.Username)
	assert.Nil(t, v.ThumbnailImage)

	_, err = s.videos.Create(s.ctx, CreateVideoInput{Title: "t2", URL: "https://v/1", Username: "alice"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, "This video (url: https://v/1) already exists!", err.Error())
}

// alice 发布视频，bob 评论 "nice"，视频详情带上评论且没有点赞
func TestVideoGetScenario(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	s.register(t, "bob")
	id := s.video(t, "alice", "https://v/1")

	_, err := s.comments.Create(s.ctx, CreateCommentInput{Username: "bob", VideoID: id, Content: "nice"})
	require.NoError(t, err)

	detail, err := s.videos.Get(s.ctx, id)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "bob", detail.Comments[0].Username)
	assert.Equal(t, "nice", detail.Comments[0].Content)
	assert.NotNil(t, detail.Likes)
	assert.Empty(t, detail.Likes)
	assert.Empty(t, detail.Views)
}

func TestVideoGetCollectsLikesAndViews(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")

	like, err := s.likes.Create(s.ctx, "alice", id)
	require.NoError(t, err)
	view, err := s.views.Create(s.ctx, nil, id)
	require.NoError(t, err)

	detail, err := s.videos.Get(s.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []int64{like.ID}, detail.Likes)
	assert.Equal(t, []int64{view.ID}, detail.Views)
}

func TestVideoUpdateAndRemove(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")

	v, err := s.videos.Update(s.ctx, id, repository.Changes{}.Set("title", "renamed"))
	require.NoError(t, err)
	assert.Equal(t, "renamed", v.Title)

	_, err = s.videos.Update(s.ctx, id, repository.Changes{})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	_, err = s.videos.Update(s.ctx, 999999, repository.Changes{})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	_, err = s.videos.Update(s.ctx, 999999, repository.Changes{}.Set("title", "x"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	owner, err := s.videos.Owner(s.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)

	require.NoError(t, s.videos.Remove(s.ctx, id))
	_, err = s.videos.Get(s.ctx, id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, s.videos.Remove(s.ctx, id), apperror.ErrNotFound)

	assert.Equal(t, []string{
		kafka.EventUserRegistered,
		kafka.EventVideoCreated,
		kafka.EventVideoUpdated,
		kafka.EventVideoDeleted,
	}, s.events.types())
}

func TestVideoListFilterRoundTrip(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	s.register(t, "bob")
	a1 := s.video(t, "alice", "https://v/a1")
	s.video(t, "bob", "https://v/b1")
	a2 := s.video(t, "alice", "https://v/a2")

	videos, err := s.videos.List(s.ctx, repository.VideoByUsername("alice"))
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, a1, videos[0].ID)
	assert.Equal(t, a2, videos[1].ID)

	// 视频列表不检查用户是否存在
	videos, err = s.videos.List(s.ctx, repository.VideoByUsername("ghost"))
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestSetThumbnail(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")

	v, err := s.videos.SetThumbnail(s.ctx, id, ThumbnailUpload{
		Filename:    "Cover.PNG",
		ContentType: "image/png",
		Size:        4,
		Reader:      strings.NewReader("data"),
	})
	require.NoError(t, err)
	require.NotNil(t, v.ThumbnailImage)
	assert.True(t, strings.HasSuffix(s.store.objectName, ".png"))
	assert.Equal(t, "http://minio/thumbnails/"+s.store.objectName, *v.ThumbnailImage)
	assert.Equal(t, "data", s.store.body)

	_, err = s.videos.SetThumbnail(s.ctx, id, ThumbnailUpload{Filename: "a.txt", ContentType: "text/plain", Reader: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = s.videos.SetThumbnail(s.ctx, 999999, ThumbnailUpload{Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSearchFallsBackToTitleMatch(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/golang")

	s.searcher.err = errors.New("es down")
	videos, err := s.search.SearchVideos(s.ctx, "GOLANG")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, id, videos[0].ID)

	_, err = s.search.SearchVideos(s.ctx, "   ")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestSearchUsesIndexOrder(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	first := s.video(t, "alice", "https://v/1")
	second := s.video(t, "alice", "https://v/2")

	s.searcher.err = nil
	s.searcher.ids = []int64{second, 424242, first}

	videos, err := s.search.SearchVideos(s.ctx, "anything")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, second, videos[0].ID)
	assert.Equal(t, first, videos[1].ID)
}
