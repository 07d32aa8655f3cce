package service

import (
	"testing"

	"utube/internal/apperror"
	"utube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCreate(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")

	anon, err := s.views.Create(s.ctx, nil, id)
	require.NoError(t, err)
	assert.Nil(t, anon.Username)

	name := "alice"
	named, err := s.views.Create(s.ctx, &name, id)
	require.NoError(t, err)
	require.NotNil(t, named.Username)
	assert.Equal(t, "alice", *named.Username)

	ghost := "ghost"
	_, err = s.views.Create(s.ctx, &ghost, id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "video id or username invalid.", err.Error())

	_, err = s.views.Create(s.ctx, nil, 999999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestViewListPrechecks(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")
	_, err := s.views.Create(s.ctx, nil, id)
	require.NoError(t, err)

	_, err = s.views.List(s.ctx, repository.ViewByUsername("ghost"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No user with username: ghost found", err.Error())

	_, err = s.views.List(s.ctx, repository.ViewByVideo(999999))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No video with id: 999999 found", err.Error())

	views, err := s.views.List(s.ctx, repository.ViewByVideo(id))
	require.NoError(t, err)
	assert.Len(t, views, 1)

	// 用户存在但没有播放记录时返回空列表
	views, err = s.views.List(s.ctx, repository.ViewByUsername("alice"))
	require.NoError(t, err)
	assert.Empty(t, views)
}
