package service

import (
	"testing"

	"utube/internal/apperror"
	"utube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoLikeLifecycle(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")

	_, err := s.likes.Create(s.ctx, "ghost", id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Invalid username.", err.Error())

	_, err = s.likes.Create(s.ctx, "alice", 999999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Invalid video id.", err.Error())

	like, err := s.likes.Create(s.ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, "alice", like.Username)
	assert.Equal(t, id, like.VideoID)

	_, err = s.likes.Create(s.ctx, "alice", id)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, "This video like already exists!", err.Error())

	likes, err := s.likes.List(s.ctx, repository.LikeByUsername("alice"))
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	likes, err = s.likes.List(s.ctx, repository.LikeByUsername("ghost"))
	require.NoError(t, err)
	assert.Empty(t, likes)

	require.NoError(t, s.likes.Unlike(s.ctx, "alice", id))
	err = s.likes.Unlike(s.ctx, "alice", id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No video like found", err.Error())
}
