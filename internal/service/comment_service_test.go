package service

import (
	"testing"

	"utube/internal/apperror"
	"utube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateChecks(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")

	_, err := s.comments.Create(s.ctx, CreateCommentInput{Username: "ghost", VideoID: id, Content: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No user with username: ghost found", err.Error())

	_, err = s.comments.Create(s.ctx, CreateCommentInput{Username: "alice", VideoID: 999999, Content: "x"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No video with id: 999999 found", err.Error())

	c, err := s.comments.Create(s.ctx, CreateCommentInput{Username: "alice", VideoID: id, Content: "first"})
	require.NoError(t, err)

	got, err := s.comments.Get(s.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
	assert.Equal(t, id, got.VideoID)
}

func TestCommentUpdateRemove(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	id := s.video(t, "alice", "https://v/1")
	c, err := s.comments.Create(s.ctx, CreateCommentInput{Username: "alice", VideoID: id, Content: "first"})
	require.NoError(t, err)

	updated, err := s.comments.Update(s.ctx, c.ID, repository.Changes{}.Set("content", "edited"))
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	_, err = s.comments.Update(s.ctx, c.ID, repository.Changes{})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	require.NoError(t, s.comments.Remove(s.ctx, c.ID))
	_, err = s.comments.Get(s.ctx, c.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, s.comments.Remove(s.ctx, c.ID), apperror.ErrNotFound)
}

func TestCommentListDoesNotPrecheck(t *testing.T) {
	s := newSuite(t)

	comments, err := s.comments.List(s.ctx, repository.CommentByUsername("ghost"))
	require.NoError(t, err)
	assert.Empty(t, comments)

	comments, err = s.comments.List(s.ctx, repository.CommentByVideo(999999))
	require.NoError(t, err)
	assert.Empty(t, comments)
}
