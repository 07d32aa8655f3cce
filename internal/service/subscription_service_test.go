package service

import (
	"testing"

	"utube/internal/apperror"
	"utube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionCreateTwice(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	s.register(t, "bob")

	sub, err := s.subs.Create(s.ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", sub.SubscriberUsername)
	assert.Equal(t, "bob", sub.SubscribedToUsername)

	_, err = s.subs.Create(s.ctx, "alice", "bob")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, "This subscription already exists!", err.Error())

	_, err = s.subs.Create(s.ctx, "alice", "ghost")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Both users must already exist!", err.Error())
}

func TestSubscriptionListPrechecksUser(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	s.register(t, "bob")
	_, err := s.subs.Create(s.ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = s.subs.List(s.ctx, repository.BySubscriber("ghost"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No user with username: ghost found", err.Error())

	_, err = s.subs.List(s.ctx, repository.BySubscribedTo("ghost"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	items, err := s.subs.List(s.ctx, repository.BySubscribedTo("bob"))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alice", items[0].SubscriberUsername)

	items, err = s.subs.List(s.ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestUnsubscribe(t *testing.T) {
	s := newSuite(t)
	s.register(t, "alice")
	s.register(t, "bob")
	_, err := s.subs.Create(s.ctx, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, s.subs.Unsubscribe(s.ctx, "alice", "bob"))
	err = s.subs.Unsubscribe(s.ctx, "alice", "bob")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "No subscription found", err.Error())
}
