package dto

import (
	"testing"

	"utube/internal/repository"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestUserChangesFollowBodyOrder(t *testing.T) {
	req := UserUpdateRequest{About: ptr("hi"), FirstName: ptr("Al"), Email: ptr("a@x.io")}

	changes := req.Changes([]string{"about", "email", "unknown", "firstName", "about"})
	assert.Equal(t, repository.Changes{
		{Field: "about", Value: "hi"},
		{Field: "email", Value: "a@x.io"},
		{Field: "firstName", Value: "Al"},
	}, changes)
}

func TestVideoChangesSkipOwner(t *testing.T) {
	req := VideoUpdateRequest{Username: "alice", Title: ptr("New")}
	changes := req.Changes([]string{"username", "title"})
	assert.Equal(t, []string{"title"}, changes.Fields())
}

func TestCommentChangesEmpty(t *testing.T) {
	req := CommentUpdateRequest{Username: "alice"}
	assert.Empty(t, req.Changes([]string{"username"}))
}
