package dto

import (
	"utube/internal/repository"
	"utube/internal/service"
)

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Username string `json:"username" binding:"required,min=1,max=25"`
	VideoID  int64  `json:"videoId" binding:"required,gt=0"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

func (r *CommentCreateRequest) Input() service.CreateCommentInput {
	return service.CreateCommentInput{
		Username: r.Username,
		VideoID:  r.VideoID,
		Content:  r.Content,
	}
}

// CommentUpdateRequest 更新评论请求
type CommentUpdateRequest struct {
	Username string  `json:"username" binding:"required,min=1,max=25"`
	Content  *string `json:"content" binding:"omitempty,min=1,max=1000"`
}

func (r *CommentUpdateRequest) Changes(order []string) repository.Changes {
	return collect(order, map[string]*string{"content": r.Content})
}
