package dto

import (
	"utube/internal/repository"
	"utube/internal/service"
)

// VideoCreateRequest 创建视频请求
type VideoCreateRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	URL         string `json:"url" binding:"required,url,max=500"`
	Description string `json:"description" binding:"max=5000"`
	Username    string `json:"username" binding:"required,min=1,max=25"`
}

func (r *VideoCreateRequest) Input() service.CreateVideoInput {
	return service.CreateVideoInput{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Username:    r.Username,
	}
}

// VideoUpdateRequest 更新视频请求，Username 用于鉴权，不参与更新
type VideoUpdateRequest struct {
	Username       string  `json:"username" binding:"required,min=1,max=25"`
	Title          *string `json:"title" binding:"omitempty,min=1,max=100"`
	Description    *string `json:"description" binding:"omitempty,max=5000"`
	URL            *string `json:"url" binding:"omitempty,url,max=500"`
	ThumbnailImage *string `json:"thumbnailImage" binding:"omitempty,max=500"`
}

// Changes 按请求体中字段出现的顺序生成更新项
func (r *VideoUpdateRequest) Changes(order []string) repository.Changes {
	return collect(order, map[string]*string{
		"title":          r.Title,
		"description":    r.Description,
		"url":            r.URL,
		"thumbnailImage": r.ThumbnailImage,
	})
}

// OwnerRequest 只带用户名的请求体（删除视频 / 评论）
type OwnerRequest struct {
	Username string `json:"username" binding:"required,min=1,max=25"`
}
