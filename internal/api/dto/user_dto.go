package dto

import (
	"utube/internal/model"
	"utube/internal/repository"
	"utube/internal/service"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=25"`
	Password  string `json:"password" binding:"required,min=5,max=20"`
	FirstName string `json:"firstName" binding:"required,min=1,max=30"`
	LastName  string `json:"lastName" binding:"required,min=1,max=30"`
	Email     string `json:"email" binding:"required,email,max=60"`
}

func (r *UserRegisterRequest) Input() service.RegisterInput {
	return service.RegisterInput{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// UserUpdateRequest 用户资料更新请求，只有出现的字段会被更新
type UserUpdateRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,min=1,max=30"`
	LastName    *string `json:"lastName" binding:"omitempty,min=1,max=30"`
	Email       *string `json:"email" binding:"omitempty,email,max=60"`
	AvatarImage *string `json:"avatarImage" binding:"omitempty,max=500"`
	CoverImage  *string `json:"coverImage" binding:"omitempty,max=500"`
	About       *string `json:"about" binding:"omitempty,max=1000"`
}

// Changes 按请求体中字段出现的顺序生成更新项
func (r *UserUpdateRequest) Changes(order []string) repository.Changes {
	values := map[string]*string{
		"firstName":   r.FirstName,
		"lastName":    r.LastName,
		"email":       r.Email,
		"avatarImage": r.AvatarImage,
		"coverImage":  r.CoverImage,
		"about":       r.About,
	}
	return collect(order, values)
}

// UserRegisterResponse 注册响应
type UserRegisterResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}
