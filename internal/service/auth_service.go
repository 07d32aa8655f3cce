package service

import (
	"context"

	"utube/internal/config"
	"utube/internal/model"
	"utube/pkg/utils"
)

// AuthService 登录与签发 token
type AuthService struct {
	users  *UserService
	jwtCfg *config.JWTConfig
}

func NewAuthService(users *UserService, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{users: users, jwtCfg: jwtCfg}
}

// Login 校验用户名密码并签发 token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.IssueToken(user)
}

// IssueToken 为用户签发 token，载荷只含用户名
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	return utils.GenerateToken(s.jwtCfg, user.Username)
}
