package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=25"`
	Password string `json:"password" binding:"required,min=1,max=20"`
}

// TokenResponse 登录响应
type TokenResponse struct {
	Token string `json:"token"`
}
