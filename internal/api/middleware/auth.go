package middleware

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"utube/internal/api/response"
	"utube/internal/config"
	"utube/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const ContextKeyUsername = "currentUsername"

// Authenticate 解析 Bearer Token，有效时把用户名存入上下文
// 没有 token 或 token 无效都不算错误，由后续的 LoginRequired / SameUser 决定是否拒绝
func Authenticate(jwtCfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := utils.ParseToken(jwtCfg, token); err == nil {
				c.Set(ContextKeyUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// LoginRequired 要求请求携带有效 Token
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUsername(c); !ok {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// SameUser 要求当前用户与路径参数 :username 一致
func SameUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := CurrentUsername(c)
		if !ok || current != c.Param("username") {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// SameUserInBody 要求当前用户与请求体中的 field 字段一致，字段存在且不同时返回 401
// 请求体会被缓存，handler 需用 ShouldBindBodyWith 再次读取
func SameUserInBody(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := CurrentUsername(c)
		if !ok {
			response.Unauthorized(c)
			return
		}

		var body map[string]any
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
			response.Fail(c, http.StatusBadRequest, "Malformed JSON body")
			return
		}

		// 缺失或为空时交给 handler 的 required 校验返回 400
		if claimed, _ := body[field].(string); claimed != "" && claimed != current {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// CurrentUsername 从 Gin Context 中获取当前登录用户名
func CurrentUsername(c *gin.Context) (string, bool) {
	username := c.GetString(ContextKeyUsername)
	return username, username != ""
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
