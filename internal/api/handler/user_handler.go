package handler

import (
	"net/http"

	"utube/internal/api/dto"
	"utube/internal/api/response"
	"utube/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// Register 注册
// @Summary 注册新用户
// @Description 创建用户并返回该用户的 token
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body dto.UserRegisterRequest true "注册信息"
// @Success 201 {object} dto.UserRegisterResponse
// @Failure 400 {object} response.ErrorResponse "参数错误或用户名已存在"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.UserRegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// List 用户列表
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Success 200 {object} map[string][]model.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "users", users)
}

// Get 用户详情
// @Summary 获取用户详情
// @Description 包含视频 id、订阅与粉丝列表，仅本人可见
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} map[string]model.UserDetail
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user", user)
}

// Update 更新用户资料
// @Summary 更新用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Param body body dto.UserUpdateRequest true "要更新的字段"
// @Success 200 {object} map[string]model.User
// @Failure 400 {object} response.ErrorResponse "参数错误"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/{username} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("username"), req.Changes(bodyKeys(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user", user)
}

// Delete 删除用户
// @Summary 删除用户
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{username} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.userService.Remove(c.Request.Context(), username); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "deleted", username)
}
