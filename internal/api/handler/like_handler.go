package handler

import (
	"utube/internal/api/dto"
	"utube/internal/api/response"
	"utube/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService *service.VideoLikeService
}

func NewLikeHandler(likeService *service.VideoLikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Create POST /likes
func (h *LikeHandler) Create(c *gin.Context) {
	var req dto.LikeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	like, err := h.likeService.Create(c.Request.Context(), req.Username, req.VideoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "like", like)
}

// List GET /likes?username= | ?videoId=
func (h *LikeHandler) List(c *gin.Context) {
	filter, err := likeFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	likes, err := h.likeService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "likes", likes)
}

// Delete DELETE /likes
func (h *LikeHandler) Delete(c *gin.Context) {
	var req dto.LikeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.likeService.Unlike(c.Request.Context(), req.Username, req.VideoID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "deleted", []any{req.Username, req.VideoID})
}
