package handler

import (
	"utube/internal/api/dto"
	"utube/internal/api/response"
	"utube/internal/service"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	viewService *service.ViewService
}

func NewViewHandler(viewService *service.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// Create POST /views，匿名播放不带 username
func (h *ViewHandler) Create(c *gin.Context) {
	var req dto.ViewCreateRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.viewService.Create(c.Request.Context(), req.Username, req.VideoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "view", view)
}

// List GET /views?username= | ?videoId=
func (h *ViewHandler) List(c *gin.Context) {
	filter, err := viewFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.viewService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "views", views)
}
