package handler

import (
	"context"

	"utube/internal/api/dto"
	"utube/internal/api/middleware"
	"utube/internal/api/response"
	"utube/internal/apperror"
	"utube/internal/service"

	"github.com/gin-gonic/gin"
)

const maxThumbnailSize = 5 << 20

type VideoHandler struct {
	videoService  *service.VideoService
	searchService *service.SearchService
}

func NewVideoHandler(videoService *service.VideoService, searchService *service.SearchService) *VideoHandler {
	return &VideoHandler{
		videoService:  videoService,
		searchService: searchService,
	}
}

// Create 发布视频
// @Summary 发布视频
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.VideoCreateRequest true "视频信息"
// @Success 201 {object} map[string]model.Video
// @Failure 400 {object} response.ErrorResponse "参数错误或 url 重复"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	video, err := h.videoService.Create(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "video", video)
}

// List 视频列表
// @Summary 视频列表
// @Description 可按 username 或 title（不区分大小写的子串）过滤，二者只能选一
// @Tags 视频
// @Produce json
// @Param username query string false "上传者"
// @Param title query string false "标题关键字"
// @Success 200 {object} map[string][]model.Video
// @Failure 400 {object} response.ErrorResponse "过滤参数错误"
// @Router /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	filter, err := videoFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	videos, err := h.videoService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "videos", videos)
}

// Search 搜索视频
// @Summary 搜索视频
// @Description 优先使用 Elasticsearch，不可用时按标题模糊匹配
// @Tags 视频
// @Produce json
// @Param q query string true "关键字"
// @Success 200 {object} map[string][]model.Video
// @Failure 400 {object} response.ErrorResponse "缺少关键字"
// @Router /videos/search [get]
func (h *VideoHandler) Search(c *gin.Context) {
	videos, err := h.searchService.SearchVideos(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "videos", videos)
}

// Get 视频详情
// @Summary 视频详情
// @Description 包含点赞 id、播放 id 和评论（新的在前）
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} map[string]model.VideoDetail
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	video, err := h.videoService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "video", video)
}

// Update 更新视频
// @Summary 更新视频
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param body body dto.VideoUpdateRequest true "username 与要更新的字段"
// @Success 200 {object} map[string]model.Video
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.VideoUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ensureOwner(c.Request.Context(), id, req.Username); err != nil {
		response.Error(c, err)
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), id, req.Changes(bodyKeys(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "video", video)
}

// Delete 删除视频
// @Summary 删除视频
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param body body dto.OwnerRequest true "上传者"
// @Success 200 {object} map[string]int64
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.OwnerRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ensureOwner(c.Request.Context(), id, req.Username); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.videoService.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "deleted", id)
}

// UploadThumbnail 上传封面
// @Summary 上传视频封面
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param thumbnail formData file true "封面图片"
// @Success 200 {object} map[string]model.Video
// @Failure 400 {object} response.ErrorResponse "文件缺失或不是图片"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /videos/{id}/thumbnail [post]
func (h *VideoHandler) UploadThumbnail(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	username, _ := middleware.CurrentUsername(c)
	if err := h.ensureOwner(c.Request.Context(), id, username); err != nil {
		response.Error(c, err)
		return
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		response.Error(c, apperror.BadRequest("thumbnail file is required"))
		return
	}
	if file.Size > maxThumbnailSize {
		response.Error(c, apperror.BadRequest("Thumbnail must be at most 5MB"))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	video, err := h.videoService.SetThumbnail(c.Request.Context(), id, service.ThumbnailUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Reader:      src,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "video", video)
}

// ensureOwner 视频必须存在且属于 username
func (h *VideoHandler) ensureOwner(ctx context.Context, id int64, username string) error {
	owner, err := h.videoService.Owner(ctx, id)
	if err != nil {
		return err
	}
	if owner != username {
		return apperror.Unauthorized("Unauthorized")
	}
	return nil
}
