package handler

import (
	"context"

	"utube/internal/api/dto"
	"utube/internal/api/response"
	"utube/internal/apperror"
	"utube/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "comment", comment)
}

// List GET /comments?username= | ?videoId=
func (h *CommentHandler) List(c *gin.Context) {
	filter, err := commentFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "comments", comments)
}

// Get GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "comment", comment)
}

// Update PATCH /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CommentUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.ensureAuthor(c.Request.Context(), id, req.Username); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), id, req.Changes(bodyKeys(c)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "comment", comment)
}

// Delete DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
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

	if err := h.ensureAuthor(c.Request.Context(), id, req.Username); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.commentService.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "deleted", id)
}

func (h *CommentHandler) ensureAuthor(ctx context.Context, id int64, username string) error {
	comment, err := h.commentService.Get(ctx, id)
	if err != nil {
		return err
	}
	if comment.Username != username {
		return apperror.Unauthorized("Unauthorized")
	}
	return nil
}
