package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
)

type CommentHandler struct {
	comments *service.CommentService
	logger   *zap.Logger
}

func NewCommentHandler(comments *service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

type commentRequest struct {
	ReportID int64  `json:"reportId" binding:"required"`
	UserID   int64  `json:"userId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

type commentResponse struct {
	ID       int64  `json:"id"`
	ReportID int64  `json:"reportId"`
	UserID   int64  `json:"userId"`
	Text     string `json:"text"`
}

func mapComment(comment *model.Comment) commentResponse {
	return commentResponse{
		ID:       comment.ID,
		ReportID: comment.ReportID,
		UserID:   comment.UserID,
		Text:     comment.Text,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	comment, err := h.comments.Create(c.Request.Context(), service.CommentInput{
		ReportID: req.ReportID,
		UserID:   req.UserID,
		Text:     req.Text,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mapComment(comment))
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	comment, err := h.comments.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapComment(comment))
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := make([]commentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, mapComment(&comments[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	comment, err := h.comments.Update(c.Request.Context(), id, service.CommentInput{
		ReportID: req.ReportID,
		UserID:   req.UserID,
		Text:     req.Text,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapComment(comment))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
