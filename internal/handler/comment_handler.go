package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/util"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	Service domain.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service domain.CommentService) *CommentHandler {
	return &CommentHandler{Service: service}
}

// CreateComment handles POST /posts/:id/comments. Runs behind OptionalAuth.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := h.Service.CreateComment(c.Request.Context(), postID, req, currentAuthor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments handles GET /posts/:id/comments.
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := h.Service.ListByPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// UpdateComment handles PUT /comments/:id. Requires auth and ownership.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	callerID, ok := util.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	comment, err := h.Service.UpdateComment(c.Request.Context(), id, req, callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/:id. Requires auth and ownership.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := util.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if err := h.Service.DeleteComment(c.Request.Context(), id, callerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
