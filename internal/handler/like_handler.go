package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/util"
)

// LikeHandler handles HTTP requests for post likes.
type LikeHandler struct {
	Service domain.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(service domain.LikeService) *LikeHandler {
	return &LikeHandler{Service: service}
}

// LikePost handles POST /posts/:id/like. Requires auth.
func (h *LikeHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := util.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if err := h.Service.LikePost(c.Request.Context(), postID, callerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// UnlikePost handles DELETE /posts/:id/like. Requires auth.
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := util.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if err := h.Service.UnlikePost(c.Request.Context(), postID, callerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
