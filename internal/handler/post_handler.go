package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/util"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	Service domain.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service domain.PostService) *PostHandler {
	return &PostHandler{Service: service}
}

// CreatePost handles POST /posts. Runs behind OptionalAuth: callers without a
// token, or callers asking for anonymity, produce an anonymous post.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := h.Service.CreatePost(c.Request.Context(), req, currentAuthor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /posts/:id.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := h.Service.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetPosts handles GET /posts. Lists posts with optional filters.
func (h *PostHandler) GetPosts(c *gin.Context) {
	var filter domain.PostFilter
	if authorIDStr := c.Query("author_id"); authorIDStr != "" {
		if authorID, err := strconv.ParseUint(authorIDStr, 10, 64); err == nil {
			authorIDUint := uint(authorID)
			filter.AuthorID = &authorIDUint
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	filter.OrderBy = c.Query("sort")
	posts, err := h.Service.GetPostsByFilter(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles PUT /posts/:id. Requires auth and ownership.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	callerID, ok := util.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	post, err := h.Service.UpdatePost(c.Request.Context(), id, req, callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /posts/:id. Requires auth and ownership.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	callerID, ok := util.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if err := h.Service.DeletePost(c.Request.Context(), id, callerID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// currentAuthor returns the caller as a resource author, or nil when the
// request is anonymous.
func currentAuthor(c *gin.Context) *domain.Author {
	identity, ok := util.CurrentUser(c)
	if !ok {
		return nil
	}
	return &domain.Author{ID: identity.ID, Name: identity.Username}
}

// pathID parses a numeric path parameter, responding 400 when it is malformed.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
