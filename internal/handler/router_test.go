package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/middleware"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/repository"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/service"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/jwt"
)

// env wires the full HTTP surface against in-memory repositories, so tests
// exercise real handlers, middleware, and services without a database.
type env struct {
	router *gin.Engine
	users  *repository.InMemoryUserRepository
	tokens jwt.TokenManager
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repository.NewInMemoryUserRepository()
	posts := repository.NewInMemoryPostRepository()
	comments := repository.NewInMemoryCommentRepository()
	likes := repository.NewInMemoryLikeRepository()
	tokens := jwt.NewTokenManagerWithoutRedis("handler-test-secret")

	authHandler := NewAuthHandler(service.NewAuthService(users, tokens, time.Hour, 24*time.Hour))
	postHandler := NewPostHandler(service.NewPostService(posts, likes))
	commentHandler := NewCommentHandler(service.NewCommentService(comments, posts))
	likeHandler := NewLikeHandler(service.NewLikeService(likes, posts))

	requireAuth := middleware.RequireAuth(tokens, users)
	optionalAuth := middleware.OptionalAuth(tokens, users)

	r := gin.New()
	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", requireAuth, authHandler.Logout)
	auth.GET("/me", requireAuth, authHandler.Me)
	auth.PUT("/me", requireAuth, authHandler.UpdateMe)

	v1.GET("/posts", postHandler.GetPosts)
	v1.GET("/posts/:id", postHandler.GetPost)
	v1.POST("/posts", optionalAuth, postHandler.CreatePost)
	v1.PUT("/posts/:id", requireAuth, postHandler.UpdatePost)
	v1.DELETE("/posts/:id", requireAuth, postHandler.DeletePost)

	v1.GET("/posts/:id/comments", commentHandler.ListComments)
	v1.POST("/posts/:id/comments", optionalAuth, commentHandler.CreateComment)
	v1.PUT("/comments/:id", requireAuth, commentHandler.UpdateComment)
	v1.DELETE("/comments/:id", requireAuth, commentHandler.DeleteComment)

	v1.POST("/posts/:id/like", requireAuth, likeHandler.LikePost)
	v1.DELETE("/posts/:id/like", requireAuth, likeHandler.UnlikePost)

	return &env{router: r, users: users, tokens: tokens}
}

// do performs a request against the test router. A non-empty token is sent as
// a bearer Authorization header; a nil body sends no payload.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an adult account through the HTTP surface and returns the
// login response, failing the test on anything but 201.
func (e *env) register(t *testing.T, email, username, password string) domain.LoginResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/v1/auth/register", "", domain.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
		Age:      20,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %s", email, w.Body.String())
	var resp domain.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
