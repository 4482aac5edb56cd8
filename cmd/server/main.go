package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/config"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/handler"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/middleware"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/repository"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/service"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/jwt"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/logger"
)

const requestTimeout = 5 * time.Second

func main() {
	log := logger.New("info")

	// Config panics on any missing critical key, including JWT_SECRET_KEY.
	// There is deliberately no default signing secret.
	conf := config.Load()

	// TranslateError makes unique-constraint violations surface as
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(conf.PostgresDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&domain.User{}, &domain.Post{}, &domain.Comment{}, &domain.Like{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:       fmt.Sprintf("%s:%s", conf.RedisDBURL, conf.RedisDBPort),
		Password:   conf.RedisDBPassword,
		DB:         0, // use default DB
		MaxRetries: conf.RedisMaxRetries,
		PoolSize:   conf.RedisPoolSize,
	})
	defer redisClient.Close()

	tokenManager := jwt.NewTokenManager(conf.JWTSecretKey, redisClient)
	accessTTL := time.Duration(conf.AccessTokenTTL) * time.Minute
	refreshTTL := time.Duration(conf.RefreshTokenTTL) * time.Minute

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, tokenManager, accessTTL, refreshTTL))
	postHandler := handler.NewPostHandler(service.NewPostService(postRepo, likeRepo))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(commentRepo, postRepo))
	likeHandler := handler.NewLikeHandler(service.NewLikeService(likeRepo, postRepo))

	requireAuth := middleware.RequireAuth(tokenManager, userRepo)
	optionalAuth := middleware.OptionalAuth(tokenManager, userRepo)

	r := gin.Default()
	r.Use(middleware.WithTimeout(requestTimeout))

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

	log.Infof("listening on :%s", conf.ServerPort)
	if err := r.Run(":" + conf.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
