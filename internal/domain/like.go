package domain

import (
	"context"
	"time"
)

// Like records that a user liked a post. Likes are never anonymous; the
// (post_id, user_id) pair is unique at the database level.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_likes_post_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeRepository interface {
	Create(ctx context.Context, like *Like) error
	Delete(ctx context.Context, postID, userID uint) error
	CountByPost(ctx context.Context, postID uint) (int64, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

type LikeService interface {
	LikePost(ctx context.Context, postID, userID uint) error
	UnlikePost(ctx context.Context, postID, userID uint) error
}
