package domain

import (
	"context"
	"time"
)

type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PostID     uint      `json:"post_id" gorm:"index;not null"`
	AuthorID   *uint     `json:"author_id,omitempty" gorm:"index"` // nil for anonymous comments
	AuthorName string    `json:"author_name,omitempty" gorm:"size:100"`
	AnonKey    *string   `json:"anon_key,omitempty" gorm:"size:64"`
	Content    string    `json:"content" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Anonymous reports whether the comment has no attributable owner.
func (c *Comment) Anonymous() bool {
	return c.AuthorID == nil
}

type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required,min=1,max=5000"`
	Anonymous bool   `json:"anonymous"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*Comment, error)
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id uint) error
}

type CommentService interface {
	CreateComment(ctx context.Context, postID uint, req CreateCommentRequest, author *Author) (*Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*Comment, error)
	UpdateComment(ctx context.Context, id uint, req UpdateCommentRequest, callerID uint) (*Comment, error)
	DeleteComment(ctx context.Context, id, callerID uint) error
}
