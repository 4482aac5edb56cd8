package domain

import (
	"context"
	"time"
)

type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AuthorID   *uint     `json:"author_id,omitempty" gorm:"index"` // nil for anonymous posts
	AuthorName string    `json:"author_name,omitempty" gorm:"size:100"`
	AnonKey    *string   `json:"anon_key,omitempty" gorm:"size:64"` // opaque id, set iff anonymous
	Title      string    `json:"title" gorm:"size:200;not null"`
	Content    string    `json:"content" gorm:"not null"`
	LikeCount  int64     `json:"like_count" gorm:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Anonymous reports whether the post has no attributable owner.
func (p *Post) Anonymous() bool {
	return p.AuthorID == nil
}

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	Content   string `json:"content" binding:"required"`
	Anonymous bool   `json:"anonymous"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty"`
}

type PostFilter struct {
	AuthorID *uint
	Search   *string
	Limit    int
	Offset   int
	// OrderBy is a sort key ("newest", "oldest"), not a SQL fragment.
	// Repositories map it to a clause through a whitelist; unknown keys
	// fall back to newest-first.
	OrderBy string
}

// Author identifies an attributable resource creator. A nil *Author means the
// resource is created anonymously.
type Author struct {
	ID   uint
	Name string
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id uint) (*Post, error)
	GetAll(ctx context.Context, filter PostFilter) ([]*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uint) error
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest, author *Author) (*Post, error)
	GetPost(ctx context.Context, id uint) (*Post, error)
	GetPostsByFilter(ctx context.Context, filter PostFilter) ([]*Post, error)
	UpdatePost(ctx context.Context, id uint, req UpdatePostRequest, callerID uint) (*Post, error)
	DeletePost(ctx context.Context, id, callerID uint) error
}
