package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository with the given GORM DB instance.
func NewPostRepository(db *gorm.DB) domain.PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post into the database.
func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its ID from the database.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetAll returns all posts matching the given filter.
func (r *postRepository) GetAll(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	var posts []*domain.Post
	query := r.db.WithContext(ctx).Model(&domain.Post{})
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Search != nil {
		like := "%" + *filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", like, like)
	}
	query = query.Order(orderClause(filter.OrderBy))
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update updates the mutable fields of an existing post.
func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	post.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(post).Updates(map[string]interface{}{
		"title":      post.Title,
		"content":    post.Content,
		"updated_at": post.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a post by its ID from the database.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Post{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// sortClauses whitelists the sort keys GetAll accepts. OrderBy values come
// from request query params and must never reach the SQL string directly.
var sortClauses = map[string]string{
	"newest": "created_at DESC",
	"oldest": "created_at ASC",
}

// orderClause maps a requested sort key to a safe ORDER BY clause,
// defaulting to newest-first for empty or unknown keys.
func orderClause(requested string) string {
	if clause, ok := sortClauses[requested]; ok {
		return clause
	}
	return "created_at DESC"
}
