package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
)

type postService struct {
	postRepo  domain.PostRepository
	likeRepo  domain.LikeRepository
	sanitizer *bluemonday.Policy
}

// NewPostService creates a new PostService with the given repositories.
func NewPostService(postRepo domain.PostRepository, likeRepo domain.LikeRepository) domain.PostService {
	return &postService{postRepo: postRepo, likeRepo: likeRepo, sanitizer: bluemonday.UGCPolicy()}
}

// CreatePost creates a new post. A nil author creates an anonymous post,
// identified only by an opaque key; such posts are immutable afterwards.
func (s *postService) CreatePost(ctx context.Context, req domain.CreatePostRequest, author *domain.Author) (*domain.Post, error) {
	post := &domain.Post{
		Title:   req.Title,
		Content: s.sanitizer.Sanitize(req.Content),
	}
	if author != nil && !req.Anonymous {
		post.AuthorID = &author.ID
		post.AuthorName = author.Name
	} else {
		key := uuid.NewString()
		post.AnonKey = &key
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by its ID, including its like count.
func (s *postService) GetPost(ctx context.Context, id uint) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.likeRepo.CountByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post.LikeCount = count
	return post, nil
}

// GetPostsByFilter returns posts matching the given filter with like counts attached.
func (s *postService) GetPostsByFilter(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	posts, err := s.postRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	counts, err := s.likeRepo.CountByPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.LikeCount = counts[post.ID]
	}
	return posts, nil
}

// UpdatePost updates an existing post if the caller owns it.
func (s *postService) UpdatePost(ctx context.Context, id uint, req domain.UpdatePostRequest, callerID uint) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeMutation(callerID, post.AuthorID); err != nil {
		return nil, err
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = s.sanitizer.Sanitize(*req.Content)
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post if the caller owns it.
func (s *postService) DeletePost(ctx context.Context, id, callerID uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if err := domain.AuthorizeMutation(callerID, post.AuthorID); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
