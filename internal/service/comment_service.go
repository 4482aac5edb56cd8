package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
)

type commentService struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	sanitizer   *bluemonday.Policy
}

// NewCommentService creates a new CommentService with the given repositories.
func NewCommentService(commentRepo domain.CommentRepository, postRepo domain.PostRepository) domain.CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo, sanitizer: bluemonday.UGCPolicy()}
}

// CreateComment adds a comment to an existing post. A nil author creates an
// anonymous comment, which is immutable afterwards.
func (s *commentService) CreateComment(ctx context.Context, postID uint, req domain.CreateCommentRequest, author *domain.Author) (*domain.Comment, error) {
	// The post must exist before a comment can attach to it.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comment := &domain.Comment{
		PostID:  postID,
		Content: s.sanitizer.Sanitize(req.Content),
	}
	if author != nil && !req.Anonymous {
		comment.AuthorID = &author.ID
		comment.AuthorName = author.Name
	} else {
		key := uuid.NewString()
		comment.AnonKey = &key
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost returns all comments on an existing post.
func (s *commentService) ListByPost(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// UpdateComment updates a comment if the caller owns it.
func (s *commentService) UpdateComment(ctx context.Context, id uint, req domain.UpdateCommentRequest, callerID uint) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeMutation(callerID, comment.AuthorID); err != nil {
		return nil, err
	}
	comment.Content = s.sanitizer.Sanitize(req.Content)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes a comment if the caller owns it.
func (s *commentService) DeleteComment(ctx context.Context, id, callerID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeMutation(callerID, comment.AuthorID); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}
