package service

import (
	"context"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
)

type likeService struct {
	likeRepo domain.LikeRepository
	postRepo domain.PostRepository
}

// NewLikeService creates a new LikeService with the given repositories.
func NewLikeService(likeRepo domain.LikeRepository, postRepo domain.PostRepository) domain.LikeService {
	return &likeService{likeRepo: likeRepo, postRepo: postRepo}
}

// LikePost records that the user liked the post. Liking twice is a conflict,
// resolved by the unique (post_id, user_id) index rather than a prior read.
func (s *likeService) LikePost(ctx context.Context, postID, userID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return s.likeRepo.Create(ctx, &domain.Like{PostID: postID, UserID: userID})
}

// UnlikePost removes the user's like from the post.
func (s *likeService) UnlikePost(ctx context.Context, postID, userID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}
	return s.likeRepo.Delete(ctx, postID, userID)
}
