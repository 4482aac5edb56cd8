package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/repository"
)

func newCommentFixture(t *testing.T) (domain.CommentService, *domain.Post) {
	t.Helper()
	posts := repository.NewInMemoryPostRepository()
	post := &domain.Post{Title: "t", Content: "c"}
	authorID := uint(1)
	post.AuthorID = &authorID
	if err := posts.Create(context.Background(), post); err != nil {
		t.Fatalf("seed post error: %v", err)
	}
	return NewCommentService(repository.NewInMemoryCommentRepository(), posts), post
}

func TestCreateComment_OnMissingPost(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(repository.NewInMemoryCommentRepository(), repository.NewInMemoryPostRepository())
	_, err := svc.CreateComment(context.Background(), 42, domain.CreateCommentRequest{Content: "hi"}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing post, got %v", err)
	}
}

func TestCreateComment_AttributedAndAnonymous(t *testing.T) {
	t.Parallel()

	svc, post := newCommentFixture(t)

	attributed, err := svc.CreateComment(context.Background(), post.ID, domain.CreateCommentRequest{Content: "hi"}, &domain.Author{ID: 2, Name: "bob"})
	if err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}
	if attributed.AuthorID == nil || *attributed.AuthorID != 2 {
		t.Fatalf("expected author id 2, got %v", attributed.AuthorID)
	}

	anon, err := svc.CreateComment(context.Background(), post.ID, domain.CreateCommentRequest{Content: "hello"}, nil)
	if err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}
	if anon.AuthorID != nil || anon.AnonKey == nil {
		t.Fatalf("expected anonymous comment, got %+v", anon)
	}

	comments, err := svc.ListByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListByPost error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
}

func TestUpdateComment_Ownership(t *testing.T) {
	t.Parallel()

	svc, post := newCommentFixture(t)
	comment, err := svc.CreateComment(context.Background(), post.ID, domain.CreateCommentRequest{Content: "hi"}, &domain.Author{ID: 2, Name: "bob"})
	if err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}

	_, err = svc.UpdateComment(context.Background(), comment.ID, domain.UpdateCommentRequest{Content: "edited"}, 3)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	updated, err := svc.UpdateComment(context.Background(), comment.ID, domain.UpdateCommentRequest{Content: "edited"}, 2)
	if err != nil {
		t.Fatalf("UpdateComment error: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("expected edited content, got %q", updated.Content)
	}
}

func TestDeleteComment_AnonymousImmutable(t *testing.T) {
	t.Parallel()

	svc, post := newCommentFixture(t)
	anon, err := svc.CreateComment(context.Background(), post.ID, domain.CreateCommentRequest{Content: "hi"}, nil)
	if err != nil {
		t.Fatalf("CreateComment error: %v", err)
	}

	if err := svc.DeleteComment(context.Background(), anon.ID, 2); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("anonymous comment must not be deletable, got %v", err)
	}
}
