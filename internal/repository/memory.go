package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
)

// In-memory implementations of the repository ports. They enforce the same
// uniqueness rules the postgres constraints do, so services behave identically
// against either backend. Used as test fixtures and for offline development.

// InMemoryUserRepository is a map-backed domain.UserRepository.
type InMemoryUserRepository struct {
	mu   sync.Mutex
	seq  uint
	byID map[uint]*domain.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{byID: make(map[uint]*domain.User)}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	r.seq++
	user.ID = r.seq
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *InMemoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *InMemoryUserRepository) TouchLastActive(_ context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.LastActiveAt = &at
	return nil
}

// Remove drops a user outright. Not part of the repository port (accounts are
// never hard-deleted through the API); fixtures use it to simulate stale
// tokens for deleted accounts.
func (r *InMemoryUserRepository) Remove(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

// InMemoryPostRepository is a map-backed domain.PostRepository.
type InMemoryPostRepository struct {
	mu   sync.Mutex
	seq  uint
	byID map[uint]*domain.Post
}

func NewInMemoryPostRepository() *InMemoryPostRepository {
	return &InMemoryPostRepository{byID: make(map[uint]*domain.Post)}
}

func (r *InMemoryPostRepository) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	post.ID = r.seq
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	cp := *post
	r.byID[post.ID] = &cp
	return nil
}

func (r *InMemoryPostRepository) GetByID(_ context.Context, id uint) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryPostRepository) GetAll(_ context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []*domain.Post
	for _, p := range r.byID {
		if filter.AuthorID != nil && (p.AuthorID == nil || *p.AuthorID != *filter.AuthorID) {
			continue
		}
		if filter.Search != nil {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(p.Title), needle) &&
				!strings.Contains(strings.ToLower(p.Content), needle) {
				continue
			}
		}
		cp := *p
		posts = append(posts, &cp)
	}
	oldestFirst := filter.OrderBy == "oldest"
	sort.Slice(posts, func(i, j int) bool {
		if oldestFirst {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

func (r *InMemoryPostRepository) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[post.ID]; !ok {
		return domain.ErrNotFound
	}
	post.UpdatedAt = time.Now()
	cp := *post
	r.byID[post.ID] = &cp
	return nil
}

func (r *InMemoryPostRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// InMemoryCommentRepository is a map-backed domain.CommentRepository.
type InMemoryCommentRepository struct {
	mu   sync.Mutex
	seq  uint
	byID map[uint]*domain.Comment
}

func NewInMemoryCommentRepository() *InMemoryCommentRepository {
	return &InMemoryCommentRepository{byID: make(map[uint]*domain.Comment)}
}

func (r *InMemoryCommentRepository) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	comment.ID = r.seq
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	cp := *comment
	r.byID[comment.ID] = &cp
	return nil
}

func (r *InMemoryCommentRepository) GetByID(_ context.Context, id uint) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cm, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *cm
	return &cp, nil
}

func (r *InMemoryCommentRepository) ListByPost(_ context.Context, postID uint) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var comments []*domain.Comment
	for _, cm := range r.byID {
		if cm.PostID == postID {
			cp := *cm
			comments = append(comments, &cp)
		}
	}
	return comments, nil
}

func (r *InMemoryCommentRepository) Update(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[comment.ID]; !ok {
		return domain.ErrNotFound
	}
	comment.UpdatedAt = time.Now()
	cp := *comment
	r.byID[comment.ID] = &cp
	return nil
}

func (r *InMemoryCommentRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// InMemoryLikeRepository is a map-backed domain.LikeRepository with the same
// one-like-per-user-per-post rule the unique index enforces.
type InMemoryLikeRepository struct {
	mu    sync.Mutex
	likes map[[2]uint]struct{} // [postID, userID]
}

func NewInMemoryLikeRepository() *InMemoryLikeRepository {
	return &InMemoryLikeRepository{likes: make(map[[2]uint]struct{})}
}

func (r *InMemoryLikeRepository) Create(_ context.Context, like *domain.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]uint{like.PostID, like.UserID}
	if _, ok := r.likes[key]; ok {
		return domain.ErrAlreadyLiked
	}
	r.likes[key] = struct{}{}
	return nil
}

func (r *InMemoryLikeRepository) Delete(_ context.Context, postID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]uint{postID, userID}
	if _, ok := r.likes[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.likes, key)
	return nil
}

func (r *InMemoryLikeRepository) CountByPost(_ context.Context, postID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.likes {
		if key[0] == postID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryLikeRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	for _, id := range postIDs {
		count, err := r.CountByPost(ctx, id)
		if err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, nil
}
