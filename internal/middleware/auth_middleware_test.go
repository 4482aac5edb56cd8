package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/jwt"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/util"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	users   map[uint]*domain.User
	err     error // returned by GetByID when set
	lookups int
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) TouchLastActive(context.Context, uint, time.Time) error {
	return nil
}

func newAuthTestRouter(repo domain.UserRepository, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tm := jwt.NewTokenManagerWithoutRedis(testSecret)
	r := gin.New()
	mw := RequireAuth(tm, repo)
	if optional {
		mw = OptionalAuth(tm, repo)
	}
	r.GET("/protected", mw, func(c *gin.Context) {
		if identity, ok := util.CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"email": identity.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": nil})
	})
	return r
}

func accessToken(t *testing.T, secret string, userID uint, ttl time.Duration) string {
	t.Helper()
	access, _, err := jwt.NewTokenManagerWithoutRedis(secret).GenerateToken(userID, "alice@example.com", ttl, ttl)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return access
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_NoHeader(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*domain.User{}}
	r := newAuthTestRouter(repo, false)

	w := doRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	// Rejected before any store lookup.
	if repo.lookups != 0 {
		t.Fatalf("expected no user lookups, got %d", repo.lookups)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r := newAuthTestRouter(&fakeUserRepo{users: map[uint]*domain.User{}}, false)

	for _, header := range []string{"Token abc", "bearer-xyz", "Basic dXNlcjpwYXNz"} {
		w := doRequest(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestRequireAuth_BadSignature(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*domain.User{1: {ID: 1, Email: "alice@example.com"}}}
	r := newAuthTestRouter(repo, false)

	token := accessToken(t, "some-other-secret", 1, time.Hour)
	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if repo.lookups != 0 {
		t.Fatalf("signature failure must not reach the store, got %d lookups", repo.lookups)
	}
}

func TestRequireAuth_Expired(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*domain.User{1: {ID: 1, Email: "alice@example.com"}}}
	r := newAuthTestRouter(repo, false)

	token := accessToken(t, testSecret, 1, -time.Minute)
	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "expired") {
		t.Fatalf("expected expiry-specific reason, got %s", w.Body.String())
	}
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*domain.User{}}
	r := newAuthTestRouter(repo, false)

	token := accessToken(t, testSecret, 7, time.Hour)
	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale token of deleted account, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "user not found") {
		t.Fatalf("expected user-not-found reason, got %s", w.Body.String())
	}
}

func TestRequireAuth_StoreErrors(t *testing.T) {
	token := accessToken(t, testSecret, 1, time.Hour)

	// A store deadline is a temporary outage, not an auth failure.
	repo := &fakeUserRepo{err: context.DeadlineExceeded}
	w := doRequest(newAuthTestRouter(repo, false), "Bearer "+token)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 on store deadline, got %d", w.Code)
	}

	// Anything else unexpected is a 500.
	repo = &fakeUserRepo{err: errors.New("connection refused")}
	w = doRequest(newAuthTestRouter(repo, false), "Bearer "+token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on unexpected store error, got %d", w.Code)
	}
}

func TestRequireAuth_Valid(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*domain.User{1: {ID: 1, Email: "alice@example.com", Username: "alice"}}}
	r := newAuthTestRouter(repo, false)

	token := accessToken(t, testSecret, 1, time.Hour)
	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "alice@example.com") {
		t.Fatalf("expected identity email from the database, got %s", w.Body.String())
	}
}

func TestOptionalAuth(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*domain.User{1: {ID: 1, Email: "alice@example.com"}}}
	r := newAuthTestRouter(repo, true)

	// No header: passes through anonymously.
	w := doRequest(r, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected anonymous pass-through, got %d", w.Code)
	}

	// Present but invalid header still fails.
	w = doRequest(r, "Bearer garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid credentials, got %d", w.Code)
	}

	// Valid header resolves identity.
	w = doRequest(r, "Bearer "+accessToken(t, testSecret, 1, time.Hour))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "alice@example.com") {
		t.Fatalf("expected resolved identity, got %d %s", w.Code, w.Body.String())
	}
}
