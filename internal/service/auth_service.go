package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/domain"
	"github.com/IrutingaboRaissa/amasimbi-sub000/internal/util"
	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/jwt"
)

// Age policy: registrants must be older than minAge; registrants younger
// than adultAge additionally need parental consent.
const (
	minAge   = 12
	adultAge = 18
)

// authService implements domain.AuthService using a UserRepository.
type authService struct {
	repo         domain.UserRepository
	tokenManager jwt.TokenManager
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

// NewAuthService creates a new AuthService with the given UserRepository and
// token manager. TTLs are injected rather than read from the environment so
// tests can shrink them.
func NewAuthService(repo domain.UserRepository, tokenManager jwt.TokenManager, accessTTL, refreshTTL time.Duration) domain.AuthService {
	return &authService{repo: repo, tokenManager: tokenManager, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Register creates a new user account and logs it in.
func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.LoginResponse, error) {
	if req.Age <= minAge {
		return nil, domain.ErrUnderage
	}
	if req.Age < adultAge && !req.ParentConsent {
		return nil, domain.ErrConsentRequired
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	age := req.Age
	user := &domain.User{
		Email:         normalizeEmail(req.Email),
		Username:      strings.TrimSpace(req.Username),
		Password:      hashedPassword,
		Age:           &age,
		ParentConsent: req.ParentConsent,
	}
	// No prior existence check: the unique index on email decides races
	// between concurrent registrations.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.loginResponse(user)
}

// Login authenticates a user by email and password. Unknown email and wrong
// password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := util.CheckPassword(user.Password, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.TouchLastActive(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastActiveAt = &now

	return s.loginResponse(user)
}

// Refresh rotates a refresh token: the old token is blacklisted and a new
// access/refresh pair is issued. A stale token for a deleted account fails.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.LoginResponse, error) {
	claims, err := s.tokenManager.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, jwt.ErrTokenInvalid
		}
		return nil, err
	}
	if err := s.tokenManager.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return s.loginResponse(user)
}

// Logout blacklists the caller's refresh token. The access token stays valid
// until it expires; access tokens are stateless and not revocable.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenManager.RevokeToken(ctx, refreshToken)
}

// GetUserByID retrieves a user by their ID.
func (s *authService) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies the provided profile changes to the user.
func (s *authService) UpdateProfile(ctx context.Context, id uint, req domain.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) loginResponse(user *domain.User) (*domain.LoginResponse, error) {
	accessToken, refreshToken, err := s.tokenManager.GenerateToken(user.ID, user.Email, s.accessTTL, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &domain.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.accessTTL).Unix(),
		User:         *user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
