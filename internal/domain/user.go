package domain

import (
	"context"
	"time"
)

type User struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Username      string     `json:"username" gorm:"size:100;not null"`
	Password      string     `json:"-" gorm:"not null"` // bcrypt hash, hidden in JSON responses
	Age           *int       `json:"age,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	AvatarURL     string     `json:"avatar_url,omitempty"`
	Location      string     `json:"location,omitempty"`
	ParentConsent bool       `json:"parent_consent"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastActiveAt  *time.Time `json:"last_active_at,omitempty"`
}

type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Username      string `json:"username" binding:"required,min=2,max=100"`
	Password      string `json:"password" binding:"required,min=6"`
	Age           int    `json:"age" binding:"required,gte=0"`
	ParentConsent bool   `json:"parent_consent"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty" binding:"omitempty,min=2,max=100"`
	Bio       *string `json:"bio,omitempty" binding:"omitempty,max=1000"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,max=500"`
	Location  *string `json:"location,omitempty" binding:"omitempty,max=200"`
}

// LoginResponse is returned by register, login, and refresh.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	TouchLastActive(ctx context.Context, id uint, at time.Time) error
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, id uint, req UpdateProfileRequest) (*User, error)
}
