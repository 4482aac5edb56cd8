package jwt

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManagerWithoutRedis("super-secret")

	access, refresh, err := tm.GenerateToken(42, "alice@example.com", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected non-empty token pair")
	}

	claims, err := tm.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("ValidateAccessToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected iat and exp claims to be set")
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatalf("expected exp strictly after iat")
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManagerWithoutRedis("secret")

	access, _, err := tm.GenerateToken(1, "u@example.com", -time.Second, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = tm.ValidateAccessToken(access)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	access, _, err := NewTokenManagerWithoutRedis("right-secret").GenerateToken(2, "", time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = NewTokenManagerWithoutRedis("wrong-secret").ValidateAccessToken(access)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestValidateAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManagerWithoutRedis("k").ValidateAccessToken("not.a.jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestValidateRefreshToken_NoRedis(t *testing.T) {
	t.Parallel()

	tm := NewTokenManagerWithoutRedis("k")
	_, refresh, err := tm.GenerateToken(3, "", time.Hour, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := tm.ValidateRefreshToken(context.Background(), refresh)
	if err != nil {
		t.Fatalf("ValidateRefreshToken error: %v", err)
	}
	if claims.UserID != 3 {
		t.Fatalf("user id mismatch: got %d want 3", claims.UserID)
	}
}

func TestRevokeToken_NoRedis(t *testing.T) {
	t.Parallel()

	// Without a revocation store, revoking is a no-op rather than an error,
	// so logout still succeeds for deployments running without redis.
	tm := NewTokenManagerWithoutRedis("k")
	if err := tm.RevokeToken(context.Background(), "whatever"); err != nil {
		t.Fatalf("RevokeToken without redis must be a no-op, got %v", err)
	}
}
