package jwt

import (
	"context"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// ErrTokenExpired is returned when a token has expired.
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenInvalid is returned for tokens that fail signature or claim checks.
var ErrTokenInvalid = errors.New("invalid token")

// Claims defines the custom JWT claims structure. Email is carried for
// convenience only; the verifier always re-reads the user record and the
// database value wins.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

// TokenManager provides methods for generating, validating, and revoking JWT tokens.
type TokenManager interface {
	// accessToken, refreshToken, error
	GenerateToken(userID uint, email string, accessTokenExp, refreshTokenExp time.Duration) (string, string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
	RevokeToken(ctx context.Context, tokenString string) error
	IsTokenRevoked(ctx context.Context, tokenString string) (bool, error)
}

// NewTokenManager creates a new TokenManager with the given secret key and Redis client.
// The caller is responsible for ensuring the secret is non-empty; config treats a
// missing secret as a fatal startup error.
func NewTokenManager(secretKey string, redisClient *redis.Client) TokenManager {
	return &tokenManager{secretKey: []byte(secretKey), redis: redisClient}
}

// NewTokenManagerWithoutRedis creates a TokenManager with no revocation store.
// Refresh tokens validated through it are never considered revoked; useful in tests.
func NewTokenManagerWithoutRedis(secretKey string) TokenManager {
	return &tokenManager{secretKey: []byte(secretKey)}
}

type tokenManager struct {
	secretKey []byte
	redis     *redis.Client
}

// GenerateToken creates a new access and refresh JWT token pair for a user.
func (j *tokenManager) GenerateToken(userID uint, email string, accessTokenExp, refreshTokenExp time.Duration) (string, string, error) {
	now := time.Now()

	accessClaims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(accessTokenExp)),
		},
	}
	accessToken, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, accessClaims).SignedString(j.secretKey)
	if err != nil {
		return "", "", err
	}

	refreshClaims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(refreshTokenExp)),
		},
	}
	refreshToken, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, refreshClaims).SignedString(j.secretKey)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken parses and validates an access token. There is no
// revocation check: access tokens are stateless and expire by time alone.
func (j *tokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return j.parse(tokenString)
}

// ValidateRefreshToken parses and validates a refresh token and checks the
// Redis blacklist.
func (j *tokenManager) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	if j.redis != nil {
		revoked, err := j.IsTokenRevoked(ctx, tokenString)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrTokenInvalid
		}
	}
	return j.parse(tokenString)
}

// RevokeToken blacklists a refresh token until it would naturally expire.
// Without a revocation store the call is a no-op.
func (j *tokenManager) RevokeToken(ctx context.Context, tokenString string) error {
	if j.redis == nil {
		return nil
	}
	claims, err := j.parse(tokenString)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // already expired
	}
	return j.redis.Set(ctx, j.redisKey(tokenString), "revoked", ttl).Err()
}

// IsTokenRevoked checks if the token is blacklisted in Redis.
func (j *tokenManager) IsTokenRevoked(ctx context.Context, tokenString string) (bool, error) {
	if j.redis == nil {
		return false, nil
	}
	res, err := j.redis.Exists(ctx, j.redisKey(tokenString)).Result()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func (j *tokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// redisKey generates a Redis key for a blacklisted JWT token.
func (j *tokenManager) redisKey(tokenString string) string {
	return "jwt:blacklist:" + tokenString
}
