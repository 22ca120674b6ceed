package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access/refresh token pair.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenClaims represents the claims extracted from a validated token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	TokenType string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access/refresh token pair for a user.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeRefreshToken invalidates a refresh token so it cannot be reused.
	RevokeRefreshToken(ctx context.Context, token string) error
}
