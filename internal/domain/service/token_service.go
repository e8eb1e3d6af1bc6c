package service

import (
	"context"
	"time"

	"parceltrack/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token types issued by the local identity provider.
const (
	TokenTypeAccess = "access"
	TokenTypeReset  = "reset"
)

// Claims defines the custom claims for locally issued JWTs.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates locally signed JWTs.
type TokenService interface {
	// GenerateToken signs a token of the given type for uid.
	GenerateToken(uid, email, tokenType string, ttl time.Duration) (string, error)

	// ValidateToken parses a token and checks its signature, expiry and type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)
}

// TokenVerifier turns a bearer token into the authenticated caller.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Caller, error)
}
