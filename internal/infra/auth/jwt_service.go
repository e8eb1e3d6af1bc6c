// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"parceltrack/config"
	"parceltrack/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService signs and validates HS256 tokens for local identities.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It returns nil when no signing secret is configured, which is the case for Firebase identities.
func NewJWTService(cfg *config.Config) service.TokenService {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		now:    time.Now,
	}
}

// GenerateToken creates a token of the given type for uid.
func (s *jwtService) GenerateToken(uid, email, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Email: email,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// ValidateToken parses tokenString and checks its signature, expiry and type.
func (s *jwtService) ValidateToken(tokenString, tokenType string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
