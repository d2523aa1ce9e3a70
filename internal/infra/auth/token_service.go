// Package auth provides the concrete session-token implementation.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"salepoint/config"
	"salepoint/internal/domain/entity"
	"salepoint/internal/domain/service"
)

// tokenService signs session tokens with HS256. The token TTL mirrors
// the guard's session timeout so both expire together.
type tokenService struct {
	secret string
	ttl    time.Duration
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &tokenService{
		secret: cfg.SecretKey.Session,
		ttl:    cfg.Session.Timeout,
	}, nil
}

// IssueToken creates a signed session token for the given user.
func (s *tokenService) IssueToken(user *entity.SessionUser) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ParseToken checks the signature of a token string and returns its claims.
func (s *tokenService) ParseToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
