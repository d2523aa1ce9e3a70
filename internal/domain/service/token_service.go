package service

import (
	"github.com/golang-jwt/jwt/v5"

	"salepoint/internal/domain/entity"
)

// Claims defines the custom claims for the session token.
type Claims struct {
	UserID string
	Role   string
	jwt.RegisteredClaims
}

// TokenService issues and parses the local session token written at
// login. The guard never calls ParseToken on its polling path; token
// validity there is presence plus age, not signature.
type TokenService interface {
	// IssueToken creates a signed session token for the given user.
	IssueToken(user *entity.SessionUser) (string, error)

	// ParseToken checks the signature of a token string and returns
	// its claims.
	ParseToken(tokenString string) (*Claims, error)
}
