package auth

import (
	"testing"
	"time"

	"salepoint/config"
	"salepoint/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *tokenService {
	t.Helper()
	cfg := &config.Config{Session: &config.SessionConfig{Timeout: time.Hour}}
	cfg.SecretKey.Session = "test-secret"

	svc, err := NewTokenService(cfg)
	require.NoError(t, err)

	return svc.(*tokenService)
}

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueToken(&entity.SessionUser{ID: "u1", Name: "Chu Cua Hang", Role: "owner"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "u1", claims.Subject)
}

func TestTokenService_ParseRejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueToken(&entity.SessionUser{ID: "u1"})
	require.NoError(t, err)

	other := newTestTokenService(t)
	other.secret = "different-secret"

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenService_ParseRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{Session: &config.SessionConfig{Timeout: time.Hour}}

	_, err := NewTokenService(cfg)
	assert.Error(t, err)
}
