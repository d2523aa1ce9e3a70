package impl

import (
	"context"
	"testing"
	"time"

	"salepoint/config"
	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	service  *sessionService
	guard    *sessionGuard
	medium   repository.KeyValue
	notifier *recordingNotifier
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	cfg := newTestConfig(8*time.Hour, time.Hour, 30*time.Second)
	cfg.SecretKey.Session = "test-session-secret"

	tokens, err := auth.NewTokenService(cfg)
	require.NoError(t, err)

	medium := newTestMedium()
	notifier := &recordingNotifier{}
	guard := NewSessionGuard(medium, notifier, cfg, newDiscardLogger()).(*sessionGuard)

	service := NewSessionService(medium, tokens, guard, cfg.Session.Timeout, newDiscardLogger())

	return &sessionFixture{
		service:  service.(*sessionService),
		guard:    guard,
		medium:   medium,
		notifier: notifier,
	}
}

func (f *sessionFixture) login(t *testing.T) string {
	t.Helper()

	token, err := f.service.Login(context.Background(), &entity.SessionUser{
		ID:    "user-1",
		Name:  "Nguyen Van An",
		Email: "an@example.com",
		Role:  "owner",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	return token
}

func TestSessionService_LoginWritesMarkerAndArmsGuard(t *testing.T) {
	f := newSessionFixture(t)
	defer f.guard.Disarm()
	ctx := context.Background()

	token := f.login(t)

	stored, ok, err := f.medium.Get(ctx, repository.KeySessionToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, token, stored)

	_, ok, err = f.medium.Get(ctx, repository.KeySessionUser)
	require.NoError(t, err)
	assert.True(t, ok)

	raw, ok, err := f.medium.Get(ctx, repository.KeySessionLogin)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339Nano, raw)
	assert.NoError(t, err)

	assert.True(t, f.guard.Armed())
}

func TestSessionService_CurrentReturnsFreshSession(t *testing.T) {
	f := newSessionFixture(t)
	defer f.guard.Disarm()

	token := f.login(t)

	session, err := f.service.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, "user-1", session.User.ID)
	assert.Equal(t, "owner", session.User.Role)
	assert.WithinDuration(t, time.Now(), session.LoginAt, time.Minute)
}

func TestSessionService_CurrentWithoutSession(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.service.Current(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
}

func TestSessionService_CurrentAfterTimeout(t *testing.T) {
	f := newSessionFixture(t)
	defer f.guard.Disarm()

	f.login(t)

	f.service.now = func() time.Time { return time.Now().Add(config.DefaultSessionTimeout) }

	_, err := f.service.Current(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_LogoutClearsEverything(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.login(t)
	require.NoError(t, f.service.Logout(ctx))

	for _, key := range []string{repository.KeySessionToken, repository.KeySessionUser, repository.KeySessionLogin} {
		_, ok, err := f.medium.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "slot %s must be cleared on logout", key)
	}

	assert.False(t, f.guard.Armed())
	assert.Zero(t, f.notifier.count(), "logout is deliberate, no expiry notice")

	_, err := f.service.Current(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
}

func TestSessionService_TokenRoundTrip(t *testing.T) {
	f := newSessionFixture(t)
	defer f.guard.Disarm()

	token := f.login(t)

	claims, err := f.service.tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestSessionService_ReloginRearmsGuard(t *testing.T) {
	f := newSessionFixture(t)
	defer f.guard.Disarm()
	ctx := context.Background()

	f.login(t)
	require.NoError(t, f.service.Logout(ctx))
	require.False(t, f.guard.Armed())

	f.login(t)
	assert.True(t, f.guard.Armed())
}
