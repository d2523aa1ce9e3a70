package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "salepoint/internal/delivery/context"
	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/domain/service"
	"salepoint/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. It owns the
// session marker's lifecycle: written at login, read on validity
// checks, removed at logout.
type sessionService struct {
	medium  repository.KeyValue
	tokens  service.TokenService
	guard   usecase.GuardUsecase
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	medium repository.KeyValue,
	tokens service.TokenService,
	guard usecase.GuardUsecase,
	timeout time.Duration,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		medium:  medium,
		tokens:  tokens,
		guard:   guard,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login issues a session token, writes the marker, and arms the guard.
func (srv *sessionService) Login(ctx context.Context, user *entity.SessionUser) (string, error) {
	token, err := srv.tokens.IssueToken(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue session token")
	}

	userRaw, err := json.Marshal(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode session user")
	}

	if err := srv.medium.Set(ctx, repository.KeySessionToken, token); err != nil {
		return "", domainerrors.NewStorageWriteError(err, "write session token")
	}
	if err := srv.medium.Set(ctx, repository.KeySessionUser, string(userRaw)); err != nil {
		return "", domainerrors.NewStorageWriteError(err, "write session user")
	}
	if err := srv.medium.Set(ctx, repository.KeySessionLogin, srv.now().Format(time.RFC3339Nano)); err != nil {
		return "", domainerrors.NewStorageWriteError(err, "write session timestamp")
	}

	srv.guard.Arm()
	srv.log(ctx).Info("Session established", slog.String("user_id", user.ID))

	return token, nil
}

// Logout removes the marker and disarms the guard. A deliberate
// logout emits no expiry notice.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.guard.Disarm()

	for _, key := range []string{repository.KeySessionToken, repository.KeySessionUser, repository.KeySessionLogin} {
		if err := srv.medium.Delete(ctx, key); err != nil {
			return errors.Wrapf(err, "failed to clear %s", key)
		}
	}
	srv.log(ctx).Info("Session cleared")

	return nil
}

// Current returns the stored session when it is still valid.
func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	session := readSessionMarker(ctx, srv.medium, srv.logger)
	if !session.Complete() {
		return nil, domainerrors.ErrNoSession
	}
	if srv.now().Sub(session.LoginAt) >= srv.timeout {
		return nil, domainerrors.ErrSessionExpired
	}

	return session, nil
}

// readSessionMarker assembles the session marker from its three
// storage slots. Missing or unreadable parts yield an incomplete
// marker rather than an error; the callers treat that as "no session".
func readSessionMarker(ctx context.Context, medium repository.KeyValue, logger *slog.Logger) *entity.Session {
	session := &entity.Session{}

	if token, ok, err := medium.Get(ctx, repository.KeySessionToken); err == nil && ok {
		session.Token = token
	}

	if raw, ok, err := medium.Get(ctx, repository.KeySessionUser); err == nil && ok {
		var user entity.SessionUser
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			logger.Warn("session user slot corrupt", slog.Any("error", err))
		} else {
			session.User = &user
		}
	}

	if raw, ok, err := medium.Get(ctx, repository.KeySessionLogin); err == nil && ok {
		loginAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			logger.Warn("session timestamp slot corrupt", slog.Any("error", err))
		} else {
			session.LoginAt = loginAt
		}
	}

	return session
}
