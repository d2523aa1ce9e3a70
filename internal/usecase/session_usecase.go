package usecase

import (
	"context"

	"salepoint/internal/domain/entity"
)

// SessionUsecase manages the local session marker: written at login,
// read by the guard, removed at logout or detected expiry.
type SessionUsecase interface {
	// Login issues a token, writes the session marker, and arms the
	// guard.
	Login(ctx context.Context, user *entity.SessionUser) (token string, err error)

	// Logout removes the marker and disarms the guard without a
	// user-facing notice; this is a deliberate action, not an expiry.
	Logout(ctx context.Context) error

	// Current returns the stored session when it is still valid.
	// ErrNoSession and ErrSessionExpired distinguish absence from age.
	Current(ctx context.Context) (*entity.Session, error)
}

// CacheEvictor is implemented by anything holding state that depends
// on a live session. The guard calls EvictCaches when validity fails.
type CacheEvictor interface {
	EvictCaches()
}

// GuardUsecase is the session guard: it decides from purely local
// evidence whether the cached session is still usable and drives
// eviction of dependent caches when it is not.
type GuardUsecase interface {
	// Arm starts the recurring validity check. Arming while armed is
	// a no-op.
	Arm()

	// Disarm stops the recurring check, evicts dependent caches and
	// emits no notice. Used on explicit logout and on teardown.
	Disarm()

	// CheckNow evaluates validity once, applying the full expiry path
	// (evict, debounced notice, disarm) when it fails. Reports the
	// session's validity.
	CheckNow() bool

	// RegisterEvictor adds a dependent cache to clear on expiry.
	RegisterEvictor(evictor CacheEvictor)

	// Armed reports whether the recurring check is running.
	Armed() bool
}
