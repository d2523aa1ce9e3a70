package usecase

import (
	"context"

	"salepoint/internal/domain/entity"
)

// WorkspaceUsecase caches the business list fetched from the remote
// directory and tracks which business the user is working in. Both
// caches depend on a live session and are evicted by the guard.
type WorkspaceUsecase interface {
	CacheEvictor

	// Businesses returns the cached list, fetching it from the
	// directory on first use or after an eviction.
	Businesses(ctx context.Context) ([]*entity.Business, error)

	// Select marks the business with the given id as the active
	// workspace.
	Select(ctx context.Context, id string) (*entity.Business, error)

	// Selected returns the active business, or nil when none is
	// selected or the cache was evicted.
	Selected() *entity.Business
}
