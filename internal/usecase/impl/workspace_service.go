package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "salepoint/internal/delivery/context"
	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/service"
	"salepoint/internal/usecase"

	"github.com/pkg/errors"
)

// workspaceService implements the WorkspaceUsecase interface. It holds
// the only caches that depend on session validity: the business list
// and the selected business. The guard evicts both when the session
// dies; the next read re-fetches through the directory.
type workspaceService struct {
	directory service.BusinessDirectory
	logger    *slog.Logger

	mu         sync.Mutex
	businesses []*entity.Business
	selected   *entity.Business
}

// NewWorkspaceService is the constructor for workspaceService. It
// registers itself with the guard so expiry clears its caches.
func NewWorkspaceService(
	directory service.BusinessDirectory,
	guard usecase.GuardUsecase,
	logger *slog.Logger,
) usecase.WorkspaceUsecase {
	srv := &workspaceService{
		directory: directory,
		logger:    logger,
	}
	guard.RegisterEvictor(srv)

	return srv
}

func (srv *workspaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Businesses returns the cached list, fetching it on first use or
// after an eviction.
func (srv *workspaceService) Businesses(ctx context.Context) ([]*entity.Business, error) {
	srv.mu.Lock()
	cached := srv.businesses
	srv.mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	businesses, err := srv.directory.ListBusinesses(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch business list", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch business list")
	}
	if businesses == nil {
		businesses = make([]*entity.Business, 0)
	}

	srv.mu.Lock()
	srv.businesses = businesses
	srv.mu.Unlock()

	srv.log(ctx).Debug("Business list cached", slog.Int("count", len(businesses)))

	return businesses, nil
}

// Select marks the business with the given id as the active workspace.
func (srv *workspaceService) Select(ctx context.Context, id string) (*entity.Business, error) {
	businesses, err := srv.Businesses(ctx)
	if err != nil {
		return nil, err
	}

	for _, business := range businesses {
		if business.ID == id {
			srv.mu.Lock()
			srv.selected = business
			srv.mu.Unlock()

			srv.log(ctx).Info("Workspace selected", slog.String("business_id", id))

			return business, nil
		}
	}

	return nil, domainerrors.ErrBusinessNotFound
}

// Selected returns the active business, or nil when none is selected
// or the cache was evicted.
func (srv *workspaceService) Selected() *entity.Business {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.selected
}

// EvictCaches clears the business list and the selection. Called by
// the guard on expiry and on logout.
func (srv *workspaceService) EvictCaches() {
	srv.mu.Lock()
	srv.businesses = nil
	srv.selected = nil
	srv.mu.Unlock()

	srv.logger.Debug("Workspace caches evicted")
}
