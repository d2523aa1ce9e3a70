// Package directory provides the local stand-in for the remote
// business directory. It vends a fixed list the way a development
// backend would; swapping in an HTTP-backed implementation only means
// satisfying the same interface.
package directory

import (
	"context"
	"log/slog"
	"time"

	"salepoint/internal/domain/entity"
	"salepoint/internal/domain/service"
)

// staticDirectory serves a fixed business list.
type staticDirectory struct {
	logger     *slog.Logger
	businesses []*entity.Business
}

// NewStaticDirectory is the constructor for staticDirectory.
func NewStaticDirectory(logger *slog.Logger) service.BusinessDirectory {
	return &staticDirectory{
		logger:     logger,
		businesses: demoBusinesses(),
	}
}

// ListBusinesses returns the directory's business list.
func (d *staticDirectory) ListBusinesses(ctx context.Context) ([]*entity.Business, error) {
	d.logger.Debug("Business directory queried", slog.Int("count", len(d.businesses)))

	return d.businesses, nil
}

func demoBusinesses() []*entity.Business {
	createdAt := time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC)

	return []*entity.Business{
		{
			ID:        "biz-minh-anh",
			Name:      "Tap Hoa Minh Anh",
			TaxCode:   "0312456789",
			Address:   "12 Le Loi, Quan 1, TP HCM",
			CreatedAt: createdAt,
		},
		{
			ID:        "biz-ba-hai",
			Name:      "Quan Com Ba Hai",
			TaxCode:   "0309871234",
			Address:   "45 Nguyen Trai, Quan 5, TP HCM",
			CreatedAt: createdAt,
		},
	}
}
