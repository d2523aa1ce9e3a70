package impl

import (
	"context"
	"log/slog"

	deliverycontext "salepoint/internal/delivery/context"
	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/usecase"

	"github.com/pkg/errors"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	store  repository.RecordStore[*entity.InventoryItem]
	logger *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	store repository.RecordStore[*entity.InventoryItem],
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		store:  store,
		logger: logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every item in storage order.
func (srv *inventoryService) List(ctx context.Context) []*entity.InventoryItem {
	return srv.store.All(ctx)
}

// Get retrieves an item by id.
func (srv *inventoryService) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrItemNotFound
	}

	return item, nil
}

// Create persists a new inventory item.
func (srv *inventoryService) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	if item.Stock < 0 {
		return nil, domainerrors.ErrInsufficientStock
	}

	created, err := srv.store.Create(ctx, item)
	if err != nil {
		srv.log(ctx).Error("Failed to create item", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create item")
	}
	srv.log(ctx).Info("Inventory item created",
		slog.String("item_id", created.ID), slog.String("product_code", created.ProductCode))

	return created, nil
}

// Update shallow-merges fields onto the item.
func (srv *inventoryService) Update(ctx context.Context, id string, fields map[string]any) (*entity.InventoryItem, error) {
	updated, found, err := srv.store.Update(ctx, id, fields)
	if err != nil {
		srv.log(ctx).Error("Failed to update item", slog.Any("error", err), slog.String("item_id", id))

		return nil, errors.Wrap(err, "failed to update item")
	}
	if !found {
		return nil, domainerrors.ErrItemNotFound
	}

	return updated, nil
}

// Delete removes an item.
func (srv *inventoryService) Delete(ctx context.Context, id string) error {
	removed, err := srv.store.Delete(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to delete item", slog.Any("error", err), slog.String("item_id", id))

		return errors.Wrap(err, "failed to delete item")
	}
	if !removed {
		return domainerrors.ErrItemNotFound
	}

	return nil
}

// Search forwards criteria to the record store.
func (srv *inventoryService) Search(ctx context.Context, criteria map[string]any) []*entity.InventoryItem {
	return srv.store.Search(ctx, criteria)
}

// ByProductCode resolves the natural key sales refer to. Exact match,
// first hit wins; no secondary index is maintained.
func (srv *inventoryService) ByProductCode(ctx context.Context, code string) (*entity.InventoryItem, error) {
	for _, item := range srv.store.All(ctx) {
		if item.ProductCode == code {
			return item, nil
		}
	}

	return nil, domainerrors.ErrItemNotFound
}

// ByBarcode finds the item with the exact barcode.
func (srv *inventoryService) ByBarcode(ctx context.Context, barcode string) (*entity.InventoryItem, error) {
	for _, item := range srv.store.All(ctx) {
		if item.Barcode == barcode {
			return item, nil
		}
	}

	return nil, domainerrors.ErrItemNotFound
}

// AdjustStock shifts stock by delta as one read-modify-write through
// the store. A result below zero is refused and leaves the item
// unchanged; refusal is a constraint rejection, not a fault.
func (srv *inventoryService) AdjustStock(ctx context.Context, id string, delta int) (*entity.InventoryItem, error) {
	item, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrItemNotFound
	}

	next := item.Stock + delta
	if next < 0 {
		srv.log(ctx).Debug("Stock adjustment rejected",
			slog.String("item_id", id), slog.Int("stock", item.Stock), slog.Int("delta", delta))

		return nil, domainerrors.ErrInsufficientStock
	}

	updated, _, err := srv.store.Update(ctx, id, map[string]any{"stock": next})
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust stock")
	}

	return updated, nil
}

// LowStock returns items at or below their minimum threshold.
func (srv *inventoryService) LowStock(ctx context.Context) []*entity.InventoryItem {
	low := make([]*entity.InventoryItem, 0)
	for _, item := range srv.store.All(ctx) {
		if item.Stock <= item.MinStock {
			low = append(low, item)
		}
	}

	return low
}
