package usecase

import (
	"context"

	"salepoint/internal/domain/entity"
)

// InventoryUsecase defines the stock-keeping operations on top of the
// inventory record store.
type InventoryUsecase interface {
	List(ctx context.Context) []*entity.InventoryItem
	Get(ctx context.Context, id string) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	Update(ctx context.Context, id string, fields map[string]any) (*entity.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, criteria map[string]any) []*entity.InventoryItem

	// ByProductCode resolves the natural key sales refer to. The first
	// exact match wins; uniqueness of codes is expected, not enforced.
	ByProductCode(ctx context.Context, code string) (*entity.InventoryItem, error)
	ByBarcode(ctx context.Context, barcode string) (*entity.InventoryItem, error)

	// AdjustStock shifts stock by delta as one read-modify-write.
	// A delta that would push stock below zero is rejected with
	// ErrInsufficientStock and leaves the item untouched.
	AdjustStock(ctx context.Context, id string, delta int) (*entity.InventoryItem, error)

	// LowStock returns items at or below their minimum threshold,
	// computed on read and never stored.
	LowStock(ctx context.Context) []*entity.InventoryItem
}
