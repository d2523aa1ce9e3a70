package usecase

import (
	"context"

	"salepoint/internal/domain/entity"
)

// SalesUsecase orchestrates the sale cascade: registering a sale also
// moves the customer's spend/points and the referenced stock levels,
// and deleting one reverses those moves exactly.
type SalesUsecase interface {
	List(ctx context.Context) []*entity.Sale
	Get(ctx context.Context, id string) (*entity.Sale, error)
	ByCustomer(ctx context.Context, customerID string) []*entity.Sale

	// Create persists the sale first, then best-effort applies the
	// customer and inventory side effects. Side-effect failures are
	// logged, not fatal: the sale stands.
	Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)

	// Delete removes the sale and reverses its side effects using the
	// stored amounts, so the round trip is net zero even if rules
	// changed since creation.
	Delete(ctx context.Context, id string) error
}
