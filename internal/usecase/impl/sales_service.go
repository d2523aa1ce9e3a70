package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "salepoint/internal/delivery/context"
	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"
	"salepoint/internal/domain/repository"
	"salepoint/internal/usecase"

	"github.com/pkg/errors"
)

// pointsPerSpendUnit is the spend amount that earns one loyalty point.
// Points are truncated, never rounded, on award and on clawback.
const pointsPerSpendUnit = 1000

// salesService implements the SalesUsecase interface.
//
// The store offers no multi-entity transaction, so "register a sale"
// is a stated sequence: the sale record is written first, then the
// customer and inventory side effects run best-effort. A failure in a
// side effect is logged and skipped rather than rolling back the sale;
// consistency here is eventual-by-convention, favoring "the sale
// happened in reality" over balanced bookkeeping.
type salesService struct {
	store     repository.RecordStore[*entity.Sale]
	customers usecase.CustomerUsecase
	inventory usecase.InventoryUsecase
	logger    *slog.Logger
}

// NewSalesService is the constructor for salesService.
func NewSalesService(
	store repository.RecordStore[*entity.Sale],
	customers usecase.CustomerUsecase,
	inventory usecase.InventoryUsecase,
	logger *slog.Logger,
) usecase.SalesUsecase {
	return &salesService{
		store:     store,
		customers: customers,
		inventory: inventory,
		logger:    logger,
	}
}

func (srv *salesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every sale in storage order.
func (srv *salesService) List(ctx context.Context) []*entity.Sale {
	return srv.store.All(ctx)
}

// Get retrieves a sale by id.
func (srv *salesService) Get(ctx context.Context, id string) (*entity.Sale, error) {
	sale, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrSaleNotFound
	}

	return sale, nil
}

// ByCustomer returns every sale referencing the given customer.
func (srv *salesService) ByCustomer(ctx context.Context, customerID string) []*entity.Sale {
	sales := make([]*entity.Sale, 0)
	for _, sale := range srv.store.All(ctx) {
		if sale.CustomerID == customerID {
			sales = append(sales, sale)
		}
	}

	return sales
}

// Create registers a sale. The sale record is persisted first so that
// a failure in any later step leaves it inspectable and retryable;
// only a failed write of the sale itself aborts the operation.
func (srv *salesService) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if sale.Status == "" {
		sale.Status = entity.SaleCompleted
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}

	created, err := srv.store.Create(ctx, sale)
	if err != nil {
		srv.log(ctx).Error("Failed to persist sale", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist sale")
	}

	srv.applyCustomerSpend(ctx, created, 1)
	srv.applyStock(ctx, created, -1)

	srv.log(ctx).Info("Sale registered",
		slog.String("sale_id", created.ID),
		slog.String("customer_id", created.CustomerID),
		slog.Float64("paid_amount", created.PaidAmount),
		slog.Int("items", len(created.Items)))

	return created, nil
}

// Delete reverses a sale: the record is removed, then the customer and
// stock side effects are undone using the stored amounts so the round
// trip is exactly net zero even if pricing rules changed since.
func (srv *salesService) Delete(ctx context.Context, id string) error {
	sale, ok := srv.store.ByID(ctx, id)
	if !ok {
		return domainerrors.ErrSaleNotFound
	}

	removed, err := srv.store.Delete(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to delete sale", slog.Any("error", err), slog.String("sale_id", id))

		return errors.Wrap(err, "failed to delete sale")
	}
	if !removed {
		return domainerrors.ErrSaleNotFound
	}

	srv.applyCustomerSpend(ctx, sale, -1)
	srv.applyStock(ctx, sale, +1)

	srv.log(ctx).Info("Sale reversed", slog.String("sale_id", id))

	return nil
}

// applyCustomerSpend moves the customer's spend and points by the
// sale's amounts, scaled by direction (+1 apply, -1 reverse). A sale
// without a customer or without a positive paid amount moves nothing.
// Clawback uses the same floor on the original amount, guaranteeing
// award and reversal cancel exactly.
func (srv *salesService) applyCustomerSpend(ctx context.Context, sale *entity.Sale, direction int) {
	if sale.CustomerID == "" || sale.PaidAmount <= 0 {
		return
	}

	amount := sale.PaidAmount * float64(direction)
	points := awardedPoints(sale.PaidAmount) * direction

	if _, err := srv.customers.AdjustSpend(ctx, sale.CustomerID, amount, points); err != nil {
		srv.log(ctx).Warn("Customer spend bookkeeping failed",
			slog.Any("error", err),
			slog.String("sale_id", sale.ID),
			slog.String("customer_id", sale.CustomerID))
	}
}

// applyStock moves each listed product's stock by direction. Items
// hold product codes, one unit per occurrence, so a duplicated code
// moves two units. Per-line failures (unknown code, floor at zero) are
// logged and skipped; stock bookkeeping never blocks the sale.
func (srv *salesService) applyStock(ctx context.Context, sale *entity.Sale, direction int) {
	for _, code := range sale.Items {
		item, err := srv.inventory.ByProductCode(ctx, code)
		if err != nil {
			srv.log(ctx).Warn("Sale references unknown product code",
				slog.String("sale_id", sale.ID), slog.String("product_code", code))

			continue
		}

		if _, err := srv.inventory.AdjustStock(ctx, item.ID, direction); err != nil {
			srv.log(ctx).Warn("Stock bookkeeping failed",
				slog.Any("error", err),
				slog.String("sale_id", sale.ID),
				slog.String("product_code", code))
		}
	}
}

// awardedPoints computes the loyalty points earned by a paid amount.
func awardedPoints(paidAmount float64) int {
	return int(math.Floor(paidAmount / pointsPerSpendUnit))
}
