// Package impl contains the application-specific business rules implementations.
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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	store  repository.RecordStore[*entity.Customer]
	logger *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	store repository.RecordStore[*entity.Customer],
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		store:  store,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every customer in storage order.
func (srv *customerService) List(ctx context.Context) []*entity.Customer {
	return srv.store.All(ctx)
}

// Get retrieves a customer by id.
func (srv *customerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound
	}

	return customer, nil
}

// Create persists a new customer. New accounts start active with zero
// balances regardless of what the caller sent.
func (srv *customerService) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if customer.Status == "" {
		customer.Status = entity.CustomerActive
	}
	customer.TotalSpent = 0
	customer.Points = 0

	created, err := srv.store.Create(ctx, customer)
	if err != nil {
		srv.log(ctx).Error("Failed to create customer", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create customer")
	}
	srv.log(ctx).Info("Customer created", slog.String("customer_id", created.ID))

	return created, nil
}

// Update shallow-merges fields onto the customer. The spend and points
// balances are stripped: they only move through the sale cascade.
func (srv *customerService) Update(ctx context.Context, id string, fields map[string]any) (*entity.Customer, error) {
	editable := make(map[string]any, len(fields))
	for key, value := range fields {
		if key == "totalSpent" || key == "points" {
			continue
		}
		editable[key] = value
	}

	updated, found, err := srv.store.Update(ctx, id, editable)
	if err != nil {
		srv.log(ctx).Error("Failed to update customer", slog.Any("error", err), slog.String("customer_id", id))

		return nil, errors.Wrap(err, "failed to update customer")
	}
	if !found {
		return nil, domainerrors.ErrCustomerNotFound
	}

	return updated, nil
}

// Delete removes a customer.
func (srv *customerService) Delete(ctx context.Context, id string) error {
	removed, err := srv.store.Delete(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to delete customer", slog.Any("error", err), slog.String("customer_id", id))

		return errors.Wrap(err, "failed to delete customer")
	}
	if !removed {
		return domainerrors.ErrCustomerNotFound
	}
	srv.log(ctx).Info("Customer deleted", slog.String("customer_id", id))

	return nil
}

// Search forwards criteria to the record store.
func (srv *customerService) Search(ctx context.Context, criteria map[string]any) []*entity.Customer {
	return srv.store.Search(ctx, criteria)
}

// ByPhone finds customers whose phone contains the given digits.
func (srv *customerService) ByPhone(ctx context.Context, phone string) []*entity.Customer {
	return srv.store.Search(ctx, map[string]any{"phone": phone})
}

// AdjustDebt shifts the customer's outstanding debt by delta.
func (srv *customerService) AdjustDebt(ctx context.Context, id string, delta float64) (*entity.Customer, error) {
	customer, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound
	}

	updated, _, err := srv.store.Update(ctx, id, map[string]any{
		"totalDebt": customer.TotalDebt + delta,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust debt")
	}

	return updated, nil
}

// AdjustSpend shifts totalSpent and points in one write. Reserved for
// the sale cascade; negative deltas reverse an earlier registration.
func (srv *customerService) AdjustSpend(ctx context.Context, id string, amount float64, points int) (*entity.Customer, error) {
	customer, ok := srv.store.ByID(ctx, id)
	if !ok {
		return nil, domainerrors.ErrCustomerNotFound
	}

	updated, _, err := srv.store.Update(ctx, id, map[string]any{
		"totalSpent": customer.TotalSpent + amount,
		"points":     customer.Points + points,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust spend")
	}
	srv.log(ctx).Debug("Customer spend adjusted",
		slog.String("customer_id", id),
		slog.Float64("amount", amount),
		slog.Int("points", points))

	return updated, nil
}
