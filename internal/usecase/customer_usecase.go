// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"salepoint/internal/domain/entity"
)

// CustomerUsecase defines the customer-facing operations on top of the
// customer record store.
type CustomerUsecase interface {
	List(ctx context.Context) []*entity.Customer
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, id string, fields map[string]any) (*entity.Customer, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, criteria map[string]any) []*entity.Customer

	// ByPhone finds customers whose phone contains the given digits.
	ByPhone(ctx context.Context, phone string) []*entity.Customer

	// AdjustDebt shifts the customer's outstanding debt by delta.
	AdjustDebt(ctx context.Context, id string, delta float64) (*entity.Customer, error)

	// AdjustSpend shifts totalSpent and points in one write. It exists
	// for the sales cascade; nothing else may move these balances.
	AdjustSpend(ctx context.Context, id string, amount float64, points int) (*entity.Customer, error)
}
