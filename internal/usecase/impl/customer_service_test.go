package impl

import (
	"context"
	"testing"

	"salepoint/internal/domain/entity"
	domainerrors "salepoint/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateStartsWithZeroBalances(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())
	ctx := context.Background()

	created, err := service.Create(ctx, &entity.Customer{
		Name:       "Nguyen Van An",
		Phone:      "0901234567",
		TotalSpent: 9999, // ignored: balances only move through sales
		Points:     42,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.TotalSpent)
	assert.Zero(t, created.Points)
	assert.Equal(t, entity.CustomerActive, created.Status)
}

func TestCustomerService_UpdateStripsDerivedBalances(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())
	ctx := context.Background()

	created, err := service.Create(ctx, &entity.Customer{Name: "Tran Thi Binh"})
	require.NoError(t, err)

	fields := map[string]any{
		"name":       "Tran Thi Binh (VIP)",
		"totalSpent": 500000,
		"points":     500,
	}
	updated, err := service.Update(ctx, created.ID, fields)
	require.NoError(t, err)

	assert.Equal(t, "Tran Thi Binh (VIP)", updated.Name)
	assert.Zero(t, updated.TotalSpent)
	assert.Zero(t, updated.Points)

	// Stripping works on a copy; the caller's map is left intact.
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "totalSpent")
	assert.Contains(t, fields, "points")
}

func TestCustomerService_GetMissing(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())

	_, err := service.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_ByPhoneSubstring(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())
	ctx := context.Background()

	_, err := service.Create(ctx, &entity.Customer{Name: "An", Phone: "0901234567"})
	require.NoError(t, err)
	_, err = service.Create(ctx, &entity.Customer{Name: "Binh", Phone: "0987654321"})
	require.NoError(t, err)

	matches := service.ByPhone(ctx, "0901")
	require.Len(t, matches, 1)
	assert.Equal(t, "An", matches[0].Name)
}

func TestCustomerService_AdjustSpendMovesBothBalances(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())
	ctx := context.Background()

	created, err := service.Create(ctx, &entity.Customer{Name: "An"})
	require.NoError(t, err)

	updated, err := service.AdjustSpend(ctx, created.ID, 150000, 150)
	require.NoError(t, err)
	assert.InDelta(t, 150000, updated.TotalSpent, 0.001)
	assert.Equal(t, 150, updated.Points)

	reversed, err := service.AdjustSpend(ctx, created.ID, -150000, -150)
	require.NoError(t, err)
	assert.Zero(t, reversed.TotalSpent)
	assert.Zero(t, reversed.Points)
}

func TestCustomerService_AdjustDebt(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())
	ctx := context.Background()

	created, err := service.Create(ctx, &entity.Customer{Name: "An"})
	require.NoError(t, err)

	updated, err := service.AdjustDebt(ctx, created.ID, 20000)
	require.NoError(t, err)
	assert.InDelta(t, 20000, updated.TotalDebt, 0.001)
}

func TestCustomerService_DeleteMissing(t *testing.T) {
	service := NewCustomerService(newCustomerStore(newTestMedium()), newDiscardLogger())

	err := service.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
